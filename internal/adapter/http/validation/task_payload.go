package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/dto"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

var jsonNull = []byte("null")

// BuildTaskInput turns a bound request into a domain input.
func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	priority, err := ParsePriority(req.Priority)
	if err != nil {
		return domain.TaskInput{}, err
	}

	var description *string
	if req.Description != nil {
		value := *req.Description
		description = &value
	}

	return domain.TaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
	}, nil
}

// ParsePriority decodes the raw priority field. An absent field means low;
// an explicit null is rejected. Strings go through domain.ParsePriority,
// numbers must be an integer rank.
func ParsePriority(raw json.RawMessage) (domain.Priority, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		return domain.PriorityLow, nil
	case bytes.Equal(raw, jsonNull):
		return domain.PriorityLow, ErrInvalidTaskPayload
	case raw[0] == '"':
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return domain.PriorityLow, ErrInvalidTaskPayload
		}
		priority, err := domain.ParsePriority(value)
		if err != nil {
			return domain.PriorityLow, ErrInvalidTaskPayload
		}
		return priority, nil
	}

	var rank int64
	if err := json.Unmarshal(raw, &rank); err != nil {
		return domain.PriorityLow, ErrInvalidTaskPayload
	}
	if rank < int64(domain.PriorityLow) || rank > int64(domain.PriorityUrgent) {
		return domain.PriorityLow, ErrInvalidTaskPayload
	}
	return domain.Priority(rank), nil
}
