package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityNames = [...]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
	PriorityUrgent: "urgent",
}

func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

func (p Priority) String() string {
	if !p.IsValid() {
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
	return priorityNames[p]
}

// ParsePriority accepts a priority name (case-insensitive) or its bare rank digit.
func ParsePriority(value string) (Priority, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for i, name := range priorityNames {
		if value == name || value == strconv.Itoa(i) {
			return Priority(i), nil
		}
	}

	return PriorityLow, fmt.Errorf("%w: %q", ErrInvalidPriority, value)
}

// PriorityNames lists the accepted priority names in rank order.
func PriorityNames() []string {
	names := make([]string, len(priorityNames))
	copy(names, priorityNames[:])
	return names
}
