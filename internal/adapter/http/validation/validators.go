package validation

import (
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			zap.L().Error("gin validator engine is not go-playground/validator, custom tags unavailable")
			return
		}

		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			zap.L().Error("failed to register notblank validator", zap.Error(err))
		}
		if err := v.RegisterValidation("priority", isPriority); err != nil {
			zap.L().Error("failed to register priority validator", zap.Error(err))
		}
	})
}

func isPriority(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}
	_, err := ParsePriority(raw)
	return err == nil
}
