package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin binding engine is not go-playground/validator; custom tags unavailable")
			return
		}
		if err := v.RegisterValidation("calendar_date", validateCalendarDate); err != nil {
			slog.Error("Failed to register calendar_date validator", slog.String("error", err.Error()))
		}
		if err := v.RegisterValidation("weekday", validateWeekday); err != nil {
			slog.Error("Failed to register weekday validator", slog.String("error", err.Error()))
		}
	})
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseCalendarDate(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 0 && day <= 6
}
