package config

import (
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/go-playground/validator/v10"
)

// NewValidator registers the ledger's field formats so handlers can reject
// malformed dates, times and sort keys before they reach the service.
func NewValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(entity.DateLayout, fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(entity.TimeLayout, fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
		return ledger.SortKey(fl.Field().String()).Valid()
	})

	return validate
}
