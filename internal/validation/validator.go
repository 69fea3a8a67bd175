package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"wealthway/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("cycle_start_day", validateCycleStartDay)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that a transaction type is income or expense
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateCycleStartDay validates that a billing cycle start day falls on a day
// every month has
func validateCycleStartDay(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		day := fl.Field().Int()
		return day >= 1 && day <= 28
	default:
		return false
	}
}

// validateCalendarDate validates that a string is a real date in YYYY-MM-DD format
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}
