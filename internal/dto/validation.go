package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// RegisterValidators adds the custom binding rules used by the request DTOs.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("notfuture", notFuture)
}

// notFuture accepts an empty value or a DateLayout date that is not after today.
func notFuture(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.After(today)
}

// ParseDate parses a DateLayout date.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, raw)
	}
	return d, nil
}
