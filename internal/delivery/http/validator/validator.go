// Package validator binds go-playground validation into Echo.
package validator

import (
	domainerrors "subul/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator on top of go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and converts failures into the application
// error taxonomy so the central error handler renders them as 400s.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
