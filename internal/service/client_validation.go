package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks a request body against its `validate` tags before
// anything is sent.
func validateInput(v any) error {
	if err := inputValidator.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
