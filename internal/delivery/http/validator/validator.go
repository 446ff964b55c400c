// Package validator wires go-playground/validator into echo so handlers can
// validate typed request structs via c.Validate.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// CustomValidator adapts a validator.Validate instance to echo's Validator
// interface.
type CustomValidator struct {
	validate *playground.Validate
}

// New constructs the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
