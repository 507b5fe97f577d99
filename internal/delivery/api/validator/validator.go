// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"regexp"

	"notes/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// fullNamePattern admits letters, whitespace and apostrophes only.
var fullNamePattern = regexp.MustCompile(`^[A-Za-z\s']+$`)

// FieldError describes one failed rule on one request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator with the "fullname" rule registered. Field names in
// errors are taken from the json tag.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("fullname", func(fl playground.FieldLevel) bool {
		return fullNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: v}
}

// Validate runs struct validation.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Fields converts a validation failure into per-field details. It returns nil
// for errors that are not validation failures.
func Fields(err error) []FieldError {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	return fields
}
