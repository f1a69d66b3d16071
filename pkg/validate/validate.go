package validate

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

type Option func(v *validator.Validate)

// NewCustomValidator builds an echo.Validator; options register custom
// types, tags and struct level rules of the calling service.
func NewCustomValidator(opts ...Option) *CustomValidator {
	v := validator.New()
	for _, opt := range opts {
		opt(v)
	}
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
