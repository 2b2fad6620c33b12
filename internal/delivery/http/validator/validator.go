// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request payloads.
package validator

import (
	"strings"

	domainerrors "bizconnect/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and converts failures into the shared
// validation error so the error handler renders a 400 envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domainerrors.ErrValidationFailed
		}

		return domainerrors.ErrValidationFailed.WithDetails(describe(verrs))
	}

	return nil
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field " + fe.Field() + " wajib diisi"
	case "email":
		return "Field " + fe.Field() + " harus berupa email yang valid"
	case "min":
		return "Field " + fe.Field() + " minimal " + fe.Param() + " karakter"
	case "max":
		return "Field " + fe.Field() + " maksimal " + fe.Param() + " karakter"
	case "gt":
		return "Field " + fe.Field() + " harus lebih besar dari " + fe.Param()
	case "oneof":
		return "Field " + fe.Field() + " harus salah satu dari: " + fe.Param()
	default:
		return "Field " + fe.Field() + " tidak valid"
	}
}
