package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage resume las violaciones de tags `validate` en un mensaje
// legible para el cuerpo de error 400.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if ok := errors.As(err, &errs); !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s es requerido", fe.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s debe ser un email válido", fe.Field()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
