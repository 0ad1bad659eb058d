package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hestia-console-be/internal/pkg/apperr"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and maps
// failures onto the validation error kind.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("invalid request: %s: %w", strings.Join(fields, ", "), apperr.ErrValidation)
	}
	return fmt.Errorf("invalid request: %w", apperr.ErrValidation)
}
