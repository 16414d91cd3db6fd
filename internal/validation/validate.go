package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/IronWill79/chirpy/internal/apierr"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so messages match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ChirpRequest struct {
	Body *string `json:"body" validate:"required"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type ChirpValidationSuccess struct {
	CleanedBody string `json:"cleanedBody"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type ErrorResponse struct {
	Err string `json:"error"`
}

// Struct validates a decoded request and returns a BadRequest naming the
// first offending field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apierr.Wrap(apierr.KindBadRequest, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()), err)
	}
	return err
}

// Var validates a single value against a validator tag such as "max=140".
func Var(field any, tag string) error {
	return validate.Var(field, tag)
}
