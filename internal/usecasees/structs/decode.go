package structs

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Decode parses body into one of the request shapes and checks that shape.
// Any failure is a malformed *ValidationError naming the offending field.
func Decode(body []byte, dst interface{}) error {
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return malformed(typeErr.Field, fmt.Sprintf("%s: expected %s", typeErr.Field, typeErr.Type.String()))
		}

		return malformed("body", fmt.Sprintf("invalid request body: %s", err.Error()))
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}

		return malformed("body", err.Error())
	}

	return nil
}

func fieldError(fe validator.FieldError) *ValidationError {
	switch fe.Tag() {
	case "required":
		return malformed(fe.Field(), fmt.Sprintf("%s: field required", fe.Field()))
	case "oneof":
		return malformed(fe.Field(), fmt.Sprintf("%s: must be one of %s", fe.Field(), fe.Param()))
	case "eq":
		return malformed(fe.Field(), fmt.Sprintf("%s: must be %s", fe.Field(), fe.Param()))
	default:
		return malformed(fe.Field(), fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
	}
}

func malformed(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Malformed: true}
}
