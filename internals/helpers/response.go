package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names ("start_date") instead of Go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})
	return v
}

// Validator returns the shared validator instance.
func Validator() *validator.Validate { return validate }

// BindAndValidate parses the body into dst and runs struct validation.
// Parse errors → 400, validation errors → *ValidationErr (422).
func BindAndValidate[T any](c *fiber.Ctx, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return &ValidationErr{Fields: FieldErrors(err)}
	}
	return nil
}

// ValidateQuery validates a struct filled from query params.
func ValidateQuery[T any](c *fiber.Ctx, dst *T) error {
	if err := c.QueryParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := validate.Struct(dst); err != nil {
		return &ValidationErr{Fields: FieldErrors(err)}
	}
	return nil
}

type ValidationErr struct {
	Fields map[string][]string
}

func (e *ValidationErr) Error() string { return "validation failed" }

// FieldErrors flattens validator errors into json-field → tags.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}

// RespondBindError writes the right envelope for a BindAndValidate error.
func RespondBindError(c *fiber.Ctx, err error) error {
	var ve *ValidationErr
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Fields)
	}
	return FromFiberError(c, err)
}
