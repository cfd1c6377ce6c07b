package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequest checks validate tags and returns a Malformed error naming the first bad field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return apperror.Malformed("Invalid request body")
	}

	fe := validationErrs[0]
	switch fe.Tag() {
	case "required":
		return apperror.Malformed(fmt.Sprintf("%s is required", fe.Field()))
	case "max":
		return apperror.Malformed(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return apperror.Malformed(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// ParseBody decodes the JSON body into req and validates it.
func ParseBody(ctx *fiber.Ctx, req interface{}) error {
	if len(ctx.Body()) == 0 {
		return apperror.Malformed("Request body is required")
	}
	if err := ctx.BodyParser(req); err != nil {
		return apperror.Malformed("Request body must be valid JSON")
	}
	return ValidateRequest(req)
}
