package controllers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func init() {
	// Report fields by their json tag so error keys match the form fields.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// formatValidationErrors turns validator errors into a field -> message map.
func formatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["input"] = err.Error()
		return errs
	}

	for _, fe := range ves {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = fmt.Sprintf("The %s field is required", fe.Field())
		case "max":
			errs[fe.Field()] = fmt.Sprintf("The %s field may not be greater than %s characters", fe.Field(), fe.Param())
		case "gt":
			errs[fe.Field()] = fmt.Sprintf("The %s field must be greater than %s", fe.Field(), fe.Param())
		default:
			errs[fe.Field()] = fmt.Sprintf("The %s field is invalid", fe.Field())
		}
	}

	return errs
}

// actorID reads the authenticated user id set by the auth middleware.
func actorID(ctx *fiber.Ctx) int {
	if v, ok := ctx.Locals("userID").(float64); ok {
		return int(v)
	}
	return 0
}
