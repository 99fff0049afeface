package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// notblank rejects values that are empty once surrounding whitespace is
// stripped, which plain `required` lets through.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}

// FieldErrors flattens a binding error into a field → message map for form
// re-render. Unrecognized errors land under the empty field name.
func FieldErrors(err error) map[string]string {
	errs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[""] = "invalid input"
		return errs
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			errs[fe.Field()] = "The '" + strings.ToLower(fe.Field()) + "' cannot be empty"
		case "email":
			errs[fe.Field()] = "Must be a valid e-mail address"
		default:
			errs[fe.Field()] = "Invalid value"
		}
	}
	return errs
}
