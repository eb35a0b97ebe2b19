package password

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Tag is the struct-tag name under which RegisterValidation installs the
// password rules.
const Tag = "passcheck"

// RegisterValidation installs the password rules on v, so request structs
// can declare `validate:"passcheck"` on password fields. Fields of any
// kind other than string never validate.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(Tag, validateField)
}

func validateField(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return IsValid(field.String())
}
