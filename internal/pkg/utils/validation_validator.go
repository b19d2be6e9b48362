package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their json tag so error maps line up with the
	// wire/form field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterStructValidation(updateProfileStructLevel, requests.UpdateProfile{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// updateProfileStructLevel enforces the password rules only while the
// current password is filled in. With it empty the trio is
// unconstrained; whatever was typed gets stripped from the payload
// before submission anyway.
func updateProfileStructLevel(sl validator.StructLevel) {
	form := sl.Current().Interface().(requests.UpdateProfile)
	if form.OldPassword == "" {
		return
	}

	switch {
	case form.Password == "":
		sl.ReportError(form.Password, "password", "Password", "required_with", "old_password")
	case len(form.Password) < 6:
		sl.ReportError(form.Password, "password", "Password", "min", "6")
	}

	switch {
	case form.PasswordConfirmation == "":
		sl.ReportError(form.PasswordConfirmation, "password_confirmation", "PasswordConfirmation", "required_with", "old_password")
	case form.PasswordConfirmation != form.Password:
		sl.ReportError(form.PasswordConfirmation, "password_confirmation", "PasswordConfirmation", "eqfield", "password")
	}
}
