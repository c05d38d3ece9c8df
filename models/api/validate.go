package apimodels

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"job-tracker-backend/models"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// messages use the human label of the field
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			return fld.Name
		})
	})
	return validate
}

// ValidateStruct checks validate tags and returns the first failure as models.ValidationError.
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}
	return models.ValidationError{Message: errorMessage(validationErrors[0])}
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	case "max":
		return fmt.Sprintf("The field %s must be a string with a maximum length of %s.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters long.", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s and confirmation password do not match.", labelOf(fe))
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

// labelOf resolves the label of the field referenced by eqfield.
func labelOf(fe validator.FieldError) string {
	return strings.NewReplacer("NewPassword", "new password", "Password", "password").Replace(fe.Param())
}
