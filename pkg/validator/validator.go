package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// NIC formats: old 9 digits + V/X suffix, new 12 digits.
var (
	oldNICPattern = regexp.MustCompile(`^[0-9]{9}[vVxX]$`)
	newNICPattern = regexp.MustCompile(`^[0-9]{12}$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("nic", validateNIC)
	return &CustomValidator{validator: v}
}

func validateNIC(fl validator.FieldLevel) bool {
	nic := fl.Field().String()
	return oldNICPattern.MatchString(nic) || newNICPattern.MatchString(nic)
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "nic":
				errors[field] = field + " must be a valid NIC number"
			case "oneof":
				errors[field] = field + " must be one of " + e.Param()
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "alphanum":
				errors[field] = field + " must contain only letters and digits"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
