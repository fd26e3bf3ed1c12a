package paystation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	validate     = newValidator()
)

// Validate checks the parameters in the documented order: required strings,
// amount bounds, optional numeric bounds, email shape, callback URL shape.
// The first violated rule wins and is returned as a validation [Error].
func (p PaymentInitiationParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return normalizeValidationError(err)
	}
	if !emailPattern.MatchString(p.CustomerEmail) {
		return NewValidationError("cust_email must look like local@domain.tld")
	}
	if !isHTTPURL(p.CallbackURL) {
		return NewValidationError("callback_url must be an absolute http or https URL")
	}
	return nil
}

func isHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("form"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return strings.TrimSpace(value) != ""
	}); err != nil {
		panic(err)
	}

	return v
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return NewValidationError(err.Error(), WithCause(err))
	}
	first := validationErrs[0]
	return NewValidationError(fmt.Sprintf("%s %s", first.Field(), validationMessage(first)))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
