package hostfolio

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// recordValidator returns the validator of record fields.
//
// Decimal fields are validated as numbers, and errors name the json field.
func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		err := validate.RegisterValidation("iso4217", func(fl validator.FieldLevel) bool {
			return money.GetCurrency(fl.Field().String()) != nil
		})
		if err != nil {
			panic(fmt.Sprintf("registering the iso4217 validation: %v", err))
		}
	})
	return validate
}

// validateStruct checks the field rules of a record and joins every failure.
func validateStruct(v any) error {
	err := recordValidator().Struct(v)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "oneof":
		return fmt.Errorf("%s must be one of %s, got %q", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "gt":
		return fmt.Errorf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "gte":
		return fmt.Errorf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "iso4217":
		return fmt.Errorf("%s must be an ISO 4217 currency code, got %q", fe.Field(), fe.Value())
	default:
		return fmt.Errorf("%s failed on %q", fe.Field(), fe.Tag())
	}
}

// ValidateCurrency checks that cur is a known ISO 4217 currency code.
func ValidateCurrency(cur string) error {
	err := recordValidator().Var(cur, "required,iso4217")
	if err != nil {
		return fmt.Errorf("invalid currency %q", cur)
	}
	return nil
}
