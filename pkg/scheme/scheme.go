// Package scheme holds the parameters of a single generation call.
//
// Every data kind has its own scheme type with a Default constructor and a
// Validate method. Schemes are plain values: generators read them but never
// change them.
package scheme

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidScheme is wrapped by every error returned from a Validate method.
var ErrInvalidScheme = errors.New("invalid scheme")

// Scheme is implemented by every scheme type.
type Scheme interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "capitalization", func(fl validator.FieldLevel) bool {
		_, ok := ParseCapitalization(fl.Field().String())
		return ok
	})
	mustRegister(v, "brackets", func(fl validator.FieldLevel) bool {
		return isOneOf(fl.Field().String(), Brackets)
	})
	mustRegister(v, "separator", func(fl validator.FieldLevel) bool {
		return isOneOf(fl.Field().String(), Separators)
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func isOneOf(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

// check runs the struct tag validations of s and converts the first failure
// into a readable error.
func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}
	return fmt.Errorf("%w: %s", ErrInvalidScheme, describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "capitalization", "brackets", "separator":
		return fmt.Sprintf("%s has unsupported value %q", field, fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}

func invalid(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidScheme, message)
}

// Enclose surrounds s with enclosure on both sides.
func Enclose(s, enclosure string) string {
	if enclosure == "" {
		return s
	}
	return enclosure + s + enclosure
}
