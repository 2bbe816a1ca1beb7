package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/marcelsud/library-api/internal/calendar"
	"github.com/marcelsud/library-api/internal/failure"
)

// Validator checks tagged input structs and reports failures per json field
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// "date" accepts anything calendar.Parse accepts; empty strings are left to required
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := calendar.Parse(s)
		return err == nil
	})
	// "filled" rejects a present but blank value; pair it with omitnil on pointer fields
	mustRegister(v, "filled", func(fl validator.FieldLevel) bool {
		return !fl.Field().IsZero()
	})
	return &Validator{v: v}
}

// mustRegister panics so a bad rule name fails at startup
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validation: %v", tag, err))
	}
}

var std = New()

// Struct validates s with the shared validator
func Struct(s any) error {
	return std.Struct(s)
}

// Struct returns nil or a *failure.Error of kind Validation
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating input: %w", err)
	}
	out := failure.NewValidation(nil)
	for _, fe := range verrs {
		field := key(fe.Field())
		out.Add(field, message(fe, label(field)))
	}
	return out
}

// key turns author_ids[0] into author_ids.0
func key(field string) string {
	field = strings.ReplaceAll(field, "[", ".")
	return strings.ReplaceAll(field, "]", "")
}

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// Label is the human name of a field as used in messages
func Label(field string) string {
	return label(key(field))
}

func message(fe validator.FieldError, name string) string {
	switch fe.Tag() {
	case "required", "required_without", "required_with", "filled":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	case "date":
		return fmt.Sprintf("The %s field must be a valid date.", name)
	case "max", "lte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("The %s field must not have more than %s items.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", name, fe.Param())
	case "min", "gte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("The %s field must be at least %s characters.", name, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("The %s field must have at least %s items.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", name, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s.", name, fe.Param())
	}
	return fmt.Sprintf("The %s field is invalid.", name)
}

// Invalid is the message used when a referenced record does not exist
func Invalid(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", Label(field))
}

// Taken is the message used for unique violations
func Taken(field string) string {
	return fmt.Sprintf("The %s has already been taken.", Label(field))
}

// DateAfter is the message of a date that must follow another
func DateAfter(field, other string, orEqual bool) string {
	if orEqual {
		return fmt.Sprintf("The %s field must be a date after or equal to %s.", Label(field), Label(other))
	}
	return fmt.Sprintf("The %s field must be a date after %s.", Label(field), Label(other))
}

// Integer is the message of a query or path value that is not a whole number
func Integer(field string) string {
	return fmt.Sprintf("The %s field must be an integer.", Label(field))
}

// Date is the message of a value that is not a parseable date
func Date(field string) string {
	return fmt.Sprintf("The %s field must be a valid date.", Label(field))
}

// Boolean is the message of a value that is not true or false
func Boolean(field string) string {
	return fmt.Sprintf("The %s field must be true or false.", Label(field))
}
