package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/habitcraft/internal/constants"
)

var (
	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			day := fl.Field().Int()
			return day >= constants.MinWeekday && day <= constants.MaxWeekday
		}
		return false
	})

	return v
}

// Struct checks the validate tags on v and returns one violation per failed field
func Struct(v interface{}) []Violation {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Reason: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:  fieldPath(fe.Namespace()),
			Reason: reason(fe.Tag(), fe.Param()),
		})
	}
	return violations
}

// fieldPath drops the leading struct type name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func reason(tag, param string) string {
	switch tag {
	case "email":
		return "value is not a valid email address"
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", param)
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", param)
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "hexcolor6":
		return "must be a valid hex color code"
	case "weekday":
		return fmt.Sprintf("must be an integer between %d and %d", constants.MinWeekday, constants.MaxWeekday)
	default:
		return fmt.Sprintf("failed %q check", tag)
	}
}

// CheckEmail returns an error unless s is a syntactically valid email address
func CheckEmail(s string) error {
	if err := validate.Var(s, "email"); err != nil {
		return errors.New(reason("email", ""))
	}
	return nil
}

// CheckHexColor returns an error unless s is a #RRGGBB color
func CheckHexColor(s string) error {
	if !hexColorPattern.MatchString(s) {
		return errors.New(reason("hexcolor6", ""))
	}
	return nil
}

// CheckWeekday returns an error unless 0 <= day <= 6
func CheckWeekday(day int) error {
	if day < constants.MinWeekday || day > constants.MaxWeekday {
		return errors.New(reason("weekday", ""))
	}
	return nil
}
