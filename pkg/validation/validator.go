package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator configures the package validator:
// - uses JSON tag names in error details
// - registers the password-strength alias used across the app
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Accepted passwords: 8-24 chars with at least one lowercase letter,
	// one uppercase letter, one digit and one of @$!%*?&.
	v.RegisterAlias("accountpwd", "min=8,max=24,containsany=abcdefghijklmnopqrstuvwxyz,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=0123456789,containsany=@$!%*?&")
	return v
}

// emailPattern is the exact acceptance shape the app has always used:
// ASCII local part of letters/digits/._%+-, dot-separated domain labels and
// a final label of at least two letters. Deliberately narrower than RFC
// 5322, no deliverability check.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s matches the conventional local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s satisfies the password-strength rule.
func IsValidPassword(s string) bool {
	return validate.Var(s, "accountpwd") == nil
}

// Struct validates v's `validate` tags and returns a field->message map,
// or nil when v is valid.
func Struct(v any) map[string]string {
	return ToDetails(validate.Struct(v))
}

// ToDetails converts validation errors into a map[field]message.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}
	return map[string]string{"input": "invalid input"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "containsany":
		return "must contain at least one of '" + param + "'"
	case "accountpwd":
		return "must be 8-24 characters with lowercase, uppercase, digit and one of @$!%*?&"
	case "gte":
		return "must not be negative"
	default:
		if param != "" {
			return "validation failed for '" + fe.Tag() + "' with parameter '" + param + "'"
		}
		return "validation failed for '" + fe.Tag() + "'"
	}
}
