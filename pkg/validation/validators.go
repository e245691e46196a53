package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, spaces and common name punctuation. Digits are out.
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// E164-like phone: optional +, 7-15 digits.
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// RegisterValidators registers the custom validators on the shared
// validator instance.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidName accepts human-name characters only. Empty passes; pair with
// required where the field is mandatory.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// ValidPhone checks phone number structure.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// FormatValidationErrors flattens validator.ValidationErrors into
// client-presentable messages.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s may not exceed %s", field, e.Param())
	case "gte", "gt":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, strings.TrimSpace(e.Param()))
	case "gtefield":
		return fmt.Sprintf("%s must not precede %s", field, e.Param())
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", field)
	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
