package dto

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ToMap(errs []ValidationError) map[string]string {
	result := make(map[string]string)
	for _, e := range errs {
		result[e.Field] = e.Message
	}
	return result
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	colorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

func validateRequired(field string, value string) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: "is required"})
	}
	return errs
}

func validateNonEmpty(field string, value *string) []ValidationError {
	var errs []ValidationError
	if value != nil && strings.TrimSpace(*value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: "cannot be empty"})
	}
	return errs
}

func validateEmail(email *string) []ValidationError {
	var errs []ValidationError
	if email != nil && *email != "" && !emailRegex.MatchString(*email) {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email format"})
	}
	return errs
}

func validateColor(field string, color *string) []ValidationError {
	var errs []ValidationError
	if color != nil && *color != "" && !colorRegex.MatchString(*color) {
		errs = append(errs, ValidationError{Field: field, Message: "invalid color format (expected: #RGB, #RRGGBB or #RRGGBBAA)"})
	}
	return errs
}

func validateDuration(duration *int) []ValidationError {
	var errs []ValidationError
	if duration != nil && *duration < 0 {
		errs = append(errs, ValidationError{Field: "duration", Message: "must be zero or greater"})
	}
	return errs
}
