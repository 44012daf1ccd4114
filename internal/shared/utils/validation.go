package utils

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationMessages flattens an ozzo validation error into a stable,
// field-sorted list of messages for the response envelope.
func ValidationMessages(err error) []string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fieldErrs))
	for _, field := range fields {
		messages = append(messages, fieldErrs[field].Error())
	}
	return messages
}
