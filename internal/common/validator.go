package common

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError maps each offending field to what is wrong with it.
type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s %s", field, e.Errors[field])
	}

	return "invalid input: " + strings.Join(parts, ", ")
}

// Validator collects missing fields of a decoded request.
type Validator struct {
	missing map[string]string
}

func NewValidator() *Validator {
	return &Validator{missing: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.missing) == 0
}

// CheckPresent records field as missing when the decoded value was absent or null.
func (v *Validator) CheckPresent(s *string, field string) {
	if s == nil {
		v.missing[field] = "must be provided"
	}
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.missing}
}
