package validation

import (
	"sort"
	"strings"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// Add records a message for field.
func (e Errors) Add(field, msg string) {
	e[field] = msg
}

// Has reports whether field already failed.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Error implements error with fields in a stable order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil when no field failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
