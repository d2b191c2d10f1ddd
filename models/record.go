// Package models defines the record shapes kept by the organizer and their
// CSV codecs.
package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the day-first date format used for due dates and money movements.
const DateLayout = "02-01-2006"

// Record is implemented by every shape a store can hold.
// IDs are unique within one collection, not across collections.
type Record interface {
	RecordID() int
	SetRecordID(id int)
}

// CSVCodec maps one record shape to and from header-keyed CSV rows.
type CSVCodec[R Record] interface {
	// Header returns the column names in their fixed order.
	Header() []string
	Row(r R) []string
	// FromRow rebuilds a record from a row keyed by header name.
	FromRow(row map[string]string) (R, error)
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s any) error {
	return validationError(validate.Struct(s))
}

// ValidateFields validates only the named top-level fields of s.
// No fields means nothing to check.
func ValidateFields(s any, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return validationError(validate.StructPartial(s, fields...))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}

// ParseBool decodes a CSV boolean: only a case-insensitive "true" is true.
func ParseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

// FormatBool encodes a boolean the way ParseBool expects it.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func parseID(row map[string]string) (int, error) {
	raw, err := column(row, "ID")
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", raw, err)
	}
	return id, nil
}

// column returns a required column or an error naming it.
func column(row map[string]string, name string) (string, error) {
	v, ok := row[name]
	if !ok {
		return "", fmt.Errorf("missing column %q", name)
	}
	return v, nil
}

// columns fetches several required columns at once.
func columns(row map[string]string, names ...string) ([]string, error) {
	out := make([]string, len(names))
	for i, n := range names {
		v, err := column(row, n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
