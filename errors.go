package csvchart

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the input for the
// selected chart type. It is raised before any record is decoded.
type SchemaError struct {
	Chart  string
	Fields []string
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column(s): %s", e.Chart, strings.Join(e.Fields, ", "))
}

// ValueError reports a field that could not be coerced to its expected type.
type ValueError struct {
	Ident string
	Field string
	Value string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("record %s: %s: invalid value %q", e.Ident, e.Field, e.Value)
}

// DomainError reports a record set from which no drawable domain can be
// derived, eg an empty one.
type DomainError struct {
	Chart  string
	Reason string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Chart, e.Reason)
}

type ConfigError struct {
	Option string
	Value  any
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("option %s: invalid value %v", e.Option, e.Value)
}
