package visitor

import (
	"fmt"
	"strings"
)

// SchemaError is returned when the input worksheet cannot be bound to the
// fixed column layout.
type SchemaError struct {
	Reason   string
	Expected int
	Actual   int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s (expected at least %d columns, got %d)", e.Reason, e.Expected, e.Actual)
}

// EmptyResultError is returned when every row is dropped by the blank-row
// filter.
type EmptyResultError struct {
	InputRows int
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no visitor rows left after removing %d blank row(s)", e.InputRows)
}

type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", v.Row, v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}
