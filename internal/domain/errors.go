package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the failure conditions of the crontab model.
// Callers match them with errors.Is; the typed errors below carry context.
var (
	// Line and field errors
	ErrInvalidField   = errors.New("invalid field")
	ErrMalformedLine  = errors.New("malformed line")
	ErrMissingCommand = errors.New("you must specify a command to run")

	// File errors
	ErrNotWritable = errors.New("crontab file is not writable")

	// Lookup errors
	ErrJobNotFound      = errors.New("job not found")
	ErrVariableNotFound = errors.New("variable not found")
	ErrAmbiguousHash    = errors.New("hash prefix matches more than one job")
)

// FieldError reports a value rejected by a field grammar.
type FieldError struct {
	Field  FieldKind
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q is incorrect: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s %q is incorrect", e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidField.
func (e *FieldError) Unwrap() error { return ErrInvalidField }

// LineError ties a parse failure to its source line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
