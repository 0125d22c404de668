package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var variableLineRegex = regexp.MustCompile(`^\s*[A-Za-z_][A-Za-z0-9_]*\s*=`)

// LooksLikeVariable reports whether a crontab line has the NAME=value shape.
func LooksLikeVariable(line string) bool {
	return variableLineRegex.MatchString(line)
}

// Variable is an environment assignment line such as MAILTO=root.
type Variable struct {
	name  string
	value string
}

// NewVariable returns a variable after validating its name.
func NewVariable(name, value string) (*Variable, error) {
	v := &Variable{}
	if err := v.SetName(name); err != nil {
		return nil, err
	}
	v.SetValue(value)
	return v, nil
}

// ParseVariable splits a line on its first '=' and trims both sides.
func ParseVariable(line string) (*Variable, error) {
	name, value, ok := strings.Cut(line, "=")
	if !ok {
		return nil, fmt.Errorf("%w: line does not appear to contain a variable", ErrMalformedLine)
	}
	return NewVariable(strings.TrimSpace(name), strings.TrimSpace(value))
}

func (v *Variable) Name() string  { return v.name }
func (v *Variable) Value() string { return v.value }

// SetName sets the variable name. Names cannot be empty or contain a space or '$'.
func (v *Variable) SetName(name string) error {
	if ValidateField(FieldVariable, name) {
		v.name = name
		return nil
	}
	reason := "variable names cannot contain a '$' character"
	switch {
	case name == "":
		reason = "variable names cannot be empty"
	case strings.Contains(name, " "):
		reason = "variable names cannot contain spaces"
	}
	return &FieldError{Field: FieldVariable, Value: name, Reason: reason}
}

// SetValue sets the value verbatim.
func (v *Variable) SetValue(value string) { v.value = value }

// Render returns the NAME=value line.
func (v *Variable) Render() string {
	return v.name + "=" + v.value
}

func (v *Variable) String() string { return v.Render() }
