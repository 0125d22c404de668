package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariable(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantName  string
		wantValue string
		wantErr   error
	}{
		{name: "mailto", line: "MAILTO=root@localhost.localdomain", wantName: "MAILTO", wantValue: "root@localhost.localdomain"},
		{name: "spaces around equals", line: "  BIN_PATH = /usr/local/bin ", wantName: "BIN_PATH", wantValue: "/usr/local/bin"},
		{name: "empty value", line: "MAILTO=", wantName: "MAILTO", wantValue: ""},
		{name: "value with equals", line: "OPTS=a=b", wantName: "OPTS", wantValue: "a=b"},
		{name: "no equals", line: "MAILTO root", wantErr: ErrMalformedLine},
		{name: "name with space", line: "MAIL TO=root", wantErr: ErrInvalidField},
		{name: "name with dollar", line: "$HOME=/root", wantErr: ErrInvalidField},
		{name: "empty name", line: "=value", wantErr: ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVariable(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, v.Name())
			assert.Equal(t, tt.wantValue, v.Value())
		})
	}
}

func TestVariableRender(t *testing.T) {
	v, err := ParseVariable("MAILTO=root@localhost.localdomain")
	require.NoError(t, err)
	assert.Equal(t, "MAILTO=root@localhost.localdomain", v.Render())
	assert.Equal(t, v.Render(), v.String())

	v.SetValue("  padded ")
	assert.Equal(t, "MAILTO=  padded ", v.Render())

	assert.ErrorIs(t, v.SetName("BAD NAME"), ErrInvalidField)
	assert.Equal(t, "MAILTO", v.Name())
}

func TestVariableSetName(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		reason string
	}{
		{name: "valid", value: "BIN_PATH"},
		{name: "empty", value: "", reason: "cannot be empty"},
		{name: "space", value: "BIN PATH", reason: "cannot contain spaces"},
		{name: "dollar", value: "$BIN", reason: "'$' character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Variable{}
			err := v.SetName(tt.value)
			assert.Equal(t, tt.reason == "", ValidateField(FieldVariable, tt.value))
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.value, v.Name())
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, FieldVariable, fieldErr.Field)
			assert.Contains(t, fieldErr.Reason, tt.reason)
			assert.ErrorIs(t, err, ErrInvalidField)
		})
	}
}

func TestLooksLikeVariable(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "MAILTO=root", want: true},
		{line: "  SHELL = /bin/bash", want: true},
		{line: "_X=1", want: true},
		{line: "* * * * * cmd FOO=bar", want: false},
		{line: "@daily FOO=bar cmd", want: false},
		{line: "0 0 * * * cmd", want: false},
		{line: "1BAD=x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeVariable(tt.line))
		})
	}
}
