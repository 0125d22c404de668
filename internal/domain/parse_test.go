package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestParseJobRoundTrip(t *testing.T) {
	lines := []string{
		"* * * * * cmd",
		"0 0 1 1 * /usr/bin/happy-new-year",
		"*/5   9-17 * * mon-fri   /opt/check.sh --quiet",
		"30 2 * * 0 backup.sh >> /var/log/backup.log 2>&1",
		"30 2 * * 0 backup.sh >> /var/log/backup.log 2>> /var/log/backup.err",
		"1 1 1 1 1 cmd 2>> /tmp/err.log",
		"0 12 */2 * * cmd # run at noon every two days",
		"0 0 * * * cmd >> /tmp/out.log 2>> /tmp/err.log # nightly",
		"@daily $BIN_PATH/cmd3",
		"@reboot  /usr/local/bin/start   >> /tmp/start.log 2>&1",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			job, err := ParseJob(line)
			require.NoError(t, err)

			rendered, err := job.Render()
			require.NoError(t, err)
			assert.Equal(t, normalizeSpaces(line), rendered)
		})
	}
}

func TestParseJobSpecialTokens(t *testing.T) {
	for _, token := range SpecialTokens {
		t.Run(token, func(t *testing.T) {
			job, err := ParseJob(token + " foo")
			require.NoError(t, err)
			assert.True(t, job.IsSpecial())
			assert.Equal(t, token, job.Special())
			assert.Equal(t, "foo", job.Command())
		})
	}
}

func TestParseJobSuffixes(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		command   string
		comment   string
		logFile   string
		errorFile string
	}{
		{
			name:    "comment",
			line:    "* * * * * cmd # some text ",
			command: "cmd",
			comment: "some text",
		},
		{
			name:      "error redirect only",
			line:      "* * * * * cmd 2>> /tmp/err.log",
			command:   "cmd",
			errorFile: "/tmp/err.log",
		},
		{
			name:    "log redirect with merge marker",
			line:    "* * * * * cmd >> /tmp/out.log 2>&1",
			command: "cmd",
			logFile: "/tmp/out.log",
		},
		{
			name:      "all suffixes",
			line:      "* * * * * cmd arg >> /tmp/out.log 2>> /tmp/err.log # tagged",
			command:   "cmd arg",
			comment:   "tagged",
			logFile:   "/tmp/out.log",
			errorFile: "/tmp/err.log",
		},
		{
			name:    "comment swallows redirect text",
			line:    "* * * * * cmd # see 2>> notes",
			command: "cmd",
			comment: "see 2>> notes",
		},
		{
			name:    "comment keeps later hashes",
			line:    "* * * * * cmd # one # two",
			command: "cmd",
			comment: "one # two",
		},
		{
			name:    "leading hash is part of the command",
			line:    "* * * * * #not-a-comment",
			command: "#not-a-comment",
		},
		{
			name:    "bare hash is dropped",
			line:    "* * * * * cmd #",
			command: "cmd",
		},
		{
			name:    "variable in command",
			line:    "@hourly $BIN_PATH/cmd3",
			command: "$BIN_PATH/cmd3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := ParseJob(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.command, job.Command())
			assert.Equal(t, tt.comment, job.Comment())
			assert.Equal(t, tt.logFile, job.LogFile())
			assert.Equal(t, tt.errorFile, job.ErrorFile())
			assert.Equal(t, StatusUnknown, job.Status())
			assert.True(t, job.LastRunTime().IsZero())
		})
	}
}

func TestParseJobErrorRedirectRendersSuffix(t *testing.T) {
	job, err := ParseJob("* * * * * cmd 2>> /tmp/err.log")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/err.log", job.ErrorFile())
	assert.Empty(t, job.LogFile())
	assert.Equal(t, "2>> /tmp/err.log", job.renderError())
}

func TestParseJobErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "single token", line: "bogus", wantErr: ErrMalformedLine},
		{name: "four tokens", line: "* * * cmd", wantErr: ErrMalformedLine},
		{name: "command in day of week slot", line: "* * * * cmd", wantErr: ErrInvalidField},
		{name: "lone special", line: "@daily", wantErr: ErrMalformedLine},
		{name: "no command", line: "* * * * *", wantErr: ErrInvalidField},
		{name: "bad hour", line: "0 25 * * * cmd", wantErr: ErrInvalidField},
		{name: "bad minute", line: "61 * * * * cmd", wantErr: ErrInvalidField},
		{name: "unknown shortcut", line: "@sometimes cmd", wantErr: ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJob(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
