package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cronfile/internal/config"
)

func TestSetup_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Setup(config.LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_InvalidLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		wantWarn bool
	}{
		{name: "unknown level", level: "loud", wantWarn: true},
		{name: "empty level", level: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, _, err := Setup(config.LogConfig{Level: tt.level}, &buf)
			require.NoError(t, err)

			assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
			if tt.wantWarn {
				assert.Contains(t, buf.String(), "invalid log level")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestSetup_FileLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "cronfile.log")
	var buf bytes.Buffer

	logger, closer, err := Setup(config.LogConfig{
		Level:      "debug",
		File:       logFile,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}, &buf)
	require.NoError(t, err)

	logger.Info().Str("path", "/tmp/crontab").Msg("crontab loaded")
	require.NoError(t, closer.Close())

	assert.DirExists(t, filepath.Dir(logFile))
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"crontab loaded"`)
	assert.Contains(t, string(data), `"path":"/tmp/crontab"`)
	assert.Contains(t, buf.String(), "crontab loaded")
}
