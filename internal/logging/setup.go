package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bnema/cronfile/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the application logger: a console writer on console and,
// when cfg.File is set, a rotating file. The returned closer releases the
// file.
func Setup(cfg config.LogConfig, console io.Writer) (zerolog.Logger, io.Closer, error) {
	level, levelErr := zerolog.ParseLevel(cfg.Level)
	if levelErr != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}

	if cfg.File == "" {
		logger := zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
		warnInvalidLevel(logger, cfg.Level, levelErr)
		return logger, nopCloser{}, nil
	}

	// Create logs directory with secure permissions (0700 - owner only)
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	logger := zerolog.New(io.MultiWriter(consoleWriter, fileWriter)).
		Level(level).
		With().
		Timestamp().
		Logger()
	warnInvalidLevel(logger, cfg.Level, levelErr)

	logger.Debug().
		Str("log_file", cfg.File).
		Str("level", level.String()).
		Msg("file logging initialized")

	return logger, fileWriter, nil
}

func warnInvalidLevel(logger zerolog.Logger, level string, err error) {
	if err != nil {
		logger.Warn().Str("invalid_level", level).Msg("invalid log level, using info")
	}
}
