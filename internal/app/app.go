// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/bnema/cronfile/internal/adapters/out/cronexpr"
	"github.com/bnema/cronfile/internal/adapters/out/envfile"
	"github.com/bnema/cronfile/internal/adapters/out/filesystem"
	"github.com/bnema/cronfile/internal/adapters/out/filewatch"
	"github.com/bnema/cronfile/internal/boundaries/in"
	"github.com/bnema/cronfile/internal/boundaries/out"
	"github.com/bnema/cronfile/internal/config"
	"github.com/bnema/cronfile/internal/logging"
	"github.com/bnema/cronfile/internal/usecase/crontab"
)

// Options override configuration values from the command line. Empty
// strings and nil pointers leave the configured value in place.
type Options struct {
	ConfigFile  string
	CrontabPath string
	LogLevel    string
	Strict      *bool

	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Stderr receives console logs. Defaults to os.Stderr.
	Stderr io.Writer
}

// App holds the wired services for one CLI invocation.
type App struct {
	Config  *config.Config
	Service in.CrontabService
	Checker out.ScheduleChecker
	Logger  zerolog.Logger

	closer io.Closer
}

// New loads the configuration and wires the adapters into the service.
func New(opts Options) (*App, error) {
	if err := config.LoadDotenv(".env"); err != nil {
		return nil, err
	}

	cfg, err := config.Load(viper.New(), opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.CrontabPath != "" {
		cfg.Crontab.Path = filesystem.ExpandTilde(opts.CrontabPath)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Strict != nil {
		cfg.Parse.Strict = *opts.Strict
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger, closer, err := logging.Setup(cfg.Log, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	var prober out.FileProber
	if cfg.Parse.Probe {
		prober = filesystem.NewProber(fsys)
	}
	checker := cronexpr.NewChecker()

	service := crontab.NewService(
		filesystem.NewStore(fsys),
		crontab.NewParser(prober),
		envfile.NewFile(fsys),
		filewatch.NewWatcher(cfg.Watch.Debounce),
		checker,
		crontab.Options{
			Strict:   cfg.Parse.Strict,
			Semantic: cfg.Lint.Semantic,
		},
	)

	logger.Debug().
		Str("crontab", cfg.Crontab.Path).
		Bool("strict", cfg.Parse.Strict).
		Bool("probe", cfg.Parse.Probe).
		Msg("cronfile initialized")

	return &App{
		Config:  cfg,
		Service: service,
		Checker: checker,
		Logger:  logger,
		closer:  closer,
	}, nil
}

// Context attaches the application logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return a.Logger.WithContext(ctx)
}

// Close releases the log file.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
