// Package cli implements the CLI adapter for cronfile.
// This package provides Cobra commands that delegate to the crontab service.
package cli

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/cronfile/internal/app"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		BuildDate = date
	}
}

// Option customizes the root command, mainly for tests.
type Option func(*runtime)

// WithFs runs every command against fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(r *runtime) {
		r.fs = fsys
	}
}

// WithLogOutput sends console logs to w.
func WithLogOutput(w io.Writer) Option {
	return func(r *runtime) {
		r.logOutput = w
	}
}

// runtime carries the global flags and builds the app on demand.
type runtime struct {
	configFile  string
	crontabPath string
	logLevel    string
	strict      bool

	fs        afero.Fs
	logOutput io.Writer
}

// open wires the application for one command. The caller closes the app.
func (r *runtime) open(cmd *cobra.Command) (*app.App, context.Context, error) {
	opts := app.Options{
		ConfigFile:  r.configFile,
		CrontabPath: r.crontabPath,
		LogLevel:    r.logLevel,
		Fs:          r.fs,
		Stderr:      r.logOutput,
	}
	if cmd.Flags().Changed("strict") {
		strict := r.strict
		opts.Strict = &strict
	}

	a, err := app.New(opts)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Context(cmd.Context()), nil
}

// NewRootCmd creates the root command for the cronfile CLI.
func NewRootCmd(opts ...Option) *cobra.Command {
	rt := &runtime{}
	for _, opt := range opts {
		opt(rt)
	}

	rootCmd := &cobra.Command{
		Use:   "cronfile",
		Short: "cronfile - parse, lint and edit crontab files",
		Long: `cronfile reads crontab files into structured jobs and variables,
checks them, and writes them back in a canonical form.

Each job is identified by a hash of its schedule and command, so a job
keeps its identity when only its comment or output redirections change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rt.configFile, "config", "", "config file (default is ./cronfile.yaml)")
	flags.StringVarP(&rt.crontabPath, "file", "f", "", "crontab file (default from crontab.path)")
	flags.StringVar(&rt.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&rt.strict, "strict", false, "abort on the first invalid line")

	rootCmd.AddCommand(newListCmd(rt))
	rootCmd.AddCommand(newShowCmd(rt))
	rootCmd.AddCommand(newLintCmd(rt))
	rootCmd.AddCommand(newFmtCmd(rt))
	rootCmd.AddCommand(newAddCmd(rt))
	rootCmd.AddCommand(newRemoveCmd(rt))
	rootCmd.AddCommand(newSetVarCmd(rt))
	rootCmd.AddCommand(newUnsetVarCmd(rt))
	rootCmd.AddCommand(newExportCmd(rt))
	rootCmd.AddCommand(newEnvCmd(rt))
	rootCmd.AddCommand(newWatchCmd(rt))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		_ = cliWriteLine(cmd.ErrOrStderr(), cliRenderError(describeError(err)))
		return 1
	}
	return 0
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := cliWritef(out, "cronfile %s\n", Version); err != nil {
				return err
			}
			if err := cliWriteLine(out, cliRenderMeta("Commit:", Commit)); err != nil {
				return err
			}
			return cliWriteLine(out, cliRenderMeta("Build Date:", BuildDate))
		},
	}
}
