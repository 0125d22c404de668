package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/cronfile/internal/domain"
)

// newAddCmd creates the add command.
func newAddCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "add <line>",
		Short: "Add a job line",
		Long: `Add a job to the crontab. The arguments are joined with spaces and
parsed as one crontab line. A job with the same schedule and command
replaces the existing one in place.

  cronfile add '0 3 * * * /usr/local/bin/backup >> /var/log/backup.log # nightly'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			job, err := a.Service.AddJob(ctx, a.Config.Crontab.Path, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(),
				cliRenderSuccess(fmt.Sprintf("saved job %s", domain.ShortHash(job.Hash())))+" "+cliRenderCode(job.String()))
		},
	}
}

// newRemoveCmd creates the remove command.
func newRemoveCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <hash>",
		Aliases: []string{"rm"},
		Short:   "Remove a job by hash prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			job, err := a.Service.RemoveJob(ctx, a.Config.Crontab.Path, args[0])
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(),
				cliRenderSuccess(fmt.Sprintf("removed job %s", domain.ShortHash(job.Hash())))+" "+cliRenderCode(job.String()))
		},
	}
}

// newSetVarCmd creates the set-var command.
func newSetVarCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set-var <NAME> <value> | <NAME=value>",
		Short: "Set a crontab variable",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value, err := variableArgs(args)
			if err != nil {
				return err
			}

			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Service.SetVariable(ctx, a.Config.Crontab.Path, name, value); err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(fmt.Sprintf("set %s", name)))
		},
	}
}

// variableArgs accepts either NAME VALUE or a single NAME=VALUE.
func variableArgs(args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	variable, err := domain.ParseVariable(args[0])
	if err != nil {
		return "", "", err
	}
	return variable.Name(), variable.Value(), nil
}

// newUnsetVarCmd creates the unset-var command.
func newUnsetVarCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "unset-var <NAME>",
		Short: "Remove a crontab variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Service.UnsetVariable(ctx, a.Config.Crontab.Path, args[0]); err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(fmt.Sprintf("removed %s", args[0])))
		},
	}
}
