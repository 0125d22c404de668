package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/cronfile/internal/domain"
)

// newWatchCmd creates the watch command.
func newWatchCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Lint the crontab again on every change",
		Long: `Lint the crontab now and again each time it changes, until interrupted.
Bursts of writes are coalesced using watch.debounce.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			w := cmd.OutOrStdout()
			path := a.Config.Crontab.Path
			if err := cliWriteLine(w, cliRenderInfo(fmt.Sprintf("watching %s", path))); err != nil {
				return err
			}

			err = a.Service.Watch(ctx, path, func(report *domain.LintReport, err error) {
				_ = cliWriteLine(w, cliRenderMuted(now().Format("15:04:05")))
				if err != nil {
					_ = cliWriteLine(w, cliRenderError(err.Error()))
					return
				}
				_ = renderLintReport(w, report)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
