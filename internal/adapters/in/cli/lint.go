package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/cronfile/internal/domain"
)

var errLintFailed = errors.New("lint found errors")

// newLintCmd creates the lint command.
func newLintCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check every line of the crontab",
		Long: `Check every line of the crontab without modifying it. Grammar errors,
duplicate jobs and repeated variables are reported with their line number.
When lint.semantic is enabled, schedules are also checked for ranges and
steps that can never fire.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.Service.Lint(ctx, a.Config.Crontab.Path)
			if err != nil {
				return err
			}
			if err := renderLintReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if report.HasErrors() {
				return errLintFailed
			}
			return nil
		},
	}
}

func renderLintReport(w io.Writer, report *domain.LintReport) error {
	for _, issue := range report.Issues {
		msg := fmt.Sprintf("line %d: %s", issue.Line, issue.Message())
		rendered := cliRenderWarning(msg)
		if issue.Severity == domain.SeverityError {
			rendered = cliRenderError(msg)
		}
		if err := cliWriteLine(w, rendered); err != nil {
			return err
		}
		if err := cliWriteLine(w, "    "+cliRenderMuted(issue.Text)); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%s: %d jobs, %d variables, %d issues",
		report.Path, report.Jobs, report.Variables, len(report.Issues))
	if len(report.Issues) == 0 {
		return cliWriteLine(w, cliRenderSuccess(summary))
	}
	return cliWriteLine(w, cliRenderInfo(summary))
}
