package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bnema/cronfile/internal/adapters/in/cli/ui/components"
	"github.com/bnema/cronfile/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/cronfile/internal/boundaries/out"
	"github.com/bnema/cronfile/internal/domain"
)

// now is swapped in tests.
var now = time.Now

// newListCmd creates the list command.
func newListCmd(rt *runtime) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List jobs and variables",
		Long: `List the jobs of the crontab with their hash, schedule, status and
output sizes, followed by the variables. Invalid lines are reported after
the table unless --strict is set, in which case they abort the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Service.Load(ctx, a.Config.Crontab.Path)
			if err != nil {
				return err
			}
			plain = plain || !isTerminal(cmd.OutOrStdout())
			return renderList(cmd, a.Config.Crontab.Path, result, a.Checker, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "render the table without colors (implied when stdout is not a terminal)")
	return cmd
}

func renderList(cmd *cobra.Command, path string, result *domain.LoadResult, checker out.ScheduleChecker, plain bool) error {
	w := cmd.OutOrStdout()
	jobs := result.Crontab.Jobs()
	variables := result.Crontab.Variables()

	if err := cliWriteLine(w, cliRenderTitle(path)); err != nil {
		return err
	}

	if len(jobs) == 0 {
		if err := cliWriteLine(w, cliRenderEmptyState("No jobs")); err != nil {
			return err
		}
	} else {
		opts := []components.TableOption{
			components.WithColumns(
				components.Column{Title: "HASH", Width: domain.ShortHashSize},
				components.Column{Title: "SCHEDULE", Width: 20},
				components.Column{Title: "COMMAND", Width: 40},
				components.Column{Title: "STATUS"},
				components.Column{Title: "LAST RUN"},
				components.Column{Title: "LOG", Align: lipgloss.Right},
				components.Column{Title: "ERR", Align: lipgloss.Right},
				components.Column{Title: "NEXT"},
			),
		}
		if plain {
			opts = append(opts, components.WithPlainStyles())
		}
		table := components.NewTable(opts...)
		current := now()
		for _, job := range jobs {
			table.AddRow(jobRow(job, checker, current, plain)...)
		}
		if err := cliWriteLine(w, table.Render()); err != nil {
			return err
		}
	}

	if len(variables) > 0 {
		if err := cliWriteLine(w, cliRenderTitle("Variables")); err != nil {
			return err
		}
		for _, variable := range variables {
			if err := cliWriteLine(w, cliRenderListItem(variable.Render())); err != nil {
				return err
			}
		}
	}

	for _, problem := range result.Problems {
		if err := cliWriteLine(w, cliRenderWarning(problem.Error())); err != nil {
			return err
		}
	}
	return nil
}

func jobRow(job *domain.Job, checker out.ScheduleChecker, current time.Time, plain bool) []string {
	schedule := strings.Join(job.Timing().Fields(), " ")
	status := string(job.Status())
	if !plain {
		status = styles.RenderJobStatus(status)
	}

	info := job.RunInfo()
	lastRun := "-"
	if !info.LastRun.IsZero() {
		lastRun = humanize.RelTime(info.LastRun, current, "ago", "from now")
	}

	next := "-"
	if checker != nil {
		if at, ok, err := checker.Next(schedule, current); err == nil && ok {
			next = humanize.RelTime(at, current, "ago", "from now")
		}
	}

	return []string{
		domain.ShortHash(job.Hash()),
		schedule,
		job.Command(),
		status,
		lastRun,
		formatSize(info.LogSize),
		formatSize(info.ErrorSize),
		next,
	}
}

func formatSize(size *int64) string {
	if size == nil {
		return "-"
	}
	return humanize.IBytes(uint64(*size))
}
