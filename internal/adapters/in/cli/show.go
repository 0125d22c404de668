package cli

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bnema/cronfile/internal/domain"
)

// newShowCmd creates the show command.
func newShowCmd(rt *runtime) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "show <hash>",
		Short: "Show a job and the tail of its output files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			job, err := a.Service.FindJob(ctx, a.Config.Crontab.Path, args[0])
			if err != nil {
				return err
			}
			output, err := a.Service.JobOutput(ctx, job)
			if err != nil {
				return err
			}
			return renderJob(cmd, output, lines)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "number of trailing output lines to show (0 for all)")
	return cmd
}

func renderJob(cmd *cobra.Command, output *domain.JobOutput, lines int) error {
	w := cmd.OutOrStdout()
	job := output.Job

	header := []string{
		cliRenderTitle(domain.ShortHash(job.Hash())) + " " + cliRenderCode(job.String()),
		cliRenderMeta("Hash:", job.Hash()),
		cliRenderMeta("Schedule:", strings.Join(job.Timing().Fields(), " ")),
		cliRenderMeta("Command:", job.Command()),
		cliRenderMeta("Status:", string(job.Status())),
	}
	if job.Comment() != "" {
		header = append(header, cliRenderMeta("Comment:", job.Comment()))
	}
	if last := job.LastRunTime(); !last.IsZero() {
		header = append(header, cliRenderMeta("Last run:", last.Format("2006-01-02 15:04:05")+" ("+humanize.Time(last)+")"))
	}
	for _, line := range header {
		if err := cliWriteLine(w, line); err != nil {
			return err
		}
	}

	if err := renderOutput(cmd, "Log", job.LogFile(), output.Log, output.LogFound, lines); err != nil {
		return err
	}
	return renderOutput(cmd, "Errors", job.ErrorFile(), output.Error, output.ErrorFound, lines)
}

func renderOutput(cmd *cobra.Command, label, path, content string, found bool, lines int) error {
	w := cmd.OutOrStdout()
	if path == "" {
		return nil
	}
	if err := cliWriteLine(w, cliRenderTitle(label)+" "+cliRenderMuted(path)); err != nil {
		return err
	}
	switch {
	case !found:
		return cliWriteLine(w, cliRenderEmptyState("file does not exist"))
	case content == "":
		return cliWriteLine(w, cliRenderEmptyState("empty"))
	default:
		return cliWriteLine(w, cliRenderBox(tailLines(content, lines)))
	}
}

// tailLines keeps the last n lines of s. n <= 0 keeps everything.
func tailLines(s string, n int) string {
	s = strings.TrimRight(s, "\n")
	if n <= 0 {
		return s
	}
	parts := strings.Split(s, "\n")
	if len(parts) <= n {
		return s
	}
	return strings.Join(parts[len(parts)-n:], "\n")
}
