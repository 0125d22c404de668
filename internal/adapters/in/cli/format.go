package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotFormatted = errors.New("crontab is not formatted")

// newFmtCmd creates the fmt command.
func newFmtCmd(rt *runtime) *cobra.Command {
	var (
		check  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the crontab in canonical form",
		Long: `Rewrite the crontab in canonical form: variables first, then jobs, one
per line with single spaces. Comment lines and blank lines are dropped.
The file is left untouched when any line is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			path := a.Config.Crontab.Path
			write := !check && !stdout
			rendered, changed, err := a.Service.Format(ctx, path, write)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case stdout:
				return cliWritef(w, "%s", rendered)
			case check && changed:
				if err := cliWriteLine(w, cliRenderWarning(fmt.Sprintf("%s would be reformatted", path))); err != nil {
					return err
				}
				return errNotFormatted
			case changed:
				return cliWriteLine(w, cliRenderSuccess(fmt.Sprintf("formatted %s", path)))
			default:
				return cliWriteLine(w, cliRenderInfo(fmt.Sprintf("%s is already formatted", path)))
			}
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "report whether the file would change, without writing")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the formatted file instead of writing it")
	cmd.MarkFlagsMutuallyExclusive("check", "stdout")
	return cmd
}
