package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newEnvCmd creates the env command group.
func newEnvCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Exchange crontab variables with dotenv files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write the crontab variables to a dotenv file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			count, err := a.Service.ExportEnv(ctx, a.Config.Crontab.Path, args[0])
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(fmt.Sprintf("exported %d variables to %s", count, args[0])))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Set the variables of a dotenv file in the crontab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			count, err := a.Service.ImportEnv(ctx, a.Config.Crontab.Path, args[0])
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(fmt.Sprintf("imported %d variables from %s", count, args[0])))
		},
	})

	return cmd
}
