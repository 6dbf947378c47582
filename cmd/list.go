package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/verdict/internal/controller"
	"gooze.dev/pkg/verdict/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List tests and their expected outcomes",
		Long:  listLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), modeKey)
			bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportKey)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow(cmd, controller.StyleVerbose)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				SelectArgs: domain.SelectArgs{
					Paths: args,
					Modes: parseModes(viper.GetString(modeKey)),
				},
				Report: viper.GetBool(reportKey),
			})
		},
	}

	cmd.Flags().StringP(modeFlagName, "m", defaultMode, "comma-separated build modes (debug,release)")
	cmd.Flags().Bool(reportFlagName, false, "print a report of the expected outcomes")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
