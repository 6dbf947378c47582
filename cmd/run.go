package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/verdict/internal/domain"
)

// errUnexpectedResults makes the process exit 1 after a run whose summary
// was already printed.
var errUnexpectedResults = errors.New("tests had unexpected results")

var runShardFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run tests and check them against their expected outcomes",
		Long:  runLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindRunFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, shardCount, err := parseShardFlag(runShardFlag)
			if err != nil {
				return err
			}

			style, err := resolveStyle(viper.GetString(progressKey), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			workflow, err := newWorkflow(cmd, style)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			summary, err := workflow.Run(ctx, domain.RunArgs{
				SelectArgs: domain.SelectArgs{
					Paths: args,
					Modes: parseModes(viper.GetString(modeKey)),
				},
				NoBuild:    viper.GetBool(noBuildKey),
				Report:     viper.GetBool(reportKey),
				Parallel:   viper.GetInt(parallelKey),
				ShardIndex: shardIndex,
				ShardCount: shardCount,
			})
			if err != nil {
				return err
			}

			if summary.Total == 0 {
				cmd.Println("No tests to run.")
				return nil
			}

			if !summary.Succeeded() {
				return fmt.Errorf("%d of %d %w", len(summary.Failed), summary.Total, errUnexpectedResults)
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(modeFlagName, "m", defaultMode, "comma-separated build modes (debug,release)")
	cmd.Flags().StringP(progressFlagName, "p", "", "progress style: verbose, dots, color, mono or tui (default: color on a terminal, else mono)")
	cmd.Flags().IntP(timeoutFlagName, "t", defaultTimeout, "timeout in seconds for each test")
	cmd.Flags().Int(parallelFlagName, defaultParallel, "number of tests run at once")
	cmd.Flags().Bool(noBuildFlagName, false, "do not build the required targets first")
	cmd.Flags().Bool(reportFlagName, false, "print a report of the expected outcomes before running")
	cmd.Flags().StringVar(&runShardFlag, shardFlagName, "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

// bindRunFlags binds the run flags once the command is selected, so that
// list can bind the flags it shares with run to the same keys.
func bindRunFlags(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), modeKey)
	bindFlagToConfig(cmd.Flags().Lookup(progressFlagName), progressKey)
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutKey)
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelKey)
	bindFlagToConfig(cmd.Flags().Lookup(noBuildFlagName), noBuildKey)
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportKey)
}

// parseShardFlag parses INDEX/TOTAL. An empty value is the single shard 0/1.
func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 0, fmt.Errorf("invalid --%s %q: want INDEX/TOTAL with 0 <= INDEX < TOTAL", shardFlagName, shard)
	}

	return index, total, nil
}
