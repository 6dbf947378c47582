// Package cmd provides the root command and CLI setup for verdict.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/verdict/internal/adapter"
	"gooze.dev/pkg/verdict/internal/controller"
	"gooze.dev/pkg/verdict/internal/domain"
	"gooze.dev/pkg/verdict/internal/suite"
)

// workflowFactory builds the workflow a command drives, rendering with style
// to the command's output.
type workflowFactory func(cmd *cobra.Command, style controller.Style) (domain.Workflow, error)

// newWorkflow is replaced in tests.
var newWorkflow workflowFactory = buildWorkflow

var verboseFlag bool
var logFileFlag string
var workspaceFlag string
var suiteFlags []string

const pathPatternsHelp = `Paths are slash-separated test path patterns; * matches any run of
characters within one level:
  - sample            every test of the sample suite
  - sample/regress/*  every test under sample/regress
  - */array*          tests whose second level starts with "array"`

const rootLongDescription = `Verdict runs test suites and compares every result with the outcomes
the suites' status files expect (pass, fail, skip, timeout, crash, okay,
slow). A run fails only when a test does something it was not expected to.

` + pathPatternsHelp

const runLongDescription = `Build the required targets, classify every selected test and run it
(default: every suite of the workspace).

` + pathPatternsHelp

const listLongDescription = `List the selected tests with their expected outcomes without running them.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "verdict",
		Short:        "Expectation-driven test harness",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", `log file ("-" for stderr)`)

	cmd.PersistentFlags().StringVar(&workspaceFlag, workspaceFlagName, "", "workspace root (default: nearest directory with "+configFileName+")")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(workspaceFlagName), workspaceKey)

	cmd.PersistentFlags().StringArrayVarP(&suiteFlags, suiteFlagName, "s", nil, "additional suite directory (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(suiteFlagName), suitesKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// buildWorkflow wires the local adapters, the suites of the workspace and
// a UI for style.
func buildWorkflow(cmd *cobra.Command, style controller.Style) (domain.Workflow, error) {
	fs := adapter.NewLocalSuiteFSAdapter()

	workspace, err := resolveWorkspace(fs, viper.GetString(workspaceKey))
	if err != nil {
		return nil, err
	}

	buildspace, err := filepath.Abs(viper.GetString(buildspaceKey))
	if err != nil {
		return nil, fmt.Errorf("buildspace: %w", err)
	}

	runner := adapter.NewLocalCommandRunner(viper.GetString(captureDirKey))
	timeout := time.Duration(viper.GetInt(timeoutKey)) * time.Second

	sc := suite.Context{
		Workspace:  workspace,
		Buildspace: buildspace,
		VMName:     viper.GetString(vmKey),
		Timeout:    timeout,
		Runner:     runner,
		FS:         fs,
	}

	suites, err := openSuites(suite.DefaultRegistry(), sc)
	if err != nil {
		return nil, err
	}

	ui, err := controller.NewUI(style, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(
		suite.NewRoot(suites...),
		domain.NewBuilder(runner, workspace, viper.GetStringSlice(buildCommandKey)),
		ui,
		domain.NewOrchestrator(runner, timeout),
	), nil
}

// resolveWorkspace returns the configured workspace, else the nearest
// directory holding the config file, else the working directory.
func resolveWorkspace(fs adapter.SuiteFSAdapter, configured string) (string, error) {
	if configured != "" {
		return filepath.Abs(configured)
	}

	root, err := fs.FindWorkspaceRoot(".", configFileName)
	if errors.Is(err, adapter.ErrWorkspaceNotFound) {
		return filepath.Abs(".")
	}

	if err != nil {
		return "", err
	}

	return string(root), nil
}

// openSuites discovers the suites of the tests directory and opens every
// extra suite directory.
func openSuites(registry *suite.Registry, sc suite.Context) ([]suite.Suite, error) {
	testsDir := viper.GetString(testsDirKey)
	if !filepath.IsAbs(testsDir) {
		testsDir = filepath.Join(sc.Workspace, testsDir)
	}

	suites, err := registry.Discover(testsDir, sc)
	if err != nil {
		return nil, fmt.Errorf("discover suites in %s: %w", testsDir, err)
	}

	for _, dir := range viper.GetStringSlice(suitesKey) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}

		s, err := registry.Open(abs, sc)
		if err != nil {
			return nil, err
		}

		suites = append(suites, s)
	}

	return suites, nil
}

// parseModes splits a comma-separated mode list.
func parseModes(value string) []string {
	var modes []string

	for _, mode := range strings.Split(value, ",") {
		mode = strings.TrimSpace(mode)
		if mode != "" && !slices.Contains(modes, mode) {
			modes = append(modes, mode)
		}
	}

	return modes
}

// resolveStyle validates a progress style. An empty value picks color on a
// terminal and mono otherwise.
func resolveStyle(value string, out io.Writer) (controller.Style, error) {
	if value == "" {
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return controller.StyleColor, nil
		}

		return controller.StyleMono, nil
	}

	style := controller.Style(value)
	if !slices.Contains(controller.Styles, style) {
		return "", fmt.Errorf("unknown progress style %q (known: %v)", value, controller.Styles)
	}

	return style, nil
}
