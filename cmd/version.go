package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/verdict/internal/suite"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the verdict build version, the Go version used to build it and the suite kinds and build modes it supports.",
		Run: func(cmd *cobra.Command, _ []string) {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				cmd.Println("verdict version\t", info.Main.Version)
				cmd.Println("go version\t", info.GoVersion)
			} else {
				cmd.Println("version: unknown")
			}

			cmd.Println("suite kinds\t", strings.Join(suite.DefaultRegistry().Kinds(), ", "))
			cmd.Println("build modes\t", strings.Join(suite.Modes, ", "))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
