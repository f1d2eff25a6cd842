package cmd

import (
	"github.com/spf13/cobra"
)

var projectDir string

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "Board selection for the agent firmware build",
	Long:  `boardctl selects a hardware board definition and generates its ESP Board Manager configuration code.`,
}

func Execute() error {
	// Silence usage and errors to avoid cluttering output with Cobra defaults
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project-dir", "C", ".", "project directory")
}
