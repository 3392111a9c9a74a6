// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dto-generator",
		Short:         "Generate DTO sources from YAML schema files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerGenerateCmd(rootCmd)
	registerDumpCmd(rootCmd)

	return rootCmd
}
