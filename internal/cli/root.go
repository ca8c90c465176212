// Package cli provides the Cobra-based commands for the specdev project
// toolkit: scaffolding (init, scaffold) and inspection (validate, lint,
// status). Commands load the metadata document, invoke the validation
// engine, render its report, and map the outcome to a process exit code.
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output.
const (
	GroupScaffolding = "scaffolding"
	GroupInspection  = "inspection"
)

var rootCmd = &cobra.Command{
	Use:   "specdev",
	Short: "specdev project toolkit",
	Long: `specdev project toolkit

Scaffold directory-based projects from templates and keep their metadata
honest: validate project structure, lint project.json against the schema,
and resolve document references against the filesystem.`,
	Example: `  # Create a new project scaffold
  specdev init ./my-project

  # Apply a code template into the project
  specdev scaffold ./my-project --template python-fastapi

  # Full validation: structure, metadata, document references
  specdev validate ./my-project --check-documents

  # Metadata-only linting
  specdev lint ./my-project

  # Non-failing project briefing
  specdev status ./my-project`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupScaffolding, Title: "Scaffolding:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInspection, Title: "Inspection:"})

	rootCmd.PersistentFlags().StringP("config", "c", ".specdev/config.json", "Path to project config file")
}
