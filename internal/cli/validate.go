package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/specdevagent/specdev/internal/config"
	"github.com/specdevagent/specdev/internal/history"
	"github.com/specdevagent/specdev/internal/lint"
)

var validateCmd = &cobra.Command{
	Use:     "validate <path>",
	Short:   "Validate a project against the expected scaffold and schema",
	GroupID: GroupInspection,
	Long: `Validate an existing project: check the directory structure required at
its lifecycle stage, lint project.json against the metadata schema, and
(optionally) resolve every document reference against the filesystem.

All applicable checks run in one invocation so the full defect list
surfaces at once. Exit codes: 0 pass, 1 report failed, 2 fatal condition
(missing project root, unreadable or unparsable metadata).`,
	Example: `  # Validate a freshly initialized project
  specdev validate ./my-project

  # Validate a project with a template applied, including document references
  specdev validate ./my-project --stage post-scaffold --check-documents`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("stage", "", "Lifecycle stage to check against (bootstrap, post-init, post-scaffold)")
	validateCmd.Flags().Bool("check-documents", false, "Ensure referenced documents exist relative to the project root")
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := args[0]
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stageName, _ := cmd.Flags().GetString("stage")
	if stageName == "" {
		stageName = cfg.DefaultStage
	}
	stage, err := lint.ParseStage(stageName)
	if err != nil {
		return FatalError(err)
	}

	checkDocuments := cfg.CheckDocuments
	if cmd.Flags().Changed("check-documents") {
		checkDocuments, _ = cmd.Flags().GetBool("check-documents")
	}

	start := time.Now()
	report, err := lint.Run(lint.Options{
		Root:           root,
		Stage:          stage,
		CheckDocuments: checkDocuments,
	})
	if err != nil {
		recordRun(cfg, "validate", root, nil, ExitFatal, start)
		return FatalError(err)
	}

	RenderReport(cmd.OutOrStdout(), report)
	exitErr := reportExit(report)
	recordRun(cfg, "validate", root, report, ExitCode(exitErr), start)
	return exitErr
}

// loadConfig loads tool configuration using the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, FatalError(err)
	}
	return cfg, nil
}

// recordRun appends the run to history when enabled. Best-effort.
func recordRun(cfg *config.Configuration, command, root string, report *lint.Report, exitCode int, start time.Time) {
	if !cfg.History.Enabled {
		return
	}
	errors, warnings := 0, 0
	if report != nil {
		errors, warnings = report.ErrorCount(), report.WarningCount()
	}
	history.Record(command, root, errors, warnings, exitCode, time.Since(start), cfg.History.MaxEntries)
}
