package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/specdevagent/specdev/internal/lint"
)

var lintCmd = &cobra.Command{
	Use:     "lint [path]",
	Aliases: []string{"lint-metadata"},
	Short:   "Check project.json for schema and policy violations",
	GroupID: GroupInspection,
	Long: `Lint project metadata independently from the rest of the scaffold.
The path may be a project directory or a project.json file; it defaults to
the current working directory. Structural checks of the project tree are
not performed, use 'validate' for strict enforcement.`,
	Example: `  # Lint the current project's metadata
  specdev lint

  # Lint a specific metadata file and resolve its document references
  specdev lint ./my-project/project.json --check-documents`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().Bool("check-documents", false, "Ensure referenced documents exist relative to the project root")
}

func runLint(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	checkDocuments := cfg.CheckDocuments
	if cmd.Flags().Changed("check-documents") {
		checkDocuments, _ = cmd.Flags().GetBool("check-documents")
	}

	// The target may be the project root or the metadata document itself.
	root, metadataPath := target, ""
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		metadataPath = target
		root = filepath.Dir(target)
	}

	start := time.Now()
	report, err := lint.Run(lint.Options{
		Root:           root,
		MetadataPath:   metadataPath,
		SkipStructure:  true,
		CheckDocuments: checkDocuments,
	})
	if err != nil {
		recordRun(cfg, "lint", root, nil, ExitFatal, start)
		return FatalError(err)
	}

	RenderReport(cmd.OutOrStdout(), report)
	exitErr := reportExit(report)
	recordRun(cfg, "lint", root, report, ExitCode(exitErr), start)
	return exitErr
}
