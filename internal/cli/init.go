package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/specdevagent/specdev/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:     "init <path>",
	Short:   "Initialize a new project scaffold",
	GroupID: GroupScaffolding,
	Long: `Create the base project structure: the documentation directory skeleton,
starter documents (project.md, todo.md, development.log, ADRs), and the
project.json metadata template.

Existing files are left untouched unless --force is given.`,
	Example: `  specdev init ./my-project
  specdev init ./my-project --force`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	root := args[0]
	force, _ := cmd.Flags().GetBool("force")

	result, err := scaffold.Init(root, force)
	if err != nil {
		return FatalError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized project at %s\n", root)
	printResult(out, result)
	return nil
}

// printResult lists created and skipped paths for init and scaffold output.
func printResult(out io.Writer, result *scaffold.Result) {
	if len(result.Created) > 0 {
		fmt.Fprintln(out, "Created files:")
		for _, path := range result.Created {
			fmt.Fprintf(out, "  - %s\n", path)
		}
	}
	if len(result.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped existing files (use --force to overwrite):")
		for _, path := range result.Skipped {
			fmt.Fprintf(out, "  - %s\n", path)
		}
	}
}
