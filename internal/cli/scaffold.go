package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/specdevagent/specdev/internal/scaffold"
)

var scaffoldCmd = &cobra.Command{
	Use:     "scaffold <path>",
	Short:   "Copy a code template into the target directory",
	GroupID: GroupScaffolding,
	Long: `Apply a project template on top of an existing project. Templates are
embedded in the binary; additional ones are picked up from the configured
templates_dir and shadow embedded templates with the same name.`,
	Example: `  specdev scaffold ./my-project --template python-fastapi
  specdev scaffold ./my-project --template go-cli --force`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Short:   "List available project templates",
	GroupID: GroupScaffolding,
	Args:    cobra.NoArgs,
	RunE:    runTemplates,
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(templatesCmd)
	scaffoldCmd.Flags().String("template", "", "Template name (e.g. python-fastapi)")
	scaffoldCmd.MarkFlagRequired("template")
	scaffoldCmd.Flags().BoolP("force", "f", false, "Overwrite files that already exist")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	root := args[0]
	name, _ := cmd.Flags().GetString("template")
	force, _ := cmd.Flags().GetBool("force")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Template trees can be large enough to notice; show a spinner when
	// attached to a terminal.
	var spin *spinner.Spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Writer = os.Stderr
		spin.Suffix = fmt.Sprintf(" applying template %q", name)
		spin.Start()
	}

	result, err := scaffold.Apply(root, name, force, cfg.TemplatesDir)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return FatalError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applied template %q into %s\n", name, root)
	printResult(out, result)
	return nil
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	templates, err := scaffold.ListTemplates(cfg.TemplatesDir)
	if err != nil {
		return FatalError(err)
	}

	out := cmd.OutOrStdout()
	if len(templates) == 0 {
		fmt.Fprintln(out, "No templates available.")
		return nil
	}
	for _, tmpl := range templates {
		fmt.Fprintf(out, "%s (%s) - %s\n", tmpl.Name, tmpl.Version, tmpl.Description)
	}
	return nil
}
