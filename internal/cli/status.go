package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/specdevagent/specdev/internal/lint"
	"github.com/specdevagent/specdev/internal/metadata"
	"github.com/specdevagent/specdev/internal/scaffold"
)

var statusCmd = &cobra.Command{
	Use:     "status [path]",
	Short:   "Summarize the project scaffold, metadata, and document health",
	GroupID: GroupInspection,
	Long: `Summarize metadata, directory health, and referenced documents without
failing. Use this for a quick briefing before editing or reviewing a
project; run 'validate' for strict enforcement.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project status for %s:\n", root)

	structuralIssues, err := lint.CheckStructure(root, lint.StagePostInit)
	if err != nil {
		return FatalError(err)
	}
	printStructureStatus(out, structuralIssues)

	warnings := len(structuralIssues)

	doc, err := metadata.Load(metadataPathFor(root))
	if err != nil {
		fmt.Fprintf(out, "- Metadata error: %v\n", err)
		warnings++
	} else {
		warnings += printMetadataStatus(out, doc, root)
	}

	printTemplateStatus(out, cfg.TemplatesDir)

	if warnings > 0 {
		fmt.Fprintf(out, "- Warnings detected: %d. Run 'validate' for strict enforcement.\n", warnings)
	} else {
		fmt.Fprintln(out, "- No warnings detected. Project is ready for deeper validation or development.")
	}
	return nil
}

func printStructureStatus(out io.Writer, issues []lint.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(out, "- Scaffold: all expected directories and files are present.")
		return
	}
	fmt.Fprintln(out, "- Scaffold: missing or mistyped entries ->")
	for _, issue := range issues {
		fmt.Fprintf(out, "    * %s\n", issue.FieldPath)
	}
}

// printMetadataStatus summarizes the document and returns the number of
// warnings it contributed.
func printMetadataStatus(out io.Writer, doc *metadata.Document, root string) int {
	name := doc.StringField("name")
	if name == "" {
		name = "<unknown>"
	}
	version := doc.StringField("version")
	if version == "" {
		version = "<no version>"
	}
	fmt.Fprintf(out, "- Metadata: %s (version %s)\n", name, version)

	agents := doc.Agents()
	if len(agents) > 0 {
		roleSet := map[string]bool{}
		for _, agent := range agents {
			if agent.Role != "" {
				roleSet[agent.Role] = true
			}
		}
		roles := make([]string, 0, len(roleSet))
		for role := range roleSet {
			roles = append(roles, role)
		}
		sort.Strings(roles)
		line := fmt.Sprintf("  * Agents: %d registered", len(agents))
		if len(roles) > 0 {
			line += " (roles: "
			for i, role := range roles {
				if i > 0 {
					line += ", "
				}
				line += role
			}
			line += ")"
		}
		fmt.Fprintln(out, line)
	}

	refs := doc.Documents()
	if len(refs) > 0 {
		fmt.Fprintln(out, "  * Documents:")
		for _, key := range metadata.SortedDocumentKeys(rawDocuments(doc), metadata.DefaultSchema().RequiredDocuments) {
			rel, ok := refs[key]
			if !ok {
				fmt.Fprintf(out, "    - %s: <invalid reference>\n", key)
				continue
			}
			state := "found"
			if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
				state = "missing"
			}
			fmt.Fprintf(out, "    - %s: %s (%s)\n", key, rel, state)
		}
	}

	issues := lint.ValidateFields(doc, metadata.DefaultSchema())
	if len(issues) > 0 {
		fmt.Fprintln(out, "  * Schema warnings:")
		for _, issue := range issues {
			fmt.Fprintf(out, "    - %s\n", issue.String())
		}
	}
	return len(issues)
}

func printTemplateStatus(out io.Writer, templatesDir string) {
	templates, err := scaffold.ListTemplates(templatesDir)
	if err != nil || len(templates) == 0 {
		fmt.Fprintln(out, "- Available templates: none detected.")
		return
	}
	fmt.Fprintln(out, "- Available templates:")
	for _, tmpl := range templates {
		fmt.Fprintf(out, "    * %s\n", tmpl.Name)
	}
}

func rawDocuments(doc *metadata.Document) map[string]any {
	m, _ := doc.Raw()["documents"].(map[string]any)
	return m
}

// metadataPathFor returns the metadata document path for a project root.
func metadataPathFor(root string) string {
	return filepath.Join(root, metadata.MetadataFileName)
}
