// Package scaffold creates and populates the base project structure and
// applies code templates on top of it.
package scaffold

import "github.com/specdevagent/specdev/internal/metadata"

// File is one starter file written during project initialization.
type File struct {
	Path    string
	Content string
}

// BaseDirs is the directory skeleton every initialized project carries,
// in creation and reporting order.
var BaseDirs = []string{
	"docs",
	"docs/decisions",
	"docs/process",
	"docs/research",
	"src",
	"tests",
}

// BaseFiles are the starter documents written into a fresh project,
// in creation and reporting order.
var BaseFiles = []File{
	{
		Path:    "project.md",
		Content: "# Project Overview\n\nDescribe the project scope, stakeholders, and key milestones here.\n",
	},
	{
		Path:    "todo.md",
		Content: "# Task Backlog\n\n- [ ] T001: Define discovery questions\n",
	},
	{
		Path:    "development.log",
		Content: "# Development Log\n\n## 0.1.0\n- Project scaffolded.\n",
	},
	{
		Path:    "docs/discovery.md",
		Content: "# Discovery Notes\n\nCapture stakeholder interviews, assumptions, and open questions.\n",
	},
	{
		Path:    "docs/inception.md",
		Content: "# Inception Summary\n\nDocument the initial solution outline, success metrics, and risks.\n",
	},
	{
		Path:    "docs/process/plan.md",
		Content: "# Iteration Planning\n\nDetail objectives, scope, and deliverables for the current cycle.\n",
	},
	{
		Path:    "docs/process/retro.md",
		Content: "# Iteration Retrospective\n\nRecord wins, challenges, and follow-up actions after each cycle.\n",
	},
	{
		Path:    "docs/decisions/adr-0001.md",
		Content: "# ADR-0001 — Project Initialization\n\n- **Status:** Accepted\n- **Context:** Describe the reason for choosing this scaffold.\n- **Decision:** Document the agreed approach.\n- **Consequences:** Capture trade-offs and future considerations.\n",
	},
}

// DefaultMetadata returns the metadata template written as project.json
// into a fresh project.
func DefaultMetadata() metadata.ProjectMetadata {
	return metadata.ProjectMetadata{
		Name:        "Sample Project",
		Description: "Short description of the problem space and desired outcome.",
		Version:     "0.1.0",
		Agents: []metadata.AgentSpec{
			{
				ID:   "primary",
				Role: "orchestrator",
				Responsibilities: []string{
					"Plan tasks based on discovery artifacts",
					"Coordinate code, tests, and documentation updates",
				},
			},
		},
		Documents: map[string]string{
			"project": "project.md",
			"todo":    "todo.md",
			"log":     "development.log",
		},
	}
}
