package metadata

import "testing"

func TestAgentIDPattern(t *testing.T) {
	schema := DefaultSchema()

	tests := map[string]struct {
		id    string
		valid bool
	}{
		"single word":        {id: "primary", valid: true},
		"kebab case":         {id: "orchestrator-bot", valid: true},
		"digits":             {id: "agent-2", valid: true},
		"uppercase":          {id: "Builder", valid: false},
		"space":              {id: "builder bot", valid: false},
		"leading hyphen":     {id: "-builder", valid: false},
		"trailing hyphen":    {id: "builder-", valid: false},
		"consecutive hyphen": {id: "builder--bot", valid: false},
		"empty":              {id: "", valid: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := schema.AgentIDPattern.MatchString(test.id); got != test.valid {
				t.Errorf("MatchString(%q) = %v, want %v", test.id, got, test.valid)
			}
		})
	}
}

func TestAllowsRole(t *testing.T) {
	schema := DefaultSchema()

	for _, role := range []string{"developer", "orchestrator", "qa", "researcher", "reviewer"} {
		if !schema.AllowsRole(role) {
			t.Errorf("expected role %q to be allowed", role)
		}
	}
	for _, role := range []string{"manager", "Developer", ""} {
		if schema.AllowsRole(role) {
			t.Errorf("expected role %q to be rejected", role)
		}
	}
}

func TestRequiresMarkdown(t *testing.T) {
	schema := DefaultSchema()

	if !schema.RequiresMarkdown("project") || !schema.RequiresMarkdown("todo") {
		t.Error("project and todo must require markdown paths")
	}
	if schema.RequiresMarkdown("log") {
		t.Error("log must not require a markdown path")
	}
}
