package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdevagent/specdev/internal/metadata"
)

func TestInit_CreatesBaseStructure(t *testing.T) {
	root := t.TempDir()

	result, err := Init(root, false)
	require.NoError(t, err)

	for _, dir := range BaseDirs {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err, "expected directory %s", dir)
		assert.True(t, info.IsDir())
	}
	for _, f := range BaseFiles {
		content, err := os.ReadFile(filepath.Join(root, f.Path))
		require.NoError(t, err, "expected file %s", f.Path)
		assert.Equal(t, f.Content, string(content))
	}

	// All files plus project.json were created, nothing skipped.
	assert.Len(t, result.Created, len(BaseFiles)+1)
	assert.Empty(t, result.Skipped)
}

func TestInit_WritesValidMetadataTemplate(t *testing.T) {
	root := t.TempDir()

	_, err := Init(root, false)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, metadata.MetadataFileName))
	require.NoError(t, err)

	var meta metadata.ProjectMetadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, "Sample Project", meta.Name)
	assert.Len(t, meta.Agents, 1)
	assert.Equal(t, "orchestrator", meta.Agents[0].Role)
	assert.Equal(t, "project.md", meta.Documents["project"])
}

func TestInit_SkipsExistingFiles(t *testing.T) {
	root := t.TempDir()
	custom := []byte("# My own backlog\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "todo.md"), custom, 0o644))

	result, err := Init(root, false)
	require.NoError(t, err)

	assert.Contains(t, result.Skipped, "todo.md")
	content, err := os.ReadFile(filepath.Join(root, "todo.md"))
	require.NoError(t, err)
	assert.Equal(t, custom, content)
}

func TestInit_ForceOverwrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "todo.md"), []byte("old"), 0o644))

	result, err := Init(root, true)
	require.NoError(t, err)

	assert.Contains(t, result.Created, "todo.md")
	assert.Empty(t, result.Skipped)
}

func TestInit_CreatesRootWhenAbsent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "project")

	_, err := Init(root, false)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
