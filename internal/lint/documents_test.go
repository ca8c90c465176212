package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdevagent/specdev/internal/metadata"
)

func TestResolveDocuments_DisabledReturnsNothing(t *testing.T) {
	doc := parseDoc(t, `{"documents": {"log": "development.log"}}`)

	issues, err := ResolveDocuments(doc, t.TempDir(), metadata.DefaultSchema(), false)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestResolveDocuments_MissingFile(t *testing.T) {
	root := t.TempDir()
	doc := parseDoc(t, `{"documents": {"log": "development.log"}}`)

	issues, err := ResolveDocuments(doc, root, metadata.DefaultSchema(), true)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeDocumentNotFound, issues[0].Code)
	assert.Equal(t, "documents.log", issues[0].FieldPath)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "development.log")
}

func TestResolveDocuments_AllPresent(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"project.md", "todo.md", "development.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}
	doc := parseDoc(t, `{"documents": {
		"project": "project.md", "todo": "todo.md", "log": "development.log"
	}}`)

	issues, err := ResolveDocuments(doc, root, metadata.DefaultSchema(), true)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestResolveDocuments_DirectoryIsNotARegularFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "project.md"), 0o755))
	doc := parseDoc(t, `{"documents": {"project": "project.md"}}`)

	issues, err := ResolveDocuments(doc, root, metadata.DefaultSchema(), true)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeDocumentNotFound, issues[0].Code)
	assert.Contains(t, issues[0].Message, "not a regular file")
}

func TestResolveDocuments_DanglingSymlink(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "development.log")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.log"), link))
	doc := parseDoc(t, `{"documents": {"log": "development.log"}}`)

	issues, err := ResolveDocuments(doc, root, metadata.DefaultSchema(), true)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeDocumentNotFound, issues[0].Code)
}

func TestResolveDocuments_SymlinkTargetFollowed(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real.log")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "development.log")))
	doc := parseDoc(t, `{"documents": {"log": "development.log"}}`)

	issues, err := ResolveDocuments(doc, root, metadata.DefaultSchema(), true)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestResolveDocuments_SkipsNonStringEntries(t *testing.T) {
	doc := parseDoc(t, `{"documents": {"project": 42, "log": ""}}`)

	issues, err := ResolveDocuments(doc, t.TempDir(), metadata.DefaultSchema(), true)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestResolveDocuments_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	doc := parseDoc(t, `{"documents": {
		"zeta": "z.md", "log": "development.log", "project": "project.md", "alpha": "a.md"
	}}`)

	issues, err := ResolveDocuments(doc, root, metadata.DefaultSchema(), true)
	require.NoError(t, err)

	wantPaths := []string{"documents.project", "documents.log", "documents.alpha", "documents.zeta"}
	require.Len(t, issues, len(wantPaths))
	for i, path := range wantPaths {
		assert.Equal(t, path, issues[i].FieldPath)
	}
}
