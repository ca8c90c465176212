package lint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdevagent/specdev/internal/scaffold"
	"github.com/specdevagent/specdev/internal/testutil"
)

func TestParseStage(t *testing.T) {
	for _, name := range []string{"bootstrap", "post-init", "post-scaffold"} {
		stage, err := ParseStage(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(stage))
	}

	_, err := ParseStage("post-release")
	assert.Error(t, err)
}

func TestCheckStructure_MissingRootIsFatal(t *testing.T) {
	issues, err := CheckStructure(filepath.Join(t.TempDir(), "nope"), StagePostInit)

	require.Error(t, err)
	assert.Nil(t, issues)

	var fatal *FatalError
	require.True(t, errors.As(err, &fatal))
	assert.Contains(t, fatal.Error(), "project root does not exist")
}

func TestCheckStructure_RootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	_, err := CheckStructure(root, StagePostInit)
	var fatal *FatalError
	require.True(t, errors.As(err, &fatal))
}

func TestCheckStructure_CompleteProject(t *testing.T) {
	root := testutil.WriteProject(t, testutil.ValidMetadata())

	issues, err := CheckStructure(root, StagePostInit)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckStructure_EmptyRootReportsEverything(t *testing.T) {
	issues, err := CheckStructure(t.TempDir(), StagePostInit)
	require.NoError(t, err)

	// One issue per base dir, base file, and the metadata document.
	assert.Len(t, issues, len(scaffold.BaseDirs)+len(scaffold.BaseFiles)+1)
	assert.Equal(t, CodeMissingDirectory, issues[0].Code)
	assert.Equal(t, scaffold.BaseDirs[0], issues[0].FieldPath)
}

func TestCheckStructure_BootstrapOnlyNeedsMetadata(t *testing.T) {
	root := t.TempDir()
	testutil.WriteMetadata(t, root, testutil.ValidMetadata())

	issues, err := CheckStructure(root, StageBootstrap)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckStructure_WrongEntryType(t *testing.T) {
	root := testutil.WriteProject(t, testutil.ValidMetadata())

	// Replace a required file with a directory.
	require.NoError(t, os.Remove(filepath.Join(root, "todo.md")))
	require.NoError(t, os.Mkdir(filepath.Join(root, "todo.md"), 0o755))

	issues, err := CheckStructure(root, StagePostInit)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeWrongEntryType, issues[0].Code)
	assert.Equal(t, "todo.md", issues[0].FieldPath)
	assert.Contains(t, issues[0].Message, "must be a file")
}

func TestCheckStructure_Deterministic(t *testing.T) {
	root := t.TempDir()

	first, err := CheckStructure(root, StagePostInit)
	require.NoError(t, err)
	second, err := CheckStructure(root, StagePostInit)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
