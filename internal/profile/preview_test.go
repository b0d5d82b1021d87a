package profile

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewAddShowsBlockWithoutWriting(t *testing.T) {
	m, path := newTestManager(t)
	require.NoError(t, os.WriteFile(path, []byte("export PRE=1\n"), 0o644))
	t.Setenv("DEVMAKE_TEST_FOO", "old")

	diff, err := m.PreviewAdd("test", []Var{{Name: "DEVMAKE_TEST_FOO", Values: []string{"new"}}})
	require.NoError(t, err)

	assert.Contains(t, diff, "+"+strings.TrimSuffix(Header("test"), "\n"))
	sep := string(os.PathListSeparator)
	assert.Contains(t, diff, "+export DEVMAKE_TEST_FOO=new"+sep+"$DEVMAKE_TEST_FOO")

	// Nothing was applied.
	assert.Equal(t, "old", os.Getenv("DEVMAKE_TEST_FOO"))
	assert.Equal(t, "export PRE=1\n", readProfile(t, path))
}

func TestPreviewAddMissingProfile(t *testing.T) {
	m, path := newTestManager(t)
	t.Setenv("DEVMAKE_TEST_FOO", "")

	diff, err := m.PreviewAdd("test", []Var{{Name: "DEVMAKE_TEST_FOO", Values: []string{"bar"}}})
	require.NoError(t, err)

	assert.Contains(t, diff, "+export DEVMAKE_TEST_FOO=bar")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPreviewAddValidation(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.PreviewAdd("", nil)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestPreviewRemoveShowsDeletedBlock(t *testing.T) {
	m, path := newTestManager(t)
	content := "export PRE=1\n" + Header("test") + "export A=1\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	diff, err := m.PreviewRemove("test")
	require.NoError(t, err)

	assert.Contains(t, diff, "-"+strings.TrimSuffix(Header("test"), "\n"))
	assert.Contains(t, diff, "-export A=1")
	assert.Equal(t, content, readProfile(t, path))
}

func TestPreviewRemoveNoChange(t *testing.T) {
	m, path := newTestManager(t)
	require.NoError(t, os.WriteFile(path, []byte("export PRE=1\n"), 0o644))

	diff, err := m.PreviewRemove("test")
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestPreviewRemoveMissingProfile(t *testing.T) {
	m, _ := newTestManager(t)

	diff, err := m.PreviewRemove("test")
	require.NoError(t, err)
	assert.Empty(t, diff)
}
