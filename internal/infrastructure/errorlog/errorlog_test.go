package errorlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

func TestWriter_AppendsOneLinePerCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	w := New(path)

	require.NoError(t, w.Log("first"))
	require.NoError(t, w.LogError(shared.NewGradeError("grading", "AddGrade", shared.ErrValueOutOfRange,
		"Invalid grade entry: 101.000000")))
	require.NoError(t, w.LogError(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nGrade Error: Invalid grade entry: 101.000000\n", string(data))
}

func TestWriter_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	require.NoError(t, New(path).Log("new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))
}

func TestWriter_NoFileUntilFirstLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	_ = New(path)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, New("").Path())
}

func TestWriter_UnwritableLocation(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "errors.log"))
	require.Error(t, w.Log("x"))
}
