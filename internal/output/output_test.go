package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, "The change looks correct."))

	assert.Equal(t, "\nCode Review Results:\nThe change looks correct.\n", buf.String())
}

func TestWrite_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.txt")
	require.NoError(t, Write("All good.", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\nCode Review Results:\nAll good.\n", string(data))
}

func TestWrite_BadPath(t *testing.T) {
	err := Write("text", filepath.Join(t.TempDir(), "missing", "review.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output file")
}
