package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestDataDir_IsNextToCaller(t *testing.T) {
	dir, err := TestDataDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, filepath.Join("go", "testutils", "testdata")), dir)
}

func TestReadFile_Missing_ReturnsError(t *testing.T) {
	_, err := ReadFile("no-such-file.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file.txt")
}

func TestWriteFile(t *testing.T) {
	p := WriteFile(t, "prog.lisp", "(car (1 2))")
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "(car (1 2))", string(b))
}

func TestAssertDeepEqual(t *testing.T) {
	AssertDeepEqual(t, []interface{}{int64(1), "a"}, []interface{}{int64(1), "a"})
}
