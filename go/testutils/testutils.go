// Convenience utilities for testing.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// AssertDeepEqual fails the test if the two objects do not pass reflect.DeepEqual.
func AssertDeepEqual(t testing.TB, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		require.FailNow(t, fmt.Sprintf("Objects do not match: \na:\n%s\n\nb:\n%s\n", spew.Sdump(a), spew.Sdump(b)))
	}
}

// TestDataDir returns the path to the caller's testdata directory, which
// is assumed to be "<path to caller dir>/testdata".
func TestDataDir() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("Could not find test data dir: runtime.Caller() failed.")
	}
	for skip := 0; ; skip++ {
		_, file, _, ok := runtime.Caller(skip)
		if !ok {
			return "", fmt.Errorf("Could not find test data dir: runtime.Caller() failed.")
		}
		if file != thisFile {
			return filepath.Join(filepath.Dir(file), "testdata"), nil
		}
	}
}

// ReadFile reads a file from the caller's testdata directory.
func ReadFile(filename string) (string, error) {
	dir, err := TestDataDir()
	if err != nil {
		return "", fmt.Errorf("Could not read %s: %v", filename, err)
	}
	b, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("Could not read %s: %v", filename, err)
	}
	return string(b), nil
}

// MustReadFile reads a file from the caller's testdata directory and fails
// the test on error.
func MustReadFile(t testing.TB, filename string) string {
	t.Helper()
	s, err := ReadFile(filename)
	require.NoError(t, err)
	return s
}

// WriteFile writes contents to a new file in a temporary directory owned by
// the test and returns its path.
func WriteFile(t testing.TB, name, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0644))
	return p
}
