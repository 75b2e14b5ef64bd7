package util

import (
	"io"
	"os"

	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/sklog"
)

// StdinName is the file name that stands for standard input.
const StdinName = "-"

// Close wraps an io.Closer and logs an error if one is returned.
func Close(c io.Closer) {
	if err := c.Close(); err != nil {
		// Don't start the stacktrace here, but at the caller's location
		sklog.ErrorfWithDepth(1, "Failed to Close(): %v", err)
	}
}

// LogErr logs err if it's not nil. This is intended to be used
// for calls where generally a returned error can be ignored.
func LogErr(err error) {
	if err != nil {
		sklog.ErrorfWithDepth(1, "Unexpected error: %s", err)
	}
}

// ReadFileOrStdin returns the contents of the named file, or everything
// remaining on stdin if name is StdinName.
func ReadFileOrStdin(name string, stdin io.Reader) (string, error) {
	if name == StdinName {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", skerr.Wrapf(err, "reading stdin")
		}
		return string(b), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return "", skerr.Wrapf(err, "opening %s", name)
	}
	defer Close(f)
	b, err := io.ReadAll(f)
	if err != nil {
		return "", skerr.Wrapf(err, "reading %s", name)
	}
	return string(b), nil
}
