package skerr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindError struct {
	kind int
}

func (k *kindError) Error() string {
	return "kind error"
}

func TestWrap_Nil_ReturnsNil(t *testing.T) {
	require.NoError(t, Wrap(nil))
	require.NoError(t, Wrapf(nil, "context %d", 1))
}

func TestWrap_RecordsLocation(t *testing.T) {
	err := Wrap(io.EOF)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EOF. At skerr_test.go:")
	assert.Equal(t, io.EOF, Unwrap(err))
	assert.True(t, errors.Is(err, io.EOF))
}

func TestWrap_AlreadyWrapped_Unchanged(t *testing.T) {
	err := Wrap(io.EOF)
	assert.Same(t, err, Wrap(err))
}

func TestWrapf_StacksContext(t *testing.T) {
	err := Wrapf(io.EOF, "reading %s", "a.lisp")
	err = Wrapf(err, "running")
	require.Error(t, err)
	assert.Regexp(t, `^running: reading a.lisp: EOF. At skerr_test.go:\d+`, err.Error())
	assert.Equal(t, io.EOF, Unwrap(err))
}

func TestFmt(t *testing.T) {
	err := Fmt("bad value %d", 3)
	assert.Regexp(t, `^bad value 3. At skerr_test.go:\d+`, err.Error())
}

func TestWrap_ErrorsAsReachesCause(t *testing.T) {
	err := Wrapf(&kindError{kind: 2}, "evaluating")
	var ke *kindError
	require.True(t, errors.As(err, &ke))
	assert.Equal(t, 2, ke.kind)
}

func TestCallStack(t *testing.T) {
	st := CallStack(1, 0)
	require.Len(t, st, 1)
	assert.Equal(t, "skerr_test.go", st[0].File)
}
