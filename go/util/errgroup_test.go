package util

import (
	"errors"
	"sync/atomic"
	"testing"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestNamedErrGroup_NoErrors(t *testing.T) {
	g := NewNamedErrGroup(2)
	var n int32
	for _, name := range []string{"a", "b", "c"} {
		g.Go(name, func() error {
			atomic.AddInt32(&n, 1)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(3), n)
}

func TestNamedErrGroup_CollectsAllErrorsSortedByName(t *testing.T) {
	g := NewNamedErrGroup(0)
	g.Go("z.lisp", func() error { return errBoom })
	g.Go("ok.lisp", func() error { return nil })
	g.Go("a.lisp", func() error { return errors.New("bad") })
	err := g.Wait()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	assert.Equal(t, "a.lisp: bad", merr.Errors[0].Error())
	assert.Equal(t, "z.lisp: boom", merr.Errors[1].Error())
	assert.True(t, errors.Is(merr.Errors[1], errBoom))
}

func TestNamedErrGroup_RespectsLimit(t *testing.T) {
	g := NewNamedErrGroup(1)
	var running, maxRunning int32
	for _, name := range []string{"a", "b", "c", "d"} {
		g.Go(name, func() error {
			cur := atomic.AddInt32(&running, 1)
			for {
				old := atomic.LoadInt32(&maxRunning)
				if cur <= old || atomic.CompareAndSwapInt32(&maxRunning, old, cur) {
					break
				}
			}
			atomic.AddInt32(&running, -1)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), maxRunning)
}
