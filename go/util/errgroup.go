package util

import (
	"sort"
	"sync"

	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// NamedError is the error returned by the function that was started under
// Name.
type NamedError struct {
	Name string
	Err  error
}

func (e *NamedError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *NamedError) Unwrap() error {
	return e.Err
}

// NamedErrGroup is like errgroup.Group, except each function in the group gets
// a name. It waits for all goroutines to finish and reports all errors by name.
// Unlike errgroup.Group, one failure does not stop the others.
type NamedErrGroup struct {
	group errgroup.Group
	errs  map[string]error
	mtx   sync.Mutex
}

// NewNamedErrGroup returns a NamedErrGroup that runs at most limit functions
// at once. limit <= 0 means no limit.
func NewNamedErrGroup(limit int) *NamedErrGroup {
	g := &NamedErrGroup{
		errs: map[string]error{},
	}
	if limit > 0 {
		g.group.SetLimit(limit)
	}
	return g
}

// Go runs the given function in a goroutine, blocking while the limit is
// reached.
func (g *NamedErrGroup) Go(name string, fn func() error) {
	g.group.Go(func() error {
		if err := fn(); err != nil {
			g.mtx.Lock()
			defer g.mtx.Unlock()
			g.errs[name] = err
		}
		return nil
	})
}

// Wait waits for all of the goroutines to finish and returns a
// *multierror.Error holding one *NamedError per failure, sorted by name, or
// nil.
func (g *NamedErrGroup) Wait() error {
	_ = g.group.Wait()
	g.mtx.Lock()
	defer g.mtx.Unlock()
	names := make([]string, 0, len(g.errs))
	for name := range g.errs {
		names = append(names, name)
	}
	sort.Strings(names)
	var ret *multierror.Error
	for _, name := range names {
		ret = multierror.Append(ret, &NamedError{Name: name, Err: g.errs[name]})
	}
	return ret.ErrorOrNil()
}
