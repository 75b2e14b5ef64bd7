// timer makes timing operations easier.
package timer

import (
	"context"
	"time"

	"github.com/hako/durafmt"
	"github.com/lain9293/simple-lisp/go/sklog"
)

// Timer is for timing events. When finished the duration is reported
// via sklog at debug level.
//
// The standard way to use Timer is at the top of the func you
// want to measure:
//
//	defer timer.New("evaluating a.lisp").Stop()
type Timer struct {
	Begin time.Time
	Name  string
	ctx   context.Context
}

func New(name string) *Timer {
	return NewCtx(context.Background(), name)
}

// NewCtx is like New, but the report carries the labels stored in ctx.
func NewCtx(ctx context.Context, name string) *Timer {
	return &Timer{
		Begin: time.Now(),
		Name:  name,
		ctx:   ctx,
	}
}

// Stop logs and returns the time since the Timer was created.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.Begin)
	sklog.DebugfCtx(t.ctx, "%s took %s", t.Name, durafmt.Parse(d))
	return d
}
