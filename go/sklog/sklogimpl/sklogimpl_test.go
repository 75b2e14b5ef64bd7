package sklogimpl

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines   []string
	flushed int
}

func (r *recordingLogger) Log(_ int, severity Severity, format string, args ...interface{}) {
	msg := fmt.Sprint(args...)
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	r.lines = append(r.lines, severity.String()+" "+msg)
}

func (r *recordingLogger) Flush() {
	r.flushed++
}

func TestLog_RespectsMinSeverity(t *testing.T) {
	r := &recordingLogger{}
	SetLogger(r)
	defer SetLogger(nil)
	defer SetMinSeverity(Debug)

	SetMinSeverity(Warning)
	Log(0, Info, "", "dropped")
	Log(0, Warning, "%d forms", 3)
	Log(0, Error, "", "kept")
	Flush()

	assert.Equal(t, []string{"WARNING 3 forms", "ERROR kept"}, r.lines)
	assert.Equal(t, 1, r.flushed)
	assert.Equal(t, Warning, MinSeverity())
}

func TestSetMinSeverity_ClampsToFatal(t *testing.T) {
	defer SetMinSeverity(Debug)
	SetMinSeverity(Severity(42))
	assert.Equal(t, Fatal, MinSeverity())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "DEBUG", Debug.String())
	assert.Equal(t, "FATAL", Fatal.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}

func TestLog_NoLogger_NoPanic(t *testing.T) {
	SetLogger(nil)
	Log(0, Error, "", "nowhere")
	Flush()
}

type ctxKey struct{}

type ctxLogger struct {
	recordingLogger
}

func (c *ctxLogger) LogCtx(ctx context.Context, depth int, severity Severity, format string, args ...interface{}) {
	c.Log(depth, severity, fmt.Sprintf("[%v] ", ctx.Value(ctxKey{}))+format, args...)
}

func TestLogCtx_CtxLogger_ReceivesContext(t *testing.T) {
	c := &ctxLogger{}
	SetLogger(c)
	defer SetLogger(nil)
	SetMinSeverity(Debug)

	ctx := context.WithValue(context.Background(), ctxKey{}, "a.lisp")
	LogCtx(ctx, 0, Info, "ran %d", 3)
	assert.Equal(t, []string{"INFO [a.lisp] ran 3"}, c.lines)
}

func TestLogCtx_PlainLogger_FallsBackToLog(t *testing.T) {
	r := &recordingLogger{}
	SetLogger(r)
	defer SetLogger(nil)
	SetMinSeverity(Info)

	LogCtx(context.Background(), 0, Debug, "dropped")
	LogCtx(context.Background(), 0, Error, "kept")
	assert.Equal(t, []string{"ERROR kept"}, r.lines)
}
