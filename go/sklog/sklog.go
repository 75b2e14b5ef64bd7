// This package defines the logging functions (e.g. Info, Errorf, etc.).

package sklog

import (
	"context"
	"os"

	"github.com/lain9293/simple-lisp/go/sklog/sklogimpl"
	"github.com/lain9293/simple-lisp/go/sklog/stdlogging"
)

// WE MUST CALL SetLogger in an init function; otherwise messages logged
// before main() picks a backend would be lost.
func init() {
	sklogimpl.SetLogger(stdlogging.New(os.Stderr))
	sklogimpl.SetMinSeverity(sklogimpl.Info)
}

// SetLogger replaces the backend, e.g. with structuredlogging for JSON
// output or stdlogging.NewQuiet() in tests.
func SetLogger(l sklogimpl.Logger) {
	sklogimpl.SetLogger(l)
}

// SetVerbose turns debug messages on or off. They are off by default.
func SetVerbose(verbose bool) {
	if verbose {
		sklogimpl.SetMinSeverity(sklogimpl.Debug)
	} else {
		sklogimpl.SetMinSeverity(sklogimpl.Info)
	}
}

// Functions to log at various levels.
// Debug, Info, Warning, Error, and Fatal use fmt.Sprint to format the
// arguments.
// Functions ending in f use fmt.Sprintf to format the arguments.
// Functions ending in WithDepth allow the caller to change where the stacktrace
// starts. 0 (the default in all other calls) means to report starting at the
// caller. 1 would mean one level above, the caller's caller.  2 would be a
// level above that and so on.
func Debug(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Debug, "", msg...)
}

func Debugf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Debug, format, v...)
}

func Info(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Info, "", msg...)
}

func Infof(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Info, format, v...)
}

func InfofWithDepth(depth int, format string, v ...interface{}) {
	sklogimpl.Log(1+depth, sklogimpl.Info, format, v...)
}

func Warning(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Warning, "", msg...)
}

func Warningf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Warning, format, v...)
}

func WarningfWithDepth(depth int, format string, v ...interface{}) {
	sklogimpl.Log(1+depth, sklogimpl.Warning, format, v...)
}

func Error(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Error, "", msg...)
}

func Errorf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Error, format, v...)
}

func ErrorfWithDepth(depth int, format string, v ...interface{}) {
	sklogimpl.Log(1+depth, sklogimpl.Error, format, v...)
}

// The Ctx variants pass ctx to the backend, which may attach labels stored in
// it, see structuredlogging.WithContext.
func DebugfCtx(ctx context.Context, format string, v ...interface{}) {
	sklogimpl.LogCtx(ctx, 1, sklogimpl.Debug, format, v...)
}

func InfofCtx(ctx context.Context, format string, v ...interface{}) {
	sklogimpl.LogCtx(ctx, 1, sklogimpl.Info, format, v...)
}

func ErrorfCtx(ctx context.Context, format string, v ...interface{}) {
	sklogimpl.LogCtx(ctx, 1, sklogimpl.Error, format, v...)
}

// Fatal* exits the program after logging.
func Fatal(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Fatal, "", msg...)
}

func Fatalf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Fatal, format, v...)
}

func Flush() {
	sklogimpl.Flush()
}
