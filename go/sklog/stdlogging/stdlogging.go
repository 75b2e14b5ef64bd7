// Package stdlogging implements sklogimpl.Logger and logs to either stderr or stdout.
package stdlogging

import (
	"fmt"

	logger "github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/lain9293/simple-lisp/go/sklog/sklogimpl"
)

type stdlog struct {
	logger slog.Logger
}

// New returns a sklogimpl.Logger that writes to a SyncWriter, such as
// os.Stdout or os.Stderr.
func New(dst logger.SyncWriter) sklogimpl.Logger {
	l := logger.NewFromOptions(&logger.Options{
		SyncWriter:   dst,
		DepthDelta:   4,
		IncludeDebug: true,
	})
	return &stdlog{
		logger: l,
	}
}

// NewQuiet returns a sklogimpl.Logger that discards everything except Fatal,
// which still exits.
func NewQuiet() sklogimpl.Logger {
	return &stdlog{
		logger: logger.NewNopLogger(),
	}
}

// Log implements sklogimpl.Logger.
func (s *stdlog) Log(_ int, severity sklogimpl.Severity, format string, args ...interface{}) {
	var msg string
	if format == "" {
		msg = fmt.Sprint(args...)
	} else {
		msg = fmt.Sprintf(format, args...)
	}
	switch severity {
	case sklogimpl.Debug:
		s.logger.Debug(msg)
	case sklogimpl.Info:
		s.logger.Info(msg)
	case sklogimpl.Warning:
		s.logger.Warning(msg)
	case sklogimpl.Error:
		s.logger.Error(msg)
	case sklogimpl.Fatal:
		s.logger.Fatal(msg)
	default:
		s.logger.Error(msg)
	}
}

// Flush implements sklogimpl.Logger.
func (s *stdlog) Flush() {
	// noop
}
