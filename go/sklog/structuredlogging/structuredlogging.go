// Package structuredlogging implements sklogimpl.Logger and writes one JSON
// log entry per message, in the format Cloud Logging ingests from
// stdout/stderr. Nothing is sent over the network.
package structuredlogging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"runtime"
	"strings"

	"cloud.google.com/go/logging"
	"cloud.google.com/go/logging/apiv2/loggingpb"
	"github.com/lain9293/simple-lisp/go/skerr"
	"github.com/lain9293/simple-lisp/go/sklog/sklogimpl"
	"google.golang.org/api/option"
)

// placeholders required by the client; unused with RedirectAsJSON.
const (
	projectID = "simple-lisp"
	logID     = "lisp"
)

// StructuredLogger writes JSON log entries to an io.Writer.
type StructuredLogger struct {
	logger *logging.Logger
}

// New returns a StructuredLogger writing to w. labels are attached to every
// entry.
func New(ctx context.Context, w io.Writer, labels map[string]string) (*StructuredLogger, error) {
	logsClient, err := logging.NewClient(ctx, projectID, option.WithoutAuthentication())
	if err != nil {
		return nil, skerr.Wrapf(err, "creating logging client")
	}
	opts := []logging.LoggerOption{logging.RedirectAsJSON(w)}
	if len(labels) > 0 {
		opts = append(opts, logging.CommonLabels(labels))
	}
	return &StructuredLogger{
		logger: logsClient.Logger(logID, opts...),
	}, nil
}

// Flush implements sklogimpl.Logger.
func (s *StructuredLogger) Flush() {
	if err := s.logger.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush logging.Logger: %s", err)
	}
}

// Log implements sklogimpl.Logger.
func (s *StructuredLogger) Log(depth int, severity sklogimpl.Severity, tmpl string, args ...interface{}) {
	s.LogCtx(context.Background(), depth+1, severity, tmpl, args...)
}

// LogCtx is like Log but also attaches the labels stored in ctx by
// WithContext.
func (s *StructuredLogger) LogCtx(ctx context.Context, depth int, severity sklogimpl.Severity, tmpl string, args ...interface{}) {
	var buf bytes.Buffer
	if tmpl == "" {
		fmt.Fprint(&buf, args...)
	} else {
		fmt.Fprintf(&buf, tmpl, args...)
	}
	s.emit(ctx, depth, severity, buf.String())
	if severity == sklogimpl.Fatal {
		s.emit(ctx, depth, severity, string(stacks(true)))
		s.Flush()
		os.Exit(255)
	}
}

// stacks is a wrapper for runtime.Stack that attempts to recover the data for all goroutines.
func stacks(all bool) []byte {
	// We don't know how big the traces are, so grow a few times if they don't fit. Start large, though.
	n := 10000
	if all {
		n = 100000
	}
	var trace []byte
	for i := 0; i < 5; i++ {
		trace = make([]byte, n)
		nbytes := runtime.Stack(trace, all)
		if nbytes < len(trace) {
			return trace[:nbytes]
		}
		n *= 2
	}
	return trace
}

func (s *StructuredLogger) emit(ctx context.Context, depth int, severity sklogimpl.Severity, msg string) {
	loc := sourceLocation(depth)
	c := getCtx(ctx)
	for part := range splitMessage(msg) {
		entry := logging.Entry{
			Payload:        part,
			Severity:       convertSeverity(severity),
			SourceLocation: loc,
		}
		if c != nil {
			entry.Labels = c.Labels
		}
		s.logger.Log(entry)
	}
}

func convertSeverity(severity sklogimpl.Severity) logging.Severity {
	switch severity {
	case sklogimpl.Debug:
		return logging.Debug
	case sklogimpl.Info:
		return logging.Info
	case sklogimpl.Warning:
		return logging.Warning
	case sklogimpl.Error:
		return logging.Error
	case sklogimpl.Fatal:
		return logging.Alert
	default:
		return logging.Default
	}
}

func sourceLocation(depth int) *loggingpb.LogEntrySourceLocation {
	_, file, line, ok := runtime.Caller(3 + depth)
	if !ok {
		return nil
	}
	if slash := strings.LastIndex(file, "/"); slash >= 0 {
		file = file[slash+1:]
	}
	return &loggingpb.LogEntrySourceLocation{
		File: file,
		Line: int64(line),
	}
}

// maxLogMessageBytes is the largest payload of a single entry. Rendered
// trees of large programs can exceed it.
const maxLogMessageBytes = 50 * 1024

// splitMessage splits msg into chunks of at most maxLogMessageBytes, keeping
// lines intact where possible.
func splitMessage(msg string) iter.Seq[string] {
	if len(msg) <= maxLogMessageBytes {
		return func(yield func(string) bool) {
			yield(msg)
		}
	}

	splitLine := func(line string, yield func(string) bool) bool {
		for len(line) > maxLogMessageBytes {
			if !yield(line[:maxLogMessageBytes]) {
				return false
			}
			line = line[maxLogMessageBytes:]
		}
		if len(line) > 0 {
			if !yield(line) {
				return false
			}
		}
		return true
	}

	return func(yield func(string) bool) {
		var b strings.Builder
		b.Grow(maxLogMessageBytes)
		firstLine := true
		for line := range strings.SplitSeq(msg, "\n") {
			if len(line) > maxLogMessageBytes {
				if b.Len() > 0 {
					if !yield(b.String()) {
						return
					}
					b.Reset()
				}
				if !splitLine(line, yield) {
					return
				}
			} else {
				if b.Len()+len(line)+1 > maxLogMessageBytes {
					if !yield(b.String()) {
						return
					}
					b.Reset()
				} else if !firstLine {
					b.WriteString("\n")
				}
				b.WriteString(line)
			}
			firstLine = false
		}
		if b.Len() > 0 {
			yield(b.String())
		}
	}
}

var (
	contextKey = &struct{}{}
)

// Context carries per-request labels, e.g. the source file being evaluated.
type Context struct {
	Labels map[string]string
}

func getCtx(ctx context.Context) *Context {
	if v := ctx.Value(contextKey); v != nil {
		return v.(*Context)
	}
	return nil
}

// WithContext returns a copy of ctx whose entries carry v's labels.
func WithContext(ctx context.Context, v Context) context.Context {
	return context.WithValue(ctx, contextKey, &v)
}

// Assert that we implement the sklogimpl.CtxLogger interface.
var _ sklogimpl.CtxLogger = (*StructuredLogger)(nil)
