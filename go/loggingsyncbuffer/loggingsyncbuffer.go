// Package loggingsyncbuffer provides a logger.SyncWriter that keeps
// everything written to it in memory, so tests can inspect log output.
package loggingsyncbuffer

import (
	"bytes"
	"sync"
)

// SyncWriter is a goroutine-safe in-memory logger.SyncWriter.
type SyncWriter struct {
	mtx sync.Mutex
	buf bytes.Buffer
}

// New returns an empty SyncWriter.
func New() *SyncWriter {
	return &SyncWriter{}
}

// Write implements io.Writer.
func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.buf.Write(p)
}

// Sync implements logger.SyncWriter.
func (s *SyncWriter) Sync() error {
	return nil
}

// String returns everything written so far.
func (s *SyncWriter) String() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.buf.String()
}
