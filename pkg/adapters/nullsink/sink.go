// Package nullsink provides a no-op debug sink.
package nullsink

import "github.com/user/tilelapse/pkg/ports"

// Sink discards all debug output.
type Sink struct{}

// New creates a new null sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false so callers can skip serialization work.
func (s *Sink) Enabled() bool {
	return false
}

// SaveManifestJSON does nothing.
func (s *Sink) SaveManifestJSON(data []byte) error {
	return nil
}

// SaveSizingJSON does nothing.
func (s *Sink) SaveSizingJSON(data []byte) error {
	return nil
}

// SaveEncoderLog does nothing.
func (s *Sink) SaveEncoderLog(data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
