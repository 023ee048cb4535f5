package mocks

import "github.com/user/tilelapse/pkg/ports"

// DebugSink is a mock implementation of ports.DebugSink that records saves.
type DebugSink struct {
	// EnabledValue controls what Enabled reports (default false).
	EnabledValue bool

	ManifestJSON []byte
	SizingJSON   []byte
	EncoderLog   []byte
}

func (m *DebugSink) Enabled() bool {
	return m.EnabledValue
}

func (m *DebugSink) SaveManifestJSON(data []byte) error {
	m.ManifestJSON = append([]byte(nil), data...)
	return nil
}

func (m *DebugSink) SaveSizingJSON(data []byte) error {
	m.SizingJSON = append([]byte(nil), data...)
	return nil
}

func (m *DebugSink) SaveEncoderLog(data []byte) error {
	m.EncoderLog = append([]byte(nil), data...)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
