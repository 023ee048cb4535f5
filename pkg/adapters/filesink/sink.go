// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"path/filepath"

	"github.com/user/tilelapse/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new file sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveManifestJSON saves the located frame manifest.
func (s *Sink) SaveManifestJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "frames.json"), data)
}

// SaveSizingJSON saves the auto-size decision.
func (s *Sink) SaveSizingJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "sizing.json"), data)
}

// SaveEncoderLog saves the encoder command line and captured output.
func (s *Sink) SaveEncoderLog(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "ffmpeg.log"), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
