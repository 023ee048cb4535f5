package ports

// DebugSink receives intermediate pipeline artifacts for inspection.
// Implementations decide whether and where to persist them.
type DebugSink interface {
	// Enabled reports whether the sink persists anything. Callers may skip
	// expensive serialization when it returns false.
	Enabled() bool

	// SaveManifestJSON saves the located frame manifest.
	SaveManifestJSON(data []byte) error

	// SaveSizingJSON saves the auto-size decision.
	SaveSizingJSON(data []byte) error

	// SaveEncoderLog saves the encoder command line and captured output.
	SaveEncoderLog(data []byte) error
}
