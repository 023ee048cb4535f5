package ports

import "context"

// EncodeJob describes one external encoder invocation over a prepared
// frame sequence.
type EncodeJob struct {
	// FrameDir is the directory holding the prepared frames.
	FrameDir string
	// Pattern is the sequence pattern within FrameDir (e.g. frame_%05d.png).
	Pattern string
	// OutputPath is the MP4 file to produce.
	OutputPath string

	FPS         int
	Codec       string
	CRF         int
	Preset      string
	PixelFormat string
	// ExtraArgs are verbatim passthrough flags appended before the output path.
	ExtraArgs []string
}

// SequenceEncoder abstracts the external video encoder. The invocation is
// synchronous and blocking; cancelling the context terminates the encoder.
type SequenceEncoder interface {
	Encode(ctx context.Context, job EncodeJob) error
}
