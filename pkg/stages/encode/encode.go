// Package encode implements the video encoding stage.
package encode

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/ports"
)

// Stage drives the external encoder over the prepared frame sequence.
type Stage struct {
	encoder ports.SequenceEncoder
	fs      ports.FileSystem
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.SequenceEncoder, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		fs:      fs,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute encodes the prepared sequence into the daily MP4. The invocation is
// synchronous; the stage blocks until the encoder finishes or fails.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	outDir := filepath.Dir(input.OutputPath)
	if outDir != "" && outDir != "." {
		if err := s.fs.MkdirAll(outDir); err != nil {
			return result, fmt.Errorf("create output directory: %w", err)
		}
	}

	job := ports.EncodeJob{
		FrameDir:    input.FrameDir,
		Pattern:     input.Pattern,
		OutputPath:  input.OutputPath,
		FPS:         input.FPS,
		Codec:       input.Codec,
		CRF:         input.CRF,
		Preset:      input.Preset,
		PixelFormat: input.PixelFormat,
		ExtraArgs:   input.ExtraArgs,
	}

	s.logger.Debug("Encoding %s with %s (crf %d, preset %s, %s)",
		input.OutputPath, input.Codec, input.CRF, input.Preset, input.PixelFormat)

	if err := s.encoder.Encode(ctx, job); err != nil {
		return result, err
	}

	size, err := s.fs.FileSize(input.OutputPath)
	if err != nil {
		return result, fmt.Errorf("stat output: %w", err)
	}

	result.OutputPath = input.OutputPath
	result.FileSize = size
	return result, nil
}

// Ensure Stage implements the pipeline stage interface
var _ pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult] = (*Stage)(nil)
