package encode

import (
	"context"
	"errors"
	"testing"

	"github.com/user/tilelapse/pkg/adapters/logger"
	"github.com/user/tilelapse/pkg/mocks"
	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/ports"
	"github.com/user/tilelapse/pkg/timelapse"
)

func testInput() pipeline.EncodeInput {
	return pipeline.EncodeInput{
		FrameDir:    "/tmp/frames_000001",
		Pattern:     "frame_%05d.png",
		OutputPath:  "timelapse/timelapse_20250816.mp4",
		FPS:         9,
		Codec:       "libx264",
		CRF:         15,
		Preset:      "slow",
		PixelFormat: "yuv444p",
		ExtraArgs:   []string{"-tune", "animation"},
	}
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	encoder := &mocks.SequenceEncoder{
		EncodeFunc: func(ctx context.Context, job ports.EncodeJob) error {
			// Simulate the external encoder producing the file.
			return fs.WriteFile(job.OutputPath, []byte("mp4-data"))
		},
	}

	stage := NewStage(encoder, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(encoder.Jobs) != 1 {
		t.Fatalf("expected 1 encode job, got %d", len(encoder.Jobs))
	}
	job := encoder.Jobs[0]
	if job.FrameDir != "/tmp/frames_000001" || job.Pattern != "frame_%05d.png" {
		t.Errorf("unexpected sequence input: %s / %s", job.FrameDir, job.Pattern)
	}
	if job.Codec != "libx264" || job.CRF != 15 || job.Preset != "slow" || job.PixelFormat != "yuv444p" {
		t.Errorf("encode parameters not passed through: %+v", job)
	}
	if job.FPS != 9 {
		t.Errorf("fps = %d, want 9", job.FPS)
	}
	if len(job.ExtraArgs) != 2 {
		t.Errorf("extra args not passed through: %v", job.ExtraArgs)
	}

	if result.OutputPath != "timelapse/timelapse_20250816.mp4" {
		t.Errorf("output path = %s", result.OutputPath)
	}
	if result.FileSize != int64(len("mp4-data")) {
		t.Errorf("file size = %d", result.FileSize)
	}

	// The output directory is created before the encoder runs.
	if !fs.HasDir("timelapse") {
		t.Error("expected output directory to be created")
	}
}

func TestStage_Execute_EncoderFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	encoder := &mocks.SequenceEncoder{
		EncodeFunc: func(ctx context.Context, job ports.EncodeJob) error {
			return timelapse.ErrEncodeFailed
		},
	}

	stage := NewStage(encoder, fs, logger.NewNoop())

	_, err := stage.Execute(context.Background(), testInput())
	if !errors.Is(err, timelapse.ErrEncodeFailed) {
		t.Errorf("expected ErrEncodeFailed, got %v", err)
	}
}

func TestStage_Execute_EncoderNotFound(t *testing.T) {
	fs := mocks.NewFileSystem()
	encoder := &mocks.SequenceEncoder{
		EncodeFunc: func(ctx context.Context, job ports.EncodeJob) error {
			return timelapse.ErrEncoderNotFound
		},
	}

	stage := NewStage(encoder, fs, logger.NewNoop())

	_, err := stage.Execute(context.Background(), testInput())
	if !errors.Is(err, timelapse.ErrEncoderNotFound) {
		t.Errorf("expected ErrEncoderNotFound, got %v", err)
	}
}
