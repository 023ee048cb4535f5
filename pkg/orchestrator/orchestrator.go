// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/ports"
	"github.com/user/tilelapse/pkg/timelapse"
)

// Config contains all configuration for one run.
type Config struct {
	Date timelapse.TargetDate

	// Input/Output
	InputDir  string
	OutputDir string

	// Sizing
	ForcedWidth     int
	ForcedHeight    int
	DownscaleFactor int

	// Encoding
	FPS         int
	Codec       string
	CRF         int
	Preset      string
	PixelFormat string
	ExtraArgs   []string

	// Overlay
	FontPath string
	FontSize float64

	// Behavior
	KeepFrames     bool
	SkipLatestCopy bool
}

// OutputPath returns the daily artifact path for the configured date.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("timelapse_%s.mp4", c.Date))
}

// LatestPath returns the fixed latest path.
func (c Config) LatestPath() string {
	return filepath.Join(c.OutputDir, "latest.mp4")
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	Date       timelapse.TargetDate
	FrameCount int

	Source pipeline.Dimension
	Video  pipeline.Dimension

	OutputPath string
	FileSize   int64

	// LatestPath is empty when publishing was skipped.
	LatestPath string

	// RetainedFrameDir is set when keep-frames left the prepared sequence
	// on disk for inspection.
	RetainedFrameDir string
}

// Orchestrator coordinates the execution of all pipeline stages. The run is
// strictly linear: locate, prepare, encode, publish. No stage retries and no
// stage runs concurrently with another.
type Orchestrator struct {
	locateStage  pipeline.Stage[pipeline.LocateInput, pipeline.LocateResult]
	prepareStage pipeline.Stage[pipeline.PrepareInput, pipeline.PrepareResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	publishStage pipeline.Stage[pipeline.PublishInput, pipeline.PublishResult]
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	locateStage pipeline.Stage[pipeline.LocateInput, pipeline.LocateResult],
	prepareStage pipeline.Stage[pipeline.PrepareInput, pipeline.PrepareResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	publishStage pipeline.Stage[pipeline.PublishInput, pipeline.PublishResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		locateStage:  locateStage,
		prepareStage: prepareStage,
		encodeStage:  encodeStage,
		publishStage: publishStage,
		fs:           fs,
		sink:         sink,
		logger:       logger,
	}
}

// Run executes the complete pipeline for one date.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{Date: config.Date}

	// 1. Locate frames
	o.logger.Info("Collecting frames for %s", config.Date)
	located, err := o.locateStage.Execute(ctx, pipeline.LocateInput{
		Date:     config.Date,
		InputDir: config.InputDir,
	})
	if err != nil {
		o.logger.Error("Failed to collect frames: %s", err)
		return result, fmt.Errorf("locate stage: %w", err)
	}
	o.logger.Info("Found %d frames", len(located.Frames))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(located.Frames, "", "  "); err == nil {
			o.sink.SaveManifestJSON(data)
		}
	}

	// 2. Prepare frames
	o.logger.Info("Preparing %d frames", len(located.Frames))
	prepared, err := o.prepareStage.Execute(ctx, pipeline.PrepareInput{
		Frames:          located.Frames,
		ForcedWidth:     config.ForcedWidth,
		ForcedHeight:    config.ForcedHeight,
		DownscaleFactor: config.DownscaleFactor,
		FontPath:        config.FontPath,
		FontSize:        config.FontSize,
	})
	if err != nil {
		o.logger.Error("Failed to prepare frames: %s", err)
		return result, fmt.Errorf("prepare stage: %w", err)
	}

	// The prepared sequence is scoped to this run. Keep-frames trades the
	// guaranteed cleanup for inspectability.
	defer func() {
		if config.KeepFrames {
			o.logger.Info("Prepared frames kept at %s", prepared.FrameDir)
			return
		}
		if err := o.fs.RemoveAll(prepared.FrameDir); err != nil {
			o.logger.Warn("Failed to remove frame directory %s: %s", prepared.FrameDir, err)
		}
	}()
	if config.KeepFrames {
		result.RetainedFrameDir = prepared.FrameDir
	}

	result.FrameCount = prepared.FrameCount
	result.Source = prepared.Source
	result.Video = prepared.Video
	o.logger.Info("Prepared %d frames at %dx%d", prepared.FrameCount, prepared.Video.Width, prepared.Video.Height)

	// 3. Encode
	outputPath := config.OutputPath()
	o.logger.Info("Encoding %s (crf %d)", outputPath, config.CRF)
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		FrameDir:    prepared.FrameDir,
		Pattern:     prepared.Pattern,
		OutputPath:  outputPath,
		FPS:         config.FPS,
		Codec:       config.Codec,
		CRF:         config.CRF,
		Preset:      config.Preset,
		PixelFormat: config.PixelFormat,
		ExtraArgs:   config.ExtraArgs,
	})
	if err != nil {
		o.logger.Error("Failed to encode video: %s", err)
		return result, fmt.Errorf("encode stage: %w", err)
	}
	result.OutputPath = encoded.OutputPath
	result.FileSize = encoded.FileSize
	o.logger.Info("Video encoded: %d bytes", encoded.FileSize)

	// 4. Publish latest copy
	if config.SkipLatestCopy {
		o.logger.Info("Skipping latest copy")
		return result, nil
	}
	published, err := o.publishStage.Execute(ctx, pipeline.PublishInput{
		SourcePath: encoded.OutputPath,
		LatestPath: config.LatestPath(),
	})
	if err != nil {
		// The daily artifact is already in place; report the failure without
		// unwinding it.
		o.logger.Error("Failed to update latest copy: %s", err)
		return result, fmt.Errorf("publish stage: %w", err)
	}
	result.LatestPath = published.LatestPath
	o.logger.Info("Updated %s", published.LatestPath)

	return result, nil
}
