// Package publish implements the latest-copy step.
package publish

import (
	"context"
	"fmt"

	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/ports"
	"github.com/user/tilelapse/pkg/timelapse"
)

// Stage copies the daily MP4 over the fixed latest path. The latest artifact
// always represents the most recent day only; it is replaced, never appended to.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new publish stage.
func New(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("publish"),
	}
}

// Execute overwrites the latest path with the daily artifact. A failure here
// does not invalidate the daily MP4, which is already in place.
func (s *Stage) Execute(ctx context.Context, input pipeline.PublishInput) (pipeline.PublishResult, error) {
	result := pipeline.PublishResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := s.fs.CopyFile(input.SourcePath, input.LatestPath); err != nil {
		return result, fmt.Errorf("%w: %s -> %s: %v",
			timelapse.ErrPublishFailed, input.SourcePath, input.LatestPath, err)
	}

	s.logger.Debug("Copied %s to %s", input.SourcePath, input.LatestPath)

	result.LatestPath = input.LatestPath
	return result, nil
}

// Ensure Stage implements the pipeline stage interface
var _ pipeline.Stage[pipeline.PublishInput, pipeline.PublishResult] = (*Stage)(nil)
