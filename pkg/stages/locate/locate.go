// Package locate implements the frame enumeration stage.
package locate

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/ports"
	"github.com/user/tilelapse/pkg/timelapse"
)

// framePattern matches merged tile snapshots: merged_tiles_YYYYMMDD_HHMMSS.png.
var framePattern = regexp.MustCompile(`^merged_tiles_(\d{8})_(\d{6})\.png$`)

// Stage enumerates the source frames for one target date.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new locate stage.
func New(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("locate"),
	}
}

// Execute lists the date directory and returns the ordered frame sequence.
func (s *Stage) Execute(ctx context.Context, input pipeline.LocateInput) (pipeline.LocateResult, error) {
	result := pipeline.LocateResult{}

	dateStr := input.Date.String()
	dir := filepath.Join(input.InputDir, dateStr)

	exists, err := s.fs.Exists(dir)
	if err != nil {
		return result, fmt.Errorf("stat input directory %s: %w", dir, err)
	}
	if !exists {
		return result, fmt.Errorf("%w: %s", timelapse.ErrInputDirectoryMissing, dir)
	}

	names, err := s.fs.ReadDir(dir)
	if err != nil {
		return result, fmt.Errorf("list input directory %s: %w", dir, err)
	}

	frames := make([]pipeline.Frame, 0, len(names))
	for _, name := range names {
		m := framePattern.FindStringSubmatch(name)
		if m == nil {
			s.logger.Debug("Skipping non-frame entry %s", name)
			continue
		}
		if m[1] != dateStr {
			s.logger.Debug("Skipping frame from another date: %s", name)
			continue
		}
		capture, err := time.ParseInLocation("20060102_150405", m[1]+"_"+m[2], timelapse.SnapshotZone)
		if err != nil {
			s.logger.Debug("Skipping frame with invalid timestamp: %s", name)
			continue
		}
		frames = append(frames, pipeline.Frame{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Capture: capture,
		})
	}

	// Ascending by capture time; identical timestamps break by filename so
	// the sequence is deterministic for any input set.
	sort.Slice(frames, func(i, j int) bool {
		if !frames[i].Capture.Equal(frames[j].Capture) {
			return frames[i].Capture.Before(frames[j].Capture)
		}
		return frames[i].Name < frames[j].Name
	})

	if len(frames) == 0 {
		return result, fmt.Errorf("%w: %s", timelapse.ErrNoFramesFound, dir)
	}

	s.logger.Debug("Found %d frames in %s", len(frames), dir)

	result.Frames = frames
	return result, nil
}

// Ensure Stage implements the pipeline stage interface
var _ pipeline.Stage[pipeline.LocateInput, pipeline.LocateResult] = (*Stage)(nil)
