// Package summarizer formats run results for terminal output.
package summarizer

import (
	"fmt"
	"strings"

	"github.com/user/tilelapse/pkg/orchestrator"
)

// Summary collects everything worth printing after a successful run.
type Summary struct {
	Result orchestrator.RunResult

	// Probed metadata from the produced file; zero values when probing failed.
	DurationMs   int
	ProbedWidth  int
	ProbedHeight int
}

// Format renders the summary as plain text.
func (s Summary) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Timelapse for %s\n", s.Result.Date.Display())
	fmt.Fprintf(&b, "  Frames:  %d (%dx%d source)\n",
		s.Result.FrameCount, s.Result.Source.Width, s.Result.Source.Height)
	fmt.Fprintf(&b, "  Video:   %dx%d, %s\n",
		s.Result.Video.Width, s.Result.Video.Height, formatBytes(s.Result.FileSize))
	if s.DurationMs > 0 {
		if s.ProbedWidth > 0 && s.ProbedHeight > 0 {
			fmt.Fprintf(&b, "  Length:  %.1fs (%dx%d)\n",
				float64(s.DurationMs)/1000, s.ProbedWidth, s.ProbedHeight)
		} else {
			fmt.Fprintf(&b, "  Length:  %.1fs\n", float64(s.DurationMs)/1000)
		}
	}
	fmt.Fprintf(&b, "  Output:  %s\n", s.Result.OutputPath)
	if s.Result.LatestPath != "" {
		fmt.Fprintf(&b, "  Latest:  %s\n", s.Result.LatestPath)
	}
	if s.Result.RetainedFrameDir != "" {
		fmt.Fprintf(&b, "  Frames kept at %s\n", s.Result.RetainedFrameDir)
	}

	return b.String()
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
