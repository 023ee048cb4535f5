package summarizer

import (
	"strings"
	"testing"

	"github.com/user/tilelapse/pkg/orchestrator"
	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/timelapse"
)

func TestSummary_Format(t *testing.T) {
	date, err := timelapse.ParseDate("20250816")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	s := Summary{
		Result: orchestrator.RunResult{
			Date:       date,
			FrameCount: 288,
			Source:     pipeline.Dimension{Width: 6000, Height: 4000},
			Video:      pipeline.Dimension{Width: 3000, Height: 2000},
			OutputPath: "timelapse/timelapse_20250816.mp4",
			FileSize:   5 * 1024 * 1024,
			LatestPath: "timelapse/latest.mp4",
		},
		DurationMs:   32000,
		ProbedWidth:  3000,
		ProbedHeight: 2000,
	}

	out := s.Format()

	for _, want := range []string{
		"2025-08-16",
		"288",
		"6000x4000",
		"3000x2000",
		"5.0 MiB",
		"32.0s (3000x2000)",
		"timelapse/timelapse_20250816.mp4",
		"timelapse/latest.mp4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_Format_SkippedLatestAndNoProbe(t *testing.T) {
	date, err := timelapse.ParseDate("20250816")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	s := Summary{
		Result: orchestrator.RunResult{
			Date:             date,
			FrameCount:       3,
			Video:            pipeline.Dimension{Width: 3000, Height: 3000},
			OutputPath:       "timelapse/timelapse_20250816.mp4",
			FileSize:         512,
			RetainedFrameDir: "/tmp/frames_abc",
		},
	}

	out := s.Format()

	if strings.Contains(out, "Latest:") {
		t.Error("summary must not mention latest when publishing was skipped")
	}
	if strings.Contains(out, "Length:") {
		t.Error("summary must not show a length without probe data")
	}
	if !strings.Contains(out, "/tmp/frames_abc") {
		t.Error("summary must mention the retained frame dir")
	}
	if !strings.Contains(out, "512 B") {
		t.Errorf("summary missing byte size:\n%s", out)
	}
}
