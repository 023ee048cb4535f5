package ffmpegencoder

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/user/tilelapse/pkg/ports"
	"github.com/user/tilelapse/pkg/timelapse"
)

func TestBuildArgs(t *testing.T) {
	job := ports.EncodeJob{
		FrameDir:    "/tmp/frames_000001",
		Pattern:     "frame_%05d.png",
		OutputPath:  "timelapse/timelapse_20250816.mp4",
		FPS:         9,
		Codec:       "libx264",
		CRF:         15,
		Preset:      "slow",
		PixelFormat: "yuv444p",
	}

	got := BuildArgs(job)
	want := []string{
		"-y",
		"-framerate", "9",
		"-f", "image2",
		"-i", filepath.Join("/tmp/frames_000001", "frame_%05d.png"),
		"-c:v", "libx264",
		"-preset", "slow",
		"-crf", "15",
		"-pix_fmt", "yuv444p",
		"-movflags", "+faststart",
		"timelapse/timelapse_20250816.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestBuildArgs_ExtraArgsBeforeOutput(t *testing.T) {
	job := ports.EncodeJob{
		FrameDir:    "/tmp/frames_000001",
		Pattern:     "frame_%05d.png",
		OutputPath:  "out.mp4",
		FPS:         9,
		Codec:       "libx265",
		CRF:         20,
		Preset:      "medium",
		PixelFormat: "yuv420p",
		ExtraArgs:   []string{"-tune", "animation"},
	}

	got := BuildArgs(job)

	// Extra flags sit between the standard options and the trailing
	// -movflags/output pair.
	if got[len(got)-1] != "out.mp4" {
		t.Errorf("output path must be last, got %v", got[len(got)-1])
	}
	if got[len(got)-3] != "-movflags" || got[len(got)-2] != "+faststart" {
		t.Errorf("missing trailing -movflags +faststart: %v", got)
	}
	foundTune := false
	for i, arg := range got {
		if arg == "-tune" && i+1 < len(got) && got[i+1] == "animation" {
			foundTune = true
		}
	}
	if !foundTune {
		t.Errorf("extra args not included: %v", got)
	}
}

func TestFindFFmpeg_CustomPathMissing(t *testing.T) {
	_, err := FindFFmpeg("/nonexistent/path/to/ffmpeg")
	if !errors.Is(err, timelapse.ErrEncoderNotFound) {
		t.Errorf("expected ErrEncoderNotFound, got %v", err)
	}
}

func TestTail(t *testing.T) {
	if got := tail([]byte("short"), 4000); got != "short" {
		t.Errorf("tail of short input = %q", got)
	}

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	long[4999] = 'z'
	got := tail(long, 4000)
	if len(got) != 4000 {
		t.Errorf("tail length = %d, want 4000", len(got))
	}
	if got[len(got)-1] != 'z' {
		t.Error("tail must keep the trailing bytes")
	}
}
