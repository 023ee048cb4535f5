// Package ffmpegencoder runs the external ffmpeg binary over a prepared
// image sequence to produce an MP4.
package ffmpegencoder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/user/tilelapse/pkg/ports"
	"github.com/user/tilelapse/pkg/timelapse"
)

// stderrTailBytes bounds how much encoder diagnostic output is carried in an
// encode error.
const stderrTailBytes = 4000

// Encoder implements ports.SequenceEncoder by invoking ffmpeg.
type Encoder struct {
	// FFmpegPath optionally pins the binary; empty means search.
	FFmpegPath string

	sink   ports.DebugSink
	logger ports.Logger
}

// New creates a new ffmpeg sequence encoder.
func New(sink ports.DebugSink, logger ports.Logger) *Encoder {
	return &Encoder{
		sink:   sink,
		logger: logger.WithComponent("ffmpeg"),
	}
}

// BuildArgs assembles the ffmpeg argument list for a job.
func BuildArgs(job ports.EncodeJob) []string {
	args := []string{
		"-y",
		"-framerate", strconv.Itoa(job.FPS),
		"-f", "image2",
		"-i", filepath.Join(job.FrameDir, job.Pattern),
		"-c:v", job.Codec,
		"-preset", job.Preset,
		"-crf", strconv.Itoa(job.CRF),
		"-pix_fmt", job.PixelFormat,
	}
	args = append(args, job.ExtraArgs...)
	args = append(args, "-movflags", "+faststart", job.OutputPath)
	return args
}

// Encode runs ffmpeg synchronously over the prepared sequence. Cancelling the
// context terminates the process.
func (e *Encoder) Encode(ctx context.Context, job ports.EncodeJob) error {
	ffmpegPath, err := FindFFmpeg(e.FFmpegPath)
	if err != nil {
		return err
	}

	args := BuildArgs(job)
	e.logger.Debug("Running %s %s", ffmpegPath, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if e.sink.Enabled() {
		var log bytes.Buffer
		fmt.Fprintf(&log, "%s %s\n\n", ffmpegPath, strings.Join(args, " "))
		log.Write(stderr.Bytes())
		e.sink.SaveEncoderLog(log.Bytes())
	}

	if runErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		exitCode := -1
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return fmt.Errorf("%w: exit code %d: %s",
			timelapse.ErrEncodeFailed, exitCode, tail(stderr.Bytes(), stderrTailBytes))
	}
	return nil
}

// tail returns the trailing n bytes of b as a string.
func tail(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return strings.TrimSpace(string(b))
}

// Ensure Encoder implements ports.SequenceEncoder
var _ ports.SequenceEncoder = (*Encoder)(nil)
