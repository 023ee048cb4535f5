// Package prepare implements the frame preparation stage: resizing, white
// letterbox centering, and the timestamp overlay.
package prepare

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/ports"
)

// FramePattern is the sequence pattern the encoder consumes.
const FramePattern = "frame_%05d.png"

// Letterbox bars and overlay colors, matching the capture setup's
// white-background pixel art.
var (
	backgroundColor = color.White
	overlayFill     = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	overlayOutline  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// Stage prepares source frames into an encoder-ready sequence in a
// temporary directory.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// New creates a new prepare stage.
func New(fs ports.FileSystem, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("prepare"),
	}
}

// Execute resizes and annotates every frame, writing the sequence into a
// fresh temporary directory. On failure the directory is removed; on success
// the caller owns it (and its cleanup).
func (s *Stage) Execute(ctx context.Context, input pipeline.PrepareInput) (pipeline.PrepareResult, error) {
	result := pipeline.PrepareResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("no frames to prepare")
	}

	src, err := s.sourceDimensions(input.Frames[0])
	if err != nil {
		return result, err
	}

	dim, rule, err := determineSize(src, input)
	if err != nil {
		return result, err
	}
	even := evenDimensions(dim)
	if even != dim {
		s.logger.Debug("Rounding %dx%d down to even %dx%d", dim.Width, dim.Height, even.Width, even.Height)
	}
	s.logger.Debug("Output size %dx%d (%s rule, source %dx%d)", even.Width, even.Height, rule, src.Width, src.Height)

	if s.sink.Enabled() {
		decision := map[string]interface{}{
			"rule":   rule,
			"source": src,
			"video":  even,
		}
		if data, err := json.MarshalIndent(decision, "", "  "); err == nil {
			s.sink.SaveSizingJSON(data)
		}
	}

	frameDir, err := s.fs.MkdirTemp("frames_")
	if err != nil {
		return result, fmt.Errorf("create frame directory: %w", err)
	}

	for i, frame := range input.Frames {
		select {
		case <-ctx.Done():
			s.fs.RemoveAll(frameDir)
			return result, ctx.Err()
		default:
		}

		if err := s.prepareFrame(frame, i, frameDir, even, input); err != nil {
			s.fs.RemoveAll(frameDir)
			return result, fmt.Errorf("prepare frame %s: %w", frame.Name, err)
		}

		if (i+1)%20 == 0 {
			s.logger.Info("Prepared %d/%d frames", i+1, len(input.Frames))
		}
	}

	result.FrameDir = frameDir
	result.Pattern = FramePattern
	result.Video = even
	result.Source = src
	result.FrameCount = len(input.Frames)
	return result, nil
}

// sourceDimensions decodes the first frame to discover the source size.
func (s *Stage) sourceDimensions(frame pipeline.Frame) (pipeline.Dimension, error) {
	data, err := s.fs.ReadFile(frame.Path)
	if err != nil {
		return pipeline.Dimension{}, fmt.Errorf("read first frame: %w", err)
	}
	img, err := s.renderer.DecodeImage(data)
	if err != nil {
		return pipeline.Dimension{}, fmt.Errorf("decode first frame: %w", err)
	}
	bounds := img.Bounds()
	return pipeline.Dimension{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// prepareFrame produces one encoder-ready frame: nearest-neighbor fit onto a
// white canvas, centered, with the capture timestamp near the bottom.
func (s *Stage) prepareFrame(frame pipeline.Frame, index int, frameDir string, video pipeline.Dimension, input pipeline.PrepareInput) error {
	data, err := s.fs.ReadFile(frame.Path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	img, err := s.renderer.DecodeImage(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Aspect-fit without interpolation, letterboxed on white when the
	// aspect ratio differs.
	scale := minFloat(float64(video.Width)/float64(w), float64(video.Height)/float64(h))
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	fitted := img
	if newW != w || newH != h {
		fitted = s.renderer.ResizeImage(img, newW, newH)
	}

	canvas := s.renderer.CreateCanvas(video.Width, video.Height, backgroundColor)
	canvas.DrawImage(fitted, (video.Width-newW)/2, (video.Height-newH)/2)

	style := ports.TextStyle{
		FontSize:     input.FontSize,
		FontPath:     input.FontPath,
		Color:        overlayFill,
		OutlineColor: overlayOutline,
		OutlineWidth: 2,
	}
	label := frame.Capture.Format("2006-01-02 15:04:05")
	textY := video.Height - 20 - int(input.FontSize/2)
	if textY < 0 {
		textY = video.Height / 2
	}
	if err := canvas.DrawTextOutlined(label, video.Width/2, textY, style); err != nil {
		// The overlay is cosmetic; the frame still goes out without it.
		s.logger.Warn("Timestamp overlay failed for %s: %s", frame.Name, err)
	}

	out, err := s.renderer.EncodeImage(canvas.ToImage())
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	name := fmt.Sprintf(FramePattern, index)
	if err := s.fs.WriteFile(filepath.Join(frameDir, name), out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
