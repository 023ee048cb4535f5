package pipeline

import (
	"time"

	"github.com/user/tilelapse/pkg/timelapse"
)

// =============================================================================
// Common Types
// =============================================================================

// Frame references one source snapshot image. Frames are read-only; the
// capture time parsed from the filename is used for ordering and the overlay.
type Frame struct {
	Path    string    // Absolute or input-relative path to the PNG
	Name    string    // Base filename (merged_tiles_YYYYMMDD_HHMMSS.png)
	Capture time.Time // Capture instant in the snapshot zone
}

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// =============================================================================
// Locate Stage Types
// =============================================================================

// LocateInput contains parameters for frame enumeration.
type LocateInput struct {
	Date     timelapse.TargetDate
	InputDir string // Base directory holding one subdirectory per date
}

// LocateResult contains the ordered frame sequence for the target date.
// The sequence is never empty; an empty directory fails the locate stage.
type LocateResult struct {
	Frames []Frame
}

// =============================================================================
// Prepare Stage Types
// =============================================================================

// PrepareInput contains parameters for frame preparation.
type PrepareInput struct {
	Frames []Frame

	// Forced output dimensions; both must be > 0 to take effect.
	ForcedWidth  int
	ForcedHeight int

	// DownscaleFactor is an integer divisor applied to the source dimensions
	// when no forced size is set. Values <= 1 mean no factor is configured.
	DownscaleFactor int

	// FontPath optionally points at a TTF file for the timestamp overlay.
	FontPath string
	FontSize float64
}

// PrepareResult describes the prepared frame sequence on disk.
type PrepareResult struct {
	FrameDir   string    // Temporary directory holding the prepared frames
	Pattern    string    // Sequence pattern for the encoder (frame_%05d.png)
	Video      Dimension // Final even-rounded video dimensions
	Source     Dimension // Dimensions of the first source frame
	FrameCount int
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for the external encoder invocation.
type EncodeInput struct {
	FrameDir   string
	Pattern    string
	OutputPath string

	FPS         int
	Codec       string
	CRF         int
	Preset      string
	PixelFormat string
	ExtraArgs   []string
}

// EncodeResult contains the produced daily artifact.
type EncodeResult struct {
	OutputPath string
	FileSize   int64
}

// =============================================================================
// Publish Stage Types
// =============================================================================

// PublishInput contains parameters for the latest-copy step.
type PublishInput struct {
	SourcePath string // The daily MP4
	LatestPath string // Fixed destination, overwritten every run
}

// PublishResult reports where the latest copy landed.
type PublishResult struct {
	LatestPath string
}
