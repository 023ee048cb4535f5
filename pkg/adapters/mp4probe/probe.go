// Package mp4probe reads basic metadata from a produced MP4 file.
package mp4probe

import (
	"fmt"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Info describes the probed video file.
type Info struct {
	DurationMs int
	Width      int
	Height     int
}

// Probe reads duration and track dimensions from an MP4 file. Used only for
// the run summary; callers treat failures as non-fatal.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open mp4: %w", err)
	}
	defer f.Close()

	parsed, err := mp4.DecodeFile(f)
	if err != nil {
		return Info{}, fmt.Errorf("parse mp4: %w", err)
	}
	if parsed.Moov == nil || parsed.Moov.Mvhd == nil {
		return Info{}, fmt.Errorf("mp4 has no movie header")
	}

	info := Info{}
	mvhd := parsed.Moov.Mvhd
	if mvhd.Timescale > 0 {
		info.DurationMs = int(mvhd.Duration * 1000 / uint64(mvhd.Timescale))
	}

	for _, trak := range parsed.Moov.Traks {
		if trak.Tkhd == nil {
			continue
		}
		// Tkhd stores dimensions as 16.16 fixed point.
		w := int(trak.Tkhd.Width >> 16)
		h := int(trak.Tkhd.Height >> 16)
		if w > 0 && h > 0 {
			info.Width = w
			info.Height = h
			break
		}
	}

	return info, nil
}
