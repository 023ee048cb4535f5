// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for one timelapse run. It is
// constructed once at startup and passed down; no component reads the
// environment mid-pipeline.
type Config struct {
	// Input/Output
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Sizing
	Width           int `yaml:"width"`            // Forced output width (0 = auto)
	Height          int `yaml:"height"`           // Forced output height (0 = auto)
	DownscaleFactor int `yaml:"downscale_factor"` // Integer divisor (0/1 = off)

	// Encoding
	FPS         int      `yaml:"fps"`
	Codec       string   `yaml:"codec"`
	CRF         int      `yaml:"crf"`
	Preset      string   `yaml:"preset"`
	PixelFormat string   `yaml:"pix_fmt"`
	ExtraFFmpeg []string `yaml:"extra_ffmpeg"`

	// Overlay
	FontPath string  `yaml:"font_path"`
	FontSize float64 `yaml:"font_size"`

	// Behavior
	KeepFrames     bool `yaml:"keep_frames"`
	SkipLatestCopy bool `yaml:"skip_latest_copy"`
}

// Default returns a Config with default values matching the capture setup:
// pixel-art frames want a slow x264 encode with 4:4:4 chroma and a low CRF.
func Default() Config {
	return Config{
		InputDir:    "output",
		OutputDir:   "timelapse",
		FPS:         9,
		Codec:       "libx264",
		CRF:         15,
		Preset:      "slow",
		PixelFormat: "yuv444p",
		FontSize:    36,
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Lookup resolves an environment-style key. os.LookupEnv in production;
// tests substitute a map.
type Lookup func(key string) (string, bool)

// ApplyEnv overlays environment variables onto the config. Malformed numeric
// values are skipped, not fatal; the returned messages describe what was
// ignored so the caller can log them.
func (c *Config) ApplyEnv(lookup Lookup) []string {
	var warnings []string

	intKey := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring %s=%q: not an integer", key, v))
			return
		}
		*dst = n
	}
	strKey := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	setKey := func(key string, dst *bool) {
		if _, ok := lookup(key); ok {
			*dst = true
		}
	}

	intKey("DOWNSCALE_FACTOR", &c.DownscaleFactor)
	intKey("CRF", &c.CRF)
	intKey("VIDEO_WIDTH", &c.Width)
	intKey("VIDEO_HEIGHT", &c.Height)
	strKey("PIX_FMT", &c.PixelFormat)
	strKey("PRESET", &c.Preset)
	strKey("VIDEO_CODEC", &c.Codec)
	setKey("KEEP_FRAMES", &c.KeepFrames)
	setKey("SKIP_LATEST_COPY", &c.SkipLatestCopy)

	if v, ok := lookup("EXTRA_FFMPEG"); ok && strings.TrimSpace(v) != "" {
		c.ExtraFFmpeg = strings.Fields(v)
	}

	return warnings
}

// OSLookup adapts os.LookupEnv to the Lookup type.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
