package timelapse

import "errors"

var (
	// ErrInvalidDateFormat is returned when a date argument is not a valid
	// YYYYMMDD calendar date.
	ErrInvalidDateFormat = errors.New("timelapse: invalid date format, expected YYYYMMDD")

	// ErrInputDirectoryMissing is returned when no input directory exists for
	// the target date.
	ErrInputDirectoryMissing = errors.New("timelapse: input directory missing")

	// ErrNoFramesFound is returned when the input directory contains no
	// matching frames.
	ErrNoFramesFound = errors.New("timelapse: no frames found")

	// ErrInvalidDownscaleFactor is returned when a configured downscale
	// factor does not evenly divide the source dimensions.
	ErrInvalidDownscaleFactor = errors.New("timelapse: downscale factor does not divide source dimensions")

	// ErrEncoderNotFound is returned when the external encoder binary is
	// unavailable.
	ErrEncoderNotFound = errors.New("timelapse: ffmpeg not found")

	// ErrEncodeFailed is returned when the external encoder exits non-zero.
	ErrEncodeFailed = errors.New("timelapse: encoding failed")

	// ErrPublishFailed is returned when the copy to the latest path fails.
	// The daily artifact is still valid when this is returned.
	ErrPublishFailed = errors.New("timelapse: publishing latest copy failed")
)
