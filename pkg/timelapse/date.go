// Package timelapse provides the core domain types for daily timelapse builds.
package timelapse

import (
	"fmt"
	"time"
)

// Snapshots are captured in Surabaya local time (WIB, UTC+7, no DST).
var SnapshotZone = time.FixedZone("WIB", 7*60*60)

// TargetDate is the single calendar date a run processes.
type TargetDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a strict YYYYMMDD string into a TargetDate. The input must
// be exactly 8 digits forming a valid calendar date.
func ParseDate(s string) (TargetDate, error) {
	if len(s) != 8 {
		return TargetDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return TargetDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
	}
	t, err := time.ParseInLocation("20060102", s, SnapshotZone)
	if err != nil {
		return TargetDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	// time.Parse normalizes out-of-range components (e.g. 20250230), so a
	// round-trip mismatch means the calendar date was not valid.
	if t.Format("20060102") != s {
		return TargetDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return TargetDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// YesterdayIn returns the calendar date one day before the given instant,
// evaluated in the snapshot zone.
func YesterdayIn(now time.Time) TargetDate {
	t := now.In(SnapshotZone).AddDate(0, 0, -1)
	return TargetDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String returns the date in YYYYMMDD form, as used in directory and file names.
func (d TargetDate) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// Display returns the date in YYYY-MM-DD form for human-readable output.
func (d TargetDate) Display() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
