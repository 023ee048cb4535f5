package timelapse

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate_RoundTrip(t *testing.T) {
	inputs := []string{"20250816", "20240229", "19991231", "20250101"}

	for _, input := range inputs {
		date, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", input, err)
		}
		if date.String() != input {
			t.Errorf("ParseDate(%q).String() = %q, want %q", input, date.String(), input)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"2025081",     // too short
		"202508160",   // too long
		"2025-08-16",  // separators
		"2025081a",    // non-digit
		"20250230",    // February 30th
		"20251301",    // month 13
		"20250100",    // day 0
		"20230229",    // not a leap year
	}

	for _, input := range inputs {
		_, err := ParseDate(input)
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDate(%q) = %v, want ErrInvalidDateFormat", input, err)
		}
	}
}

func TestYesterdayIn(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "midday in zone",
			now:  time.Date(2025, 8, 17, 12, 0, 0, 0, SnapshotZone),
			want: "20250816",
		},
		{
			name: "UTC evening is already next day in WIB",
			// 18:00 UTC on the 16th is 01:00 WIB on the 17th.
			now:  time.Date(2025, 8, 16, 18, 0, 0, 0, time.UTC),
			want: "20250816",
		},
		{
			name: "UTC midday stays same day in WIB",
			now:  time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC),
			want: "20250815",
		},
		{
			name: "month boundary",
			now:  time.Date(2025, 9, 1, 3, 0, 0, 0, SnapshotZone),
			want: "20250831",
		},
		{
			name: "year boundary",
			now:  time.Date(2026, 1, 1, 0, 30, 0, 0, SnapshotZone),
			want: "20251231",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := YesterdayIn(tc.now)
			if got.String() != tc.want {
				t.Errorf("YesterdayIn(%v) = %s, want %s", tc.now, got, tc.want)
			}
		})
	}
}

func TestTargetDate_Display(t *testing.T) {
	date, err := ParseDate("20250816")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Display() != "2025-08-16" {
		t.Errorf("Display() = %q, want %q", date.Display(), "2025-08-16")
	}
}
