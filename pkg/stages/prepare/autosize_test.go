package prepare

import (
	"errors"
	"testing"

	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/timelapse"
)

func TestDetermineSize_RuleChain(t *testing.T) {
	cases := []struct {
		name     string
		src      pipeline.Dimension
		input    pipeline.PrepareInput
		want     pipeline.Dimension
		wantRule string
	}{
		{
			name:     "forced dimensions used exactly",
			src:      pipeline.Dimension{Width: 6000, Height: 4000},
			input:    pipeline.PrepareInput{ForcedWidth: 1920, ForcedHeight: 1080},
			want:     pipeline.Dimension{Width: 1920, Height: 1080},
			wantRule: "forced",
		},
		{
			name: "forced bypasses auto-size even with a bad factor",
			src:  pipeline.Dimension{Width: 6000, Height: 4000},
			input: pipeline.PrepareInput{
				ForcedWidth: 800, ForcedHeight: 600, DownscaleFactor: 7,
			},
			want:     pipeline.Dimension{Width: 800, Height: 600},
			wantRule: "forced",
		},
		{
			name:     "large even source is halved",
			src:      pipeline.Dimension{Width: 6000, Height: 4000},
			input:    pipeline.PrepareInput{},
			want:     pipeline.Dimension{Width: 3000, Height: 2000},
			wantRule: "auto-half",
		},
		{
			name:     "downscale factor 2 on 6000x4000",
			src:      pipeline.Dimension{Width: 6000, Height: 4000},
			input:    pipeline.PrepareInput{DownscaleFactor: 2},
			want:     pipeline.Dimension{Width: 3000, Height: 2000},
			wantRule: "auto-half", // halving precedes the factor rule and agrees here
		},
		{
			name:     "factor applies below the halving threshold",
			src:      pipeline.Dimension{Width: 3000, Height: 1500},
			input:    pipeline.PrepareInput{DownscaleFactor: 3},
			want:     pipeline.Dimension{Width: 1000, Height: 500},
			wantRule: "factor",
		},
		{
			name:     "fallback when nothing applies",
			src:      pipeline.Dimension{Width: 3001, Height: 2001},
			input:    pipeline.PrepareInput{},
			want:     pipeline.Dimension{Width: 3000, Height: 3000},
			wantRule: "fallback",
		},
		{
			name:     "wide but odd height falls through halving",
			src:      pipeline.Dimension{Width: 4096, Height: 2001},
			input:    pipeline.PrepareInput{},
			want:     pipeline.Dimension{Width: 3000, Height: 3000},
			wantRule: "fallback",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, rule, err := determineSize(tc.src, tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("size = %dx%d, want %dx%d", got.Width, got.Height, tc.want.Width, tc.want.Height)
			}
			if rule != tc.wantRule {
				t.Errorf("rule = %s, want %s", rule, tc.wantRule)
			}
		})
	}
}

func TestDetermineSize_ExactDivision(t *testing.T) {
	// For any source evenly divisible by the factor (below the halving
	// threshold), the result is exactly source/factor.
	cases := []struct {
		src    pipeline.Dimension
		factor int
	}{
		{pipeline.Dimension{Width: 3000, Height: 3000}, 2},
		{pipeline.Dimension{Width: 3000, Height: 3000}, 3},
		{pipeline.Dimension{Width: 3600, Height: 2400}, 4},
		{pipeline.Dimension{Width: 100, Height: 50}, 5},
	}

	for _, tc := range cases {
		got, _, err := determineSize(tc.src, pipeline.PrepareInput{DownscaleFactor: tc.factor})
		if err != nil {
			t.Fatalf("unexpected error for factor %d: %v", tc.factor, err)
		}
		want := pipeline.Dimension{Width: tc.src.Width / tc.factor, Height: tc.src.Height / tc.factor}
		if got != want {
			t.Errorf("factor %d on %dx%d: got %dx%d, want %dx%d",
				tc.factor, tc.src.Width, tc.src.Height, got.Width, got.Height, want.Width, want.Height)
		}
	}
}

func TestDetermineSize_InvalidFactor(t *testing.T) {
	src := pipeline.Dimension{Width: 3000, Height: 2000}

	_, _, err := determineSize(src, pipeline.PrepareInput{DownscaleFactor: 7})
	if !errors.Is(err, timelapse.ErrInvalidDownscaleFactor) {
		t.Errorf("expected ErrInvalidDownscaleFactor, got %v", err)
	}

	// Non-dividing factor fails even when the halving rule would match first.
	wide := pipeline.Dimension{Width: 6000, Height: 4000}
	_, _, err = determineSize(wide, pipeline.PrepareInput{DownscaleFactor: 7})
	if !errors.Is(err, timelapse.ErrInvalidDownscaleFactor) {
		t.Errorf("expected ErrInvalidDownscaleFactor for wide source, got %v", err)
	}
}

func TestEvenDimensions(t *testing.T) {
	cases := []struct {
		in   pipeline.Dimension
		want pipeline.Dimension
	}{
		{pipeline.Dimension{Width: 3000, Height: 2000}, pipeline.Dimension{Width: 3000, Height: 2000}},
		{pipeline.Dimension{Width: 3001, Height: 2000}, pipeline.Dimension{Width: 3000, Height: 2000}},
		{pipeline.Dimension{Width: 3000, Height: 2001}, pipeline.Dimension{Width: 3000, Height: 2000}},
		{pipeline.Dimension{Width: 1, Height: 1}, pipeline.Dimension{Width: 0, Height: 0}},
	}

	for _, tc := range cases {
		if got := evenDimensions(tc.in); got != tc.want {
			t.Errorf("evenDimensions(%dx%d) = %dx%d, want %dx%d",
				tc.in.Width, tc.in.Height, got.Width, got.Height, tc.want.Width, tc.want.Height)
		}
	}
}
