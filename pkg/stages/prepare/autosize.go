package prepare

import (
	"fmt"

	"github.com/user/tilelapse/pkg/pipeline"
	"github.com/user/tilelapse/pkg/timelapse"
)

// sizeRule is one step of the auto-size chain: a pure function from source
// dimensions and preparation input to an optional result.
type sizeRule struct {
	name  string
	apply func(src pipeline.Dimension, input pipeline.PrepareInput) (pipeline.Dimension, bool)
}

// The chain is evaluated top to bottom and stops at the first match:
// forced size, half-size for large even sources, configured factor, fixed
// 3000x3000 fallback.
var sizeRules = []sizeRule{
	{
		name: "forced",
		apply: func(src pipeline.Dimension, input pipeline.PrepareInput) (pipeline.Dimension, bool) {
			if input.ForcedWidth > 0 && input.ForcedHeight > 0 {
				return pipeline.Dimension{Width: input.ForcedWidth, Height: input.ForcedHeight}, true
			}
			return pipeline.Dimension{}, false
		},
	},
	{
		name: "auto-half",
		apply: func(src pipeline.Dimension, input pipeline.PrepareInput) (pipeline.Dimension, bool) {
			if src.Width >= 4000 && src.Width%2 == 0 && src.Height%2 == 0 {
				return pipeline.Dimension{Width: src.Width / 2, Height: src.Height / 2}, true
			}
			return pipeline.Dimension{}, false
		},
	},
	{
		name: "factor",
		apply: func(src pipeline.Dimension, input pipeline.PrepareInput) (pipeline.Dimension, bool) {
			f := input.DownscaleFactor
			if f > 1 && src.Width%f == 0 && src.Height%f == 0 {
				return pipeline.Dimension{Width: src.Width / f, Height: src.Height / f}, true
			}
			return pipeline.Dimension{}, false
		},
	},
	{
		name: "fallback",
		apply: func(src pipeline.Dimension, input pipeline.PrepareInput) (pipeline.Dimension, bool) {
			return pipeline.Dimension{Width: 3000, Height: 3000}, true
		},
	},
}

// determineSize resolves the output dimensions for the run. A configured
// downscale factor that does not divide the source dimensions fails the run
// whenever forced dimensions are absent, regardless of which rule would have
// matched.
func determineSize(src pipeline.Dimension, input pipeline.PrepareInput) (pipeline.Dimension, string, error) {
	forced := input.ForcedWidth > 0 && input.ForcedHeight > 0
	if !forced && input.DownscaleFactor > 1 {
		f := input.DownscaleFactor
		if src.Width%f != 0 || src.Height%f != 0 {
			return pipeline.Dimension{}, "", fmt.Errorf("%w: factor %d vs %dx%d",
				timelapse.ErrInvalidDownscaleFactor, f, src.Width, src.Height)
		}
	}

	for _, rule := range sizeRules {
		if dim, ok := rule.apply(src, input); ok {
			return dim, rule.name, nil
		}
	}
	// The fallback rule always matches.
	return pipeline.Dimension{Width: 3000, Height: 3000}, "fallback", nil
}

// evenDimensions rounds dimensions down to even values. The encoder rejects
// odd pixel dimensions for most pixel formats (yuv420p family chroma
// subsampling), so the constraint is applied before any frame is resized.
func evenDimensions(dim pipeline.Dimension) pipeline.Dimension {
	return pipeline.Dimension{
		Width:  dim.Width &^ 1,
		Height: dim.Height &^ 1,
	}
}
