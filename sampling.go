package etri

import "github.com/tinne26/etri/fract"

// Sampling modes determine how normalized texture coordinates
// are mapped to texel indices.
type SamplingMode uint8

const (
	// Uses round(u*(width - 1) + 0.5). This is biased by about half
	// a texel to the bottom right, but it's what immediate-mode GUI
	// backends commonly do, so font atlases are designed for it.
	SampleCompat SamplingMode = iota

	// Uses floor(u*width), which picks the texel whose area
	// contains the coordinate.
	SampleCenter
)

func (self SamplingMode) String() string {
	switch self {
	case SampleCompat: return "compat"
	case SampleCenter: return "center"
	default:
		return "unknown"
	}
}

// Returns the clamped texel index for the coordinate.
func (self SamplingMode) texel(coord fract.Unit, size int) int {
	var index int
	switch self {
	case SampleCenter:
		index = coord.Mul(fract.FromInt(size)).ToIntFloor()
	default:
		index = (coord.Mul(fract.FromInt(size - 1)) + fract.Half).ToIntHalfUp()
	}
	return clampInt(index, 0, size - 1)
}
