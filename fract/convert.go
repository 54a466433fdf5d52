package fract

import "math"

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined. If you
// want to account for overflows, check [MinInt] <= value <= [MaxInt].
func FromInt(value int) Unit { return Unit(value << fractBits) }

// Converts a float64 to the closest Unit with the value*65536 + 0.5
// formula, rounding up in case of ties. Doesn't account for NaNs,
// infinities nor overflows.
func FromFloat64(value float64) Unit {
	return Unit(math.Floor(value*65536 + 0.5))
}

// Same as [FromFloat64](), but for float32 values. The conversion
// is done in float64 precision.
func FromFloat32(value float32) Unit {
	return FromFloat64(float64(value))
}

// Converts a byte in [0, 255] to the [0, 1] range.
func FromByte(value uint8) Unit {
	return FromFloat64(float64(value)/255.0)
}
