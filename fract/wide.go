package fract

import "math/bits"

// Wide is a 32.32 fixed point value, the exact result of
// multiplying two [Unit] values. Sums of a few products of
// units within the screen range fit without overflowing,
// which makes Wide the right type for sign tests that can't
// afford any rounding, like edge functions.
type Wide int64

// Shifts the value back to a [Unit], flooring the discarded bits.
func (self Wide) ToUnit() Unit {
	return Unit(self >> fractBits)
}

// Returns -1, 0 or +1 depending on the sign of the value.
func (self Wide) Sign() int {
	if self > 0 { return +1 }
	if self < 0 { return -1 }
	return 0
}

// Divides two wide values and returns the quotient as a [Unit].
// The numerator is widened by 16 bits with a 128-bit intermediate,
// so no precision is lost before the division. The result is
// truncated toward zero and saturates at [MinUnit] and [MaxUnit].
//
// Dividing by zero panics: callers must guard degenerate cases.
func (self Wide) DivUnit(divisor Wide) Unit {
	if divisor == 0 { panic("division by zero") }
	negative := (self < 0) != (divisor < 0)
	num, den := absUint64(int64(self)), absUint64(int64(divisor))
	hi, lo := bits.Mul64(num, 1 << fractBits)
	if hi >= den { return saturated(negative) }
	quo, _ := bits.Div64(hi, lo, den)
	if negative {
		if quo > uint64(MaxUnit) + 1 { return MinUnit }
		return Unit(-int64(quo))
	}
	if quo > uint64(MaxUnit) { return MaxUnit }
	return Unit(quo)
}

func absUint64(value int64) uint64 {
	if value < 0 { return uint64(-value) }
	return uint64(value)
}

func saturated(negative bool) Unit {
	if negative { return MinUnit }
	return MaxUnit
}
