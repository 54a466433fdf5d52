package fract

// Fixed point type to represent fractional values used during
// rasterization.
//
// 16 bits represent the integer part of the value, while the remaining
// 16 bits represent the decimal part. If you can understand that
// var ms Millis = 1000 is storing the equivalent to 1 second, with Unit,
// instead of thousandths of a value, you are storing 65536ths. So,
// var pixels Unit = 65536 would mean 1 pixel, and 98304 would be 1.5.
//
// Additions and subtractions can use the native operators. There's no
// saturation: callers must keep magnitudes within the screen and texture
// ranges they work with.
type Unit int32

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & fractMask == 0
}

// Returns the fractional part of the Unit, always in [0, 1).
func (self Unit) Fract() Unit {
	return self & fractMask
}

// Multiplies two units with a 64-bit intermediate, shifting back
// by 16 bits. The result is floored.
func (self Unit) Mul(multiplier Unit) Unit {
	return Unit((int64(self)*int64(multiplier)) >> fractBits)
}

// Divides two units, widening the numerator by 16 bits before
// the division. The result is truncated toward zero. Dividing
// by zero panics like any integer division: callers must guard.
func (self Unit) Div(divisor Unit) Unit {
	return Unit((int64(self) << fractBits)/int64(divisor))
}

// Exact product of two units, without discarding any bits.
func (self Unit) MulWide(multiplier Unit) Wide {
	return Wide(int64(self)*int64(multiplier))
}

// Returns the absolute value of the unit. [MinUnit] stays negative.
func (self Unit) Abs() Unit {
	if self >= 0 { return self }
	return -self
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/65536.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self.ToFloat64())
}

// Defaults to [Unit.ToIntHalfUp](). For the fastest possible
// conversion to int, use [Unit.ToIntFloor]() instead.
func (self Unit) ToInt() int {
	return self.ToIntHalfUp()
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> fractBits
}

func (self Unit) ToIntCeil() int {
	return (int(self) + fractMask) >> fractBits
}

func (self Unit) ToIntHalfUp() int {
	return (int(self) + int(Half)) >> fractBits
}

func (self Unit) Floor() Unit {
	return self & ^fractMask
}

func (self Unit) Ceil() Unit {
	return (self + fractMask).Floor()
}

// Returns the smallest and the biggest of the three units.
func MinMax3(a, b, c Unit) (Unit, Unit) {
	lo, hi := a, a
	if b < lo { lo = b } else if b > hi { hi = b }
	if c < lo { lo = c } else if c > hi { hi = c }
	return lo, hi
}
