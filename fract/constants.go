package fract

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One  Unit = 1 << 16 // fract.One.ToInt() == 1
	Half Unit = 1 << 15
	MaxInt int = +32767
	MinInt int = -32768
	Delta float64 = 1.0/65536.0
)

const (
	fractBits = 16
	fractMask = 0xFFFF
)
