// Software triangle rasterization is a precision sensitive task:
// coverage decisions for pixels lying exactly on a shared edge must
// be the same no matter the platform or the floating point mode, or
// adjacent triangles will show seams and double-drawn pixels. That's
// why etri does all its geometry math with [fixed point] values.
//
// The fract subpackage defines a [Unit] type representing a 16.16
// fixed point value, a [Wide] type holding exact 32.32 products of
// two units, and the [Point] and [Rect] helper types built on them.
//
// Conversions from floating point values round to the nearest
// representable unit using the classic v*65536 + 0.5 truncation, so
// values coming from GUI vertex buffers map to units deterministically.
//
// [fixed point]: https://en.wikipedia.org/wiki/Fixed-point_arithmetic
package fract
