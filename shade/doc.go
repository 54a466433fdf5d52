// Package shade defines the [Color] type used during rasterization,
// with four [fract.Unit] channels in the [0, 1] range.
//
// Colors travel packed in GUI vertex buffers as 0xAABBGGRR (the red
// channel in the lowest byte), so 0xFF0000FF is opaque red. Packing
// back to bytes truncates instead of rounding.
package shade
