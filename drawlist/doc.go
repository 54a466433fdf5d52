// The drawlist subpackage provides a small immediate-mode [Builder]
// for [etri.DrawList] values, similar to the draw list APIs found in
// GUI toolkits.
//
// Shapes are appended as indexed triangles. Solid shapes use the
// white texel of the current texture, and rectangles are emitted as
// two triangles over their four corners, so etri can draw them with
// its fast paths. Clip rect and texture changes start new commands.
//
// [etri.DrawList]: https://pkg.go.dev/github.com/tinne26/etri#DrawList
package drawlist
