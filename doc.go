// etri is a CPU triangle rasterizer for immediate-mode GUI draw lists,
// designed to be used mainly with the Ebitengine game engine.
//
// GUI toolkits describe each frame as lists of textured, colored
// triangles. etri turns those into pixels using only points, filled
// rectangles and image blits, so it can be used on surfaces that lack
// a native triangle primitive, or to get pixel-exact deterministic
// output. Common usage depends only on a couple types...
//
// First, you create a [Texture] for the font atlas or any other image
// referenced by your draw commands:
//   texture, err := etri.NewTextureFromImage(atlasImage)
//   if err != nil { ... }
//
// Then, you create a [Target] for the output surface:
//   target := etri.NewTarget(screen, nil)
//
// Finally, each frame you hand it the [DrawData] produced by your GUI:
//   target.Render(drawData)
//
// Axis-aligned rectangles are detected and drawn directly. Any other
// triangle is rasterized with fixed point arithmetic into a small
// tile, which is stored in a size-bounded cache and reused when the
// same triangle is drawn again.
//
// Without the gtxt build tag, targets are Ebitengine images. With
// -tags gtxt, targets are plain [image/draw.Image] values instead.
package etri
