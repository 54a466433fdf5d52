// The display subpackage connects etri with TinyGo display drivers.
//
// A [Panel] wraps any [drivers.Displayer] as a draw.Image, so it
// can be used as the target surface with the gtxt build tag, and a
// [Framebuffer] implements [drivers.Displayer] over an in-memory
// RGBA image, useful for headless rendering and tests.
//
// [drivers.Displayer]: https://pkg.go.dev/tinygo.org/x/drivers#Displayer
package display
