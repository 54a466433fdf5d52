package display

import "image/color"

import "tinygo.org/x/drivers"
import "tinygo.org/x/tinyfont"
import "tinygo.org/x/tinyfont/proggy"

// Font used for captions.
var CaptionFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// Writes a single line of text on the device, with its baseline at y.
func Caption(device drivers.Displayer, x, y int16, text string, c color.RGBA) {
	tinyfont.WriteLine(device, CaptionFont, x, y, text, c)
}

// Returns the width of the given caption text in pixels.
func CaptionWidth(text string) int {
	_, outboxWidth := tinyfont.LineWidth(CaptionFont, text)
	return int(outboxWidth)
}
