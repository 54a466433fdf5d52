package etri

import "image"

import "github.com/tinne26/etri/raster"

// Target state that must survive tile rasterization.
type restorableState struct {
	clip image.Rectangle
	clipEnabled bool
}

func (self *Target) saveState() restorableState {
	return restorableState{ clip: self.clip, clipEnabled: self.clipEnabled }
}

func (self *Target) restoreState(state restorableState) {
	self.clip = state.clip
	self.clipEnabled = state.clipEnabled
}

// Binds a fresh width x height tile as the drawing surface, calls
// the given function to draw on it and returns the tile pixels.
// Clipping is disabled while drawing and the previous state is
// restored on every exit path, panics included.
func (self *Target) withTile(width, height int, drawFn func(plotter raster.Plotter)) *image.RGBA {
	state := self.saveState()
	defer self.restoreState(state)

	self.DisableClip()
	stage := newTileStage(width, height)
	drawFn(stage)
	return stage.RGBA
}
