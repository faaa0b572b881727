package sim

import "github.com/san-kum/heatlife/internal/palette"

// NoData reports whether every cell of a non-empty frame has the no-data
// color, which is what the mapper yields between resamples when no hue is
// kept.
func (f Frame) NoData() bool {
	if f.Size == 0 {
		return false
	}
	for _, row := range f.Colors {
		for _, c := range row {
			if c != palette.NoData {
				return false
			}
		}
	}
	return true
}

// FrameHolder sits between a simulation and its display. All-gray frames are
// replaced by the colors of the last frame that had any, while Generation and
// Alive still follow the newest frame. The zero value is ready to use.
type FrameHolder struct {
	last Frame
	held bool
}

// Show returns the frame to display for f.
func (h *FrameHolder) Show(f Frame) Frame {
	if !f.NoData() {
		h.last, h.held = f, true
		return f
	}
	if !h.held || h.last.Size != f.Size {
		return f
	}
	f.Colors = h.last.Colors
	f.Sampled = h.last.Sampled
	return f
}

// Reset forgets the held colors.
func (h *FrameHolder) Reset() { *h = FrameHolder{} }
