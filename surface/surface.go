// Package surface defines the drawing contract shared by every screen of the
// device and a software framebuffer implementing it.
//
// All coordinates are integer pixels with the origin at the top-left corner.
// Drawing outside the frame is clipped silently.
package surface

import (
	"image"
	"image/color"
)

type Surface interface {
	Clear(c color.Color)
	Rectangle(x, y, w, h int, c color.Color)
	Line(x1, y1, x2, y2 int, c color.Color)
	Circle(x, y, r int, c color.Color)
	// Text draws s with its top-left corner at (x, y), wrapping words that
	// would cross x+maxWidth. A maxWidth of 0 or less never wraps.
	Text(s string, x, y, maxWidth, size int, c color.Color)
	MeasureText(s string, size int) int
	TextHeight(size int) int
	Bounds() (width, height int)
	// Present pushes the finished frame to the display.
	Present() error
}

// Presenter receives finished frames. Implementations must copy what they
// keep: the frame is reused for the next drawing.
type Presenter interface {
	Show(frame *image.RGBA) error
}

func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
