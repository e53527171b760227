package surface

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v3"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ushitora-anqou/aqpico/constant"
)

type Framebuffer struct {
	frame *image.RGBA
	face  font.Face
	out   Presenter
	// glyph scratch, reused between Text calls
	scratch *image.RGBA
}

func NewFramebuffer(width, height int, out Presenter) *Framebuffer {
	return &Framebuffer{
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
		face:  bitmapfont.Face,
		out:   out,
	}
}

func (fb *Framebuffer) Frame() *image.RGBA {
	return fb.frame
}

func (fb *Framebuffer) Bounds() (int, int) {
	size := fb.frame.Bounds().Size()
	return size.X, size.Y
}

func (fb *Framebuffer) Present() error {
	if fb.out == nil {
		return nil
	}
	return fb.out.Show(fb.frame)
}

func (fb *Framebuffer) Clear(c color.Color) {
	draw.Draw(fb.frame, fb.frame.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (fb *Framebuffer) Rectangle(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.frame.Bounds())
	draw.Draw(fb.frame, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (fb *Framebuffer) Line(x1, y1, x2, y2 int, c color.Color) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		fb.frame.Set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

// Circle fills every pixel whose centre lies within r of (x, y).
func (fb *Framebuffer) Circle(x, y, r int, c color.Color) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				fb.frame.Set(x+dx, y+dy, c)
			}
		}
	}
}

// MeasureText returns the advance of s at the given size. Size 2 is the
// face's native cell; every other size scales it by size/2.
func (fb *Framebuffer) MeasureText(s string, size int) int {
	return scaled(font.MeasureString(fb.face, s).Ceil(), size)
}

func (fb *Framebuffer) TextHeight(size int) int {
	return scaled(fb.face.Metrics().Height.Ceil(), size)
}

func (fb *Framebuffer) Text(s string, x, y, maxWidth, size int, c color.Color) {
	lineHeight := fb.TextHeight(size)
	for i, line := range fb.wrap(s, maxWidth, size) {
		fb.drawLine(line, x, y+i*lineHeight, size, c)
	}
}

// wrap splits s on spaces so that no line is wider than maxWidth. A single
// word wider than maxWidth stays on its own line.
func (fb *Framebuffer) wrap(s string, maxWidth, size int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Split(para, " ")
		cur := ""
		for _, w := range words {
			next := w
			if cur != "" {
				next = cur + " " + w
			}
			if cur != "" && maxWidth > 0 && fb.MeasureText(next, size) > maxWidth {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}

func (fb *Framebuffer) drawLine(s string, x, y, size int, c color.Color) {
	if s == "" || size <= 0 {
		return
	}
	w := font.MeasureString(fb.face, s).Ceil()
	h := fb.face.Metrics().Height.Ceil()
	if fb.scratch == nil || fb.scratch.Bounds().Dx() < w || fb.scratch.Bounds().Dy() < h {
		fb.scratch = image.NewRGBA(image.Rect(0, 0, max(w, 64), h))
	}
	glyphs := fb.scratch.SubImage(image.Rect(0, 0, w, h)).(*image.RGBA)
	draw.Draw(glyphs, glyphs.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: fb.face,
		Dot:  fixed.P(0, fb.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	dst := image.Rect(x, y, x+scaled(w, size), y+scaled(h, size))
	xdraw.NearestNeighbor.Scale(fb.frame, dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

func scaled(px, size int) int {
	return px * size / constant.FONT_BASE_SCALE
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
