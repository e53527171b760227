package surface

import (
	"image"
	"image/color"
	"testing"
)

type countingPresenter struct {
	frames int
	last   color.Color
}

func (p *countingPresenter) Show(frame *image.RGBA) error {
	p.frames++
	p.last = frame.At(0, 0)
	return nil
}

var (
	black = RGB(0, 0, 0)
	white = RGB(255, 255, 255)
)

func TestMeasureScalesWithSize(t *testing.T) {
	fb := NewFramebuffer(240, 135, nil)
	native := fb.MeasureText("PONG", 2)
	if native <= 0 {
		t.Fatalf("native width: got %d", native)
	}
	if got := fb.MeasureText("PONG", 4); got != 2*native {
		t.Fatalf("size 4 width: got %d, expected %d", got, 2*native)
	}
	if got := fb.MeasureText("", 3); got != 0 {
		t.Fatalf("empty width: got %d, expected 0", got)
	}
	if got, expected := fb.TextHeight(3), 3*fb.TextHeight(2)/2; got != expected {
		t.Fatalf("size 3 height: got %d, expected %d", got, expected)
	}
	// Every ASCII glyph has the same advance.
	if fb.MeasureText("iiii", 2) != fb.MeasureText("WWWW", 2) {
		t.Fatalf("face is not monospaced for ASCII")
	}
}

func TestPresentHandsOffFrame(t *testing.T) {
	p := &countingPresenter{}
	fb := NewFramebuffer(8, 8, p)
	fb.Clear(white)
	if err := fb.Present(); err != nil {
		t.Fatalf("present: %v", err)
	}
	if p.frames != 1 || p.last != color.Color(white) {
		t.Fatalf("presenter got %d frames, corner %v", p.frames, p.last)
	}
}

func TestShapesClip(t *testing.T) {
	fb := NewFramebuffer(10, 10, nil)
	fb.Clear(black)
	fb.Rectangle(-5, -5, 8, 8, white)
	if fb.Frame().RGBAAt(2, 2) != white || fb.Frame().RGBAAt(3, 3) != black {
		t.Fatalf("rectangle not clipped to [0,3)")
	}
	fb.Circle(9, 9, 2, white)
	if fb.Frame().RGBAAt(9, 9) != white || fb.Frame().RGBAAt(7, 7) != black {
		t.Fatalf("circle footprint wrong")
	}
	fb.Line(0, 9, 9, 0, white)
	for i := 0; i < 10; i++ {
		if fb.Frame().RGBAAt(i, 9-i) != white {
			t.Fatalf("diagonal missing pixel (%d,%d)", i, 9-i)
		}
	}
}

func TestWrap(t *testing.T) {
	fb := NewFramebuffer(240, 135, nil)
	word := fb.MeasureText("aaaa", 2)
	lines := fb.wrap("aaaa bbbb cccc", 2*word+fb.MeasureText(" ", 2), 2)
	if len(lines) != 2 || lines[0] != "aaaa bbbb" || lines[1] != "cccc" {
		t.Fatalf("wrap: got %q", lines)
	}
	lines = fb.wrap("aaaa bbbb", 0, 2)
	if len(lines) != 1 {
		t.Fatalf("maxWidth 0 must not wrap: got %q", lines)
	}
}

func TestTextDrawsInsideBox(t *testing.T) {
	fb := NewFramebuffer(100, 40, nil)
	fb.Clear(black)
	fb.Text("X", 10, 10, 100, 2, white)
	found := false
	w, h := fb.MeasureText("X", 2), fb.TextHeight(2)
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if fb.Frame().RGBAAt(x, y) == white {
				if x < 10 || x >= 10+w || y < 10 || y >= 10+h {
					t.Fatalf("glyph pixel (%d,%d) outside its cell", x, y)
				}
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("no glyph pixels drawn")
	}
}
