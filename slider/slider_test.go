package slider

import (
	"errors"
	"image/color"
	"testing"
)

type nullSurface struct {
	presents int
}

func (s *nullSurface) Clear(c color.Color)                                       {}
func (s *nullSurface) Rectangle(x, y, w, h int, c color.Color)                   {}
func (s *nullSurface) Line(x1, y1, x2, y2 int, c color.Color)                    {}
func (s *nullSurface) Circle(x, y, r int, c color.Color)                         {}
func (s *nullSurface) Text(text string, x, y, maxWidth, size int, c color.Color) {}
func (s *nullSurface) MeasureText(text string, size int) int                     { return 6 * size * len(text) }
func (s *nullSurface) TextHeight(size int) int                                   { return 8 * size }
func (s *nullSurface) Bounds() (int, int)                                        { return 240, 135 }
func (s *nullSurface) Present() error {
	s.presents++
	return nil
}

var errScriptDone = errors.New("script done")

type script struct {
	steps   []string
	next    int
	current string
}

func (s *script) Wait() error {
	if s.next == len(s.steps) {
		return errScriptDone
	}
	s.current = s.steps[s.next]
	s.next++
	return nil
}

type scriptButton struct {
	s    *script
	name string
}

func (b scriptButton) IsPressed() bool {
	if b.s.current == b.name {
		b.s.current = ""
		return true
	}
	return false
}

func newScripted(surf *nullSurface, cfg Config, steps ...string) *Slider {
	s := &script{steps: steps}
	return New(surf, s, Buttons{
		Inc:    scriptButton{s, "inc"},
		Dec:    scriptButton{s, "dec"},
		Save:   scriptButton{s, "save"},
		Cancel: scriptButton{s, "cancel"},
	}, cfg)
}

func TestNextPrevious(t *testing.T) {
	s := New(&nullSurface{}, &script{}, Buttons{}, Config{Min: 0, Max: 10, Step: 3, Value: 5})
	tests := []struct {
		next     bool
		changed  bool
		expected int
	}{
		{true, true, 8},
		{true, false, 8},
		{false, true, 5},
		{false, true, 2},
		{false, false, 2},
	}
	for i, tc := range tests {
		var changed bool
		if tc.next {
			changed = s.Next()
		} else {
			changed = s.Previous()
		}
		if changed != tc.changed || s.Value() != tc.expected {
			t.Fatalf("Step %d: expected (%v, %d), got (%v, %d)", i, tc.changed, tc.expected, changed, s.Value())
		}
	}
}

func TestNewClampsValue(t *testing.T) {
	tests := []struct {
		cfg      Config
		expected int
	}{
		{Config{Min: 1, Max: 5, Value: 9}, 5},
		{Config{Min: 1, Max: 5, Value: -2}, 1},
		{Config{Min: 5, Max: 1, Value: 3}, 3},
	}
	for _, tc := range tests {
		if got := New(&nullSurface{}, &script{}, Buttons{}, tc.cfg).Value(); got != tc.expected {
			t.Fatalf("Invalid value for %+v: expected %d, got %d", tc.cfg, tc.expected, got)
		}
	}
}

func TestRunSave(t *testing.T) {
	surf := &nullSurface{}
	s := newScripted(surf, Config{Min: 0, Max: 4, Step: 1, Value: 2}, "inc", "inc", "inc", "", "dec", "save")
	value, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if value != 3 {
		t.Fatalf("Invalid value: expected 3, got %d", value)
	}
	// initial render, two real increments and one decrement
	if surf.presents != 4 {
		t.Fatalf("Invalid present count: expected 4, got %d", surf.presents)
	}
}

func TestRunCancel(t *testing.T) {
	s := newScripted(&nullSurface{}, Config{Min: 0, Max: 4, Value: 2}, "inc", "cancel")
	if _, err := s.Run(); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Invalid error: expected %v, got %v", ErrCancelled, err)
	}
}
