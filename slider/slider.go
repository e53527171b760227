// Package slider is a full-screen widget for picking an integer from a
// range with two step buttons.
package slider

import (
	"errors"
	"image/color"
	"strconv"

	"github.com/ushitora-anqou/aqpico/surface"
	"github.com/ushitora-anqou/aqpico/util"
)

var ErrCancelled = errors.New("slider: cancelled")

const (
	TRACK_MARGIN  = 16
	TRACK_HEIGHT  = 6
	ENDPOINT_SIZE = 4
	SELECTOR_SIZE = 8
)

type Button interface {
	IsPressed() bool
}

type Ticker interface {
	Wait() error
}

type Buttons struct {
	Inc    Button
	Dec    Button
	Save   Button
	Cancel Button
}

type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
	Track      color.RGBA
	Selector   color.RGBA
	Endpoint   color.RGBA
}

type Config struct {
	Title          string
	Min, Max, Step int
	Value          int
	FontSize       int
	Palette        Palette
}

func DefaultPalette() Palette {
	return Palette{
		Background: surface.RGB(0, 0, 0),
		Foreground: surface.RGB(255, 255, 255),
		Track:      surface.RGB(30, 30, 30),
		Selector:   surface.RGB(0, 255, 0),
		Endpoint:   surface.RGB(255, 0, 255),
	}
}

type Slider struct {
	surf    surface.Surface
	ticker  Ticker
	buttons Buttons
	cfg     Config
	value   int
}

type noButton struct{}

func (noButton) IsPressed() bool { return false }

func New(surf surface.Surface, ticker Ticker, buttons Buttons, cfg Config) *Slider {
	for _, b := range []*Button{&buttons.Inc, &buttons.Dec, &buttons.Save, &buttons.Cancel} {
		if *b == nil {
			*b = noButton{}
		}
	}
	if cfg.Max < cfg.Min {
		cfg.Min, cfg.Max = cfg.Max, cfg.Min
	}
	if cfg.Step < 1 {
		cfg.Step = 1
	}
	if cfg.FontSize < 1 {
		cfg.FontSize = 2
	}
	return &Slider{
		surf:    surf,
		ticker:  ticker,
		buttons: buttons,
		cfg:     cfg,
		value:   util.Clamp(cfg.Value, cfg.Min, cfg.Max),
	}
}

func (s *Slider) Value() int {
	return s.value
}

// Next steps up and reports whether the value changed. A step that would
// leave the range is refused.
func (s *Slider) Next() bool {
	if s.value+s.cfg.Step > s.cfg.Max {
		return false
	}
	s.value += s.cfg.Step
	return true
}

func (s *Slider) Previous() bool {
	if s.value-s.cfg.Step < s.cfg.Min {
		return false
	}
	s.value -= s.cfg.Step
	return true
}

// selectorX maps the value onto the track.
func (s *Slider) selectorX(left, width int) int {
	span := s.cfg.Max - s.cfg.Min
	if span == 0 {
		return left
	}
	return left + (s.value-s.cfg.Min)*width/span
}

func (s *Slider) Render() error {
	pal := s.cfg.Palette
	w, h := s.surf.Bounds()
	size := s.cfg.FontSize
	s.surf.Clear(pal.Background)

	s.surf.Text(s.cfg.Title, TRACK_MARGIN/2, TRACK_MARGIN/2, w-TRACK_MARGIN, size, pal.Foreground)

	left, width := TRACK_MARGIN, w-2*TRACK_MARGIN
	y := h / 2
	s.surf.Rectangle(left, y-TRACK_HEIGHT/2, width, TRACK_HEIGHT, pal.Track)
	s.surf.Rectangle(left-ENDPOINT_SIZE, y-ENDPOINT_SIZE, ENDPOINT_SIZE, 2*ENDPOINT_SIZE, pal.Endpoint)
	s.surf.Rectangle(left+width, y-ENDPOINT_SIZE, ENDPOINT_SIZE, 2*ENDPOINT_SIZE, pal.Endpoint)

	x := s.selectorX(left, width)
	s.surf.Rectangle(x-SELECTOR_SIZE/2, y-SELECTOR_SIZE, SELECTOR_SIZE, 2*SELECTOR_SIZE, pal.Selector)

	label := strconv.Itoa(s.value)
	s.surf.Text(label, (w-s.surf.MeasureText(label, size))/2, y+2*SELECTOR_SIZE, 0, size, pal.Foreground)

	lo, hi := strconv.Itoa(s.cfg.Min), strconv.Itoa(s.cfg.Max)
	s.surf.Text(lo, left-ENDPOINT_SIZE, y+SELECTOR_SIZE, 0, size, pal.Endpoint)
	s.surf.Text(hi, left+width+ENDPOINT_SIZE-s.surf.MeasureText(hi, size), y+SELECTOR_SIZE, 0, size, pal.Endpoint)

	return s.surf.Present()
}

// Run shows the slider until the value is saved or the slider is cancelled.
func (s *Slider) Run() (int, error) {
	if err := s.Render(); err != nil {
		return 0, err
	}
	for {
		changed := false
		switch {
		case s.buttons.Inc.IsPressed():
			changed = s.Next()
		case s.buttons.Dec.IsPressed():
			changed = s.Previous()
		case s.buttons.Save.IsPressed():
			util.Trace("slider: %s saved %d", s.cfg.Title, s.value)
			return s.value, nil
		case s.buttons.Cancel.IsPressed():
			return 0, ErrCancelled
		}
		if changed {
			if err := s.Render(); err != nil {
				return 0, err
			}
		}
		if err := s.ticker.Wait(); err != nil {
			return 0, err
		}
	}
}
