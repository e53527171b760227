// Package menu implements the scrollable list menu of the device.
//
// The list is drawn one row per item with the selected row highlighted. The
// view follows the cursor once it passes the middle of the screen, a
// scrollbar appears when the items do not fit, and a selected label wider
// than the screen scrolls horizontally one character at a time.
package menu

import (
	"errors"
	"image/color"

	"github.com/ushitora-anqou/aqpico/surface"
	"github.com/ushitora-anqou/aqpico/util"
)

// ErrCancelled is returned by Select when the exit button is pressed.
var ErrCancelled = errors.New("menu: cancelled")

type Button interface {
	IsPressed() bool
}

type Ticker interface {
	Wait() error
}

type Buttons struct {
	Previous Button
	Next     Button
	Select   Button
	Exit     Button
}

type Palette struct {
	Background          color.RGBA
	Foreground          color.RGBA
	Highlight           color.RGBA
	HighlightForeground color.RGBA
	Scrollbar           color.RGBA
	ScrollbarBackground color.RGBA
}

type Config struct {
	Items   []string
	Palette Palette
	// FontSize is the text scale handed to the surface.
	FontSize int
	// ScrollTimeout is the number of ticks between two steps of the
	// horizontal scroll. The full label dwells three times as long.
	ScrollTimeout int
	// ScrollbarWidth of 0 disables the scrollbar and its gutter.
	ScrollbarWidth int
	Padding        int
}

func DefaultPalette() Palette {
	return Palette{
		Background:          surface.RGB(0, 0, 0),
		Foreground:          surface.RGB(255, 255, 255),
		Highlight:           surface.RGB(30, 30, 30),
		HighlightForeground: surface.RGB(255, 255, 255),
		Scrollbar:           surface.RGB(255, 0, 0),
		ScrollbarBackground: surface.RGB(30, 30, 30),
	}
}

func DefaultConfig() Config {
	return Config{
		Palette:        DefaultPalette(),
		FontSize:       3,
		ScrollTimeout:  50,
		ScrollbarWidth: 4,
		Padding:        4,
	}
}

type Selection struct {
	Index int
	Label string
}

type Menu struct {
	surf    surface.Surface
	ticker  Ticker
	buttons Buttons
	cfg     Config
	items   []string

	// last drawable column and row
	maxX, maxY int
	// first text column when the scrollbar gutter is shown
	lineStart int
	// first text column of the current render
	textStart int

	selected        int
	vscrollOffset   int
	scrolling       bool
	scrollText      string
	scrollCountdown int
}

type noButton struct{}

func (noButton) IsPressed() bool { return false }

func New(surf surface.Surface, ticker Ticker, buttons Buttons, cfg Config) *Menu {
	for _, b := range []*Button{&buttons.Previous, &buttons.Next, &buttons.Select, &buttons.Exit} {
		if *b == nil {
			*b = noButton{}
		}
	}
	if cfg.FontSize < 1 {
		cfg.FontSize = 1
	}
	if cfg.ScrollbarWidth < 0 {
		cfg.ScrollbarWidth = 0
	}
	if cfg.Padding < 0 {
		cfg.Padding = 0
	}

	w, h := surf.Bounds()
	m := &Menu{
		surf:      surf,
		ticker:    ticker,
		buttons:   buttons,
		cfg:       cfg,
		items:     append([]string(nil), cfg.Items...),
		maxX:      w - 1,
		maxY:      h - 1,
		lineStart: cfg.ScrollbarWidth + 2,
	}
	m.textStart = m.lineStart
	return m
}

func (m *Menu) Len() int {
	return len(m.items)
}

func (m *Menu) Selected() int {
	return m.selected
}

// SetSelected moves the cursor without drawing. Out of range values are
// clamped.
func (m *Menu) SetSelected(i int) {
	m.selected = util.Clamp(i, 0, len(m.items)-1)
}

// Scrolling reports whether the selected label overflowed at the last
// render.
func (m *Menu) Scrolling() bool {
	return m.scrolling
}

func (m *Menu) ScrollText() string {
	return m.scrollText
}

func (m *Menu) lineSpace() int {
	return m.surf.TextHeight(m.cfg.FontSize) + 2*m.cfg.Padding
}

func (m *Menu) rowY(i int) int {
	return m.lineSpace()*i + m.vscrollOffset
}

func (m *Menu) usableWidth() int {
	return m.maxX - m.textStart
}

// Render redraws the whole menu and presents it.
func (m *Menu) Render() error {
	pal := m.cfg.Palette
	ls := m.lineSpace()

	// Keep the cursor near the middle once it gets there.
	if ls*(m.selected+1) > m.maxY/2 {
		m.vscrollOffset = m.maxY/2 - ls*m.selected - ls/2 + m.cfg.Padding + 1
	} else {
		m.vscrollOffset = 0
	}

	m.surf.Clear(pal.Background)

	m.textStart = m.lineStart
	if n := len(m.items); m.cfg.ScrollbarWidth > 0 && n*ls > m.maxY {
		thumb := m.maxY / n
		m.surf.Rectangle(0, 0, m.cfg.ScrollbarWidth, m.maxY, pal.ScrollbarBackground)
		m.surf.Rectangle(0, m.selected*thumb, m.cfg.ScrollbarWidth, thumb, pal.Scrollbar)
	} else {
		m.textStart = 2
	}

	m.scrolling = false
	for i, item := range m.items {
		y := m.rowY(i)
		fg := pal.Foreground
		if i == m.selected {
			width := m.cfg.Padding + m.surf.MeasureText(item, m.cfg.FontSize)
			m.surf.Rectangle(m.textStart, y, width, ls, pal.Highlight)
			fg = pal.HighlightForeground
			if width > m.usableWidth() {
				m.scrolling = true
				m.scrollText = item
				m.scrollCountdown = m.cfg.ScrollTimeout
			}
		}
		m.surf.Text(item, m.cfg.Padding+m.textStart, m.cfg.Padding+y, 0, m.cfg.FontSize, fg)
	}

	return m.surf.Present()
}

// TickScroll advances the horizontal scroll of the selected label by one
// tick. Only the selected row is redrawn.
func (m *Menu) TickScroll() error {
	if !m.scrolling {
		return nil
	}
	if m.scrollCountdown > 0 {
		m.scrollCountdown--
		return nil
	}

	pal := m.cfg.Palette
	y := m.rowY(m.selected)
	m.surf.Rectangle(m.textStart, y, 1+m.maxX-m.textStart, m.lineSpace(), pal.Highlight)
	m.surf.Text(m.scrollText, m.cfg.Padding+m.textStart, m.cfg.Padding+y, 0, m.cfg.FontSize, pal.HighlightForeground)

	if m.cfg.Padding+m.surf.MeasureText(m.scrollText, m.cfg.FontSize) > m.usableWidth() {
		m.scrollText = dropFirstRune(m.scrollText)
		m.scrollCountdown = m.cfg.ScrollTimeout
	} else {
		m.scrollText = m.items[m.selected]
		m.scrollCountdown = 3 * m.cfg.ScrollTimeout
	}
	util.Trace("menu: scroll %q", m.scrollText)

	return m.surf.Present()
}

func dropFirstRune(s string) string {
	for i := range s {
		if i > 0 {
			return s[i:]
		}
	}
	return ""
}

func (m *Menu) moveUp() bool {
	if m.selected == 0 {
		return false
	}
	m.selected--
	return true
}

func (m *Menu) moveDown() bool {
	if m.selected >= len(m.items)-1 {
		return false
	}
	m.selected++
	return true
}

// Select runs the menu until an item is chosen or the exit button is
// pressed. Buttons are read in order Next, Previous, Select, Exit and the
// first one pressed is the only one handled in that tick.
func (m *Menu) Select() (Selection, error) {
	if err := m.Render(); err != nil {
		return Selection{}, err
	}
	for {
		moved := false
		switch {
		case m.buttons.Next.IsPressed():
			moved = m.moveUp()
		case m.buttons.Previous.IsPressed():
			moved = m.moveDown()
		case m.buttons.Select.IsPressed():
			if len(m.items) > 0 {
				util.Trace("menu: selected %d %q", m.selected, m.items[m.selected])
				return Selection{Index: m.selected, Label: m.items[m.selected]}, nil
			}
		case m.buttons.Exit.IsPressed():
			return Selection{}, ErrCancelled
		default:
			if err := m.TickScroll(); err != nil {
				return Selection{}, err
			}
		}
		if moved {
			util.Trace("menu: cursor at %d", m.selected)
			if err := m.Render(); err != nil {
				return Selection{}, err
			}
		}
		if err := m.ticker.Wait(); err != nil {
			return Selection{}, err
		}
	}
}
