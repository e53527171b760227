package window

import (
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/util"
)

// TerminalWindow renders the framebuffer with half-block characters, two
// pixel rows per terminal row. Terminals report key presses but never
// releases, so every key becomes a one-tick tap.
type TerminalWindow struct {
	pad    *joypad.Joypad
	prog   *tea.Program
	step   int
	closed atomic.Bool
	done   chan struct{}
	err    error

	mtxFrame sync.Mutex
	frame    *image.RGBA
}

type frameMsg struct{}

var terminalKeys = map[string][]int{
	"a":         {constant.BTN_A},
	"enter":     {constant.BTN_A},
	"b":         {constant.BTN_B},
	"backspace": {constant.BTN_B},
	"x":         {constant.BTN_X},
	"up":        {constant.BTN_X},
	"y":         {constant.BTN_Y},
	"down":      {constant.BTN_Y},
	"p":         {constant.BTN_X, constant.BTN_Y},
	" ":         {constant.BTN_X, constant.BTN_Y},
}

// NewTerminalWindow samples every step-th pixel in both directions.
func NewTerminalWindow(pad *joypad.Joypad, step int) *TerminalWindow {
	if step < 1 {
		step = 1
	}
	wind := &TerminalWindow{
		pad:   pad,
		step:  step,
		done:  make(chan struct{}),
		frame: image.NewRGBA(image.Rect(0, 0, constant.LCD_WIDTH, constant.LCD_HEIGHT)),
	}
	wind.prog = tea.NewProgram(&terminalModel{wind: wind}, tea.WithAltScreen())
	return wind
}

// Start runs the terminal program in the background until Stop is called or
// the user quits.
func (wind *TerminalWindow) Start() {
	go func() {
		defer close(wind.done)
		_, err := wind.prog.Run()
		wind.err = err
		wind.closed.Store(true)
		util.Trace("terminal: program finished: %v", err)
	}()
}

// Stop quits the terminal program and returns its error, if any.
func (wind *TerminalWindow) Stop() error {
	wind.prog.Quit()
	<-wind.done
	return wind.err
}

func (wind *TerminalWindow) Show(frame *image.RGBA) error {
	if wind.closed.Load() {
		return ErrClosed
	}
	wind.mtxFrame.Lock()
	if wind.frame.Bounds() != frame.Bounds() {
		wind.frame = image.NewRGBA(frame.Bounds())
	}
	copy(wind.frame.Pix, frame.Pix)
	wind.mtxFrame.Unlock()
	wind.prog.Send(frameMsg{})
	return nil
}

func (wind *TerminalWindow) Poll() error {
	if wind.closed.Load() {
		return ErrClosed
	}
	wind.pad.Latch()
	return nil
}

// render converts the last shown frame into styled text. Runs of cells with
// the same colours share one style.
func (wind *TerminalWindow) render() string {
	wind.mtxFrame.Lock()
	defer wind.mtxFrame.Unlock()

	bounds := wind.frame.Bounds()
	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 * wind.step {
		var run strings.Builder
		var runStyle lipgloss.Style
		runKey := ""
		for x := bounds.Min.X; x < bounds.Max.X; x += wind.step {
			top := wind.frame.RGBAAt(x, y)
			bottom := wind.frame.RGBAAt(x, y+wind.step)
			fg := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))
			bg := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bottom.R, bottom.G, bottom.B))
			key := string(fg) + string(bg)
			if key != runKey && run.Len() > 0 {
				sb.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
			if key != runKey {
				runStyle = lipgloss.NewStyle().Foreground(fg).Background(bg)
				runKey = key
			}
			run.WriteString("▀")
		}
		sb.WriteString(runStyle.Render(run.String()))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type terminalModel struct {
	wind *TerminalWindow
	view string
}

func (m *terminalModel) Init() tea.Cmd {
	return nil
}

func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			m.wind.closed.Store(true)
			return m, tea.Quit
		}
		for _, id := range terminalKeys[msg.String()] {
			m.wind.pad.Tap(id)
		}
	case frameMsg:
		m.view = m.wind.render()
	}
	return m, nil
}

func (m *terminalModel) View() string {
	return m.view
}
