package window

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/joypad"
)

func TestTerminalKeysTapButtons(t *testing.T) {
	tests := []struct {
		key      tea.KeyMsg
		expected uint8
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, 1 << constant.BTN_A},
		{tea.KeyMsg{Type: tea.KeyEnter}, 1 << constant.BTN_A},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, 1 << constant.BTN_B},
		{tea.KeyMsg{Type: tea.KeyUp}, 1 << constant.BTN_X},
		{tea.KeyMsg{Type: tea.KeyDown}, 1 << constant.BTN_Y},
		{tea.KeyMsg{Type: tea.KeySpace}, 1<<constant.BTN_X | 1<<constant.BTN_Y},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, 0},
	}
	for _, tc := range tests {
		pad := joypad.NewJoypad()
		wind := NewTerminalWindow(pad, 2)
		model := &terminalModel{wind: wind}
		model.Update(tc.key)
		if err := wind.Poll(); err != nil {
			t.Fatalf("Poll failed: %v", err)
		}
		if got := pad.State(); got != tc.expected {
			t.Fatalf("Invalid state for %q: expected %04b, got %04b", tc.key.String(), tc.expected, got)
		}
		if err := wind.Poll(); err != nil {
			t.Fatalf("Poll failed: %v", err)
		}
		if got := pad.State(); got != 0 {
			t.Fatalf("Tap for %q outlived its tick: %04b", tc.key.String(), got)
		}
	}
}

func TestTerminalEscapeCloses(t *testing.T) {
	wind := NewTerminalWindow(joypad.NewJoypad(), 2)
	model := &terminalModel{wind: wind}
	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Fatalf("Escape did not quit the program")
	}
	if err := wind.Poll(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Invalid error: expected %v, got %v", ErrClosed, err)
	}
}

func TestTerminalRenderHalfBlocks(t *testing.T) {
	wind := NewTerminalWindow(joypad.NewJoypad(), 2)
	wind.frame.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})

	lines := strings.Split(strings.TrimSuffix(wind.render(), "\n"), "\n")
	rows := (constant.LCD_HEIGHT + 3) / 4
	if len(lines) != rows {
		t.Fatalf("Invalid row count: expected %d, got %d", rows, len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, "▀"); n != constant.LCD_WIDTH/2 {
			t.Fatalf("Invalid cell count on row %d: expected %d, got %d", i, constant.LCD_WIDTH/2, n)
		}
	}
}
