//go:build !sdl2 && !ebiten

package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/util"
	"github.com/ushitora-anqou/aqpico/window"
)

// Every other pixel in each direction: 120x68 cells.
const TERMINAL_STEP = 2

func run() error {
	cfg, done, err := prepare()
	if err != nil || done {
		return err
	}
	stop, err := startProfile()
	if err != nil {
		return err
	}
	defer stop()

	// The terminal is the screen, so trace output goes to a file.
	if util.TraceEnabled() {
		f, err := tea.LogToFile("aqpico.log", "aqpico")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	pad := joypad.NewJoypad()
	wind := window.NewTerminalWindow(pad, TERMINAL_STEP)
	wind.Start()

	err = NewAQPico(wind, pad, cfg).Run()
	if stopErr := wind.Stop(); err == nil {
		err = stopErr
	}
	return err
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
