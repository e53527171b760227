//go:build sdl2

package main

import (
	"log"
	"runtime"

	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/window"
)

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

func runSDL2() error {
	cfg, done, err := prepare()
	if err != nil || done {
		return err
	}
	stop, err := startProfile()
	if err != nil {
		return err
	}
	defer stop()

	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		return err
	}
	defer window.SDLFinalize()

	// Create a window
	pad := joypad.NewJoypad()
	wind, err := window.NewSDLWindow(pad, cfg.Scale)
	if err != nil {
		return err
	}
	defer wind.Close()

	return NewAQPico(wind, pad, cfg).Run()
}

func main() {
	err := runSDL2()
	if err != nil {
		log.Fatal(err)
	}
}
