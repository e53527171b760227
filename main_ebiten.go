//go:build ebiten && !sdl2

package main

import (
	"log"

	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/window"
)

func runEbiten() error {
	cfg, done, err := prepare()
	if err != nil || done {
		return err
	}
	stop, err := startProfile()
	if err != nil {
		return err
	}
	defer stop()

	window.EbitenInitialize(cfg.Scale)
	pad := joypad.NewJoypad()
	wind := window.NewEbitenWindow(pad)

	// Ebiten keeps the main goroutine; the device runs beside it.
	sessionErr := make(chan error, 1)
	go func() {
		err := NewAQPico(wind, pad, cfg).Run()
		wind.Finish()
		sessionErr <- err
	}()

	if err := wind.Run(); err != nil {
		return err
	}
	return <-sessionErr
}

func main() {
	err := runEbiten()
	if err != nil {
		log.Fatal(err)
	}
}
