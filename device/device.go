// Package device ties together what every screen of the handheld needs: the
// drawing surface, the buttons and the tick clock.
package device

import (
	"math/rand"
	"time"

	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/surface"
)

type Ticker interface {
	// Wait blocks until the next tick. An error means the device is going
	// away and the caller must unwind.
	Wait() error
}

type Device struct {
	surface.Surface
	Ticker
	Pad  *joypad.Joypad
	Rand *rand.Rand
}

func NewDevice(surf surface.Surface, pad *joypad.Joypad, ticker Ticker) *Device {
	return &Device{
		Surface: surf,
		Ticker:  ticker,
		Pad:     pad,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Button returns a fresh reader for button id. Readers keep their own edge
// state, so every screen should take its own.
func (d *Device) Button(id int) *joypad.Button {
	return d.Pad.Button(id)
}

// Sleep waits n ticks.
func (d *Device) Sleep(n int) error {
	for i := 0; i < n; i++ {
		if err := d.Wait(); err != nil {
			return err
		}
	}
	return nil
}
