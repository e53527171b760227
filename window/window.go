package window

import (
	"errors"

	"github.com/ushitora-anqou/aqpico/surface"
)

// ErrClosed is returned by Poll once the user has closed the window.
var ErrClosed = errors.New("window closed")

// Window is the physical side of the device: it shows finished frames and
// feeds the joypad.
type Window interface {
	surface.Presenter
	// Poll pumps pending input into the joypad. It is called once per tick
	// from the loop that owns the device.
	Poll() error
}
