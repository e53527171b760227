package joypad

import (
	"sync/atomic"
	"time"

	"github.com/ushitora-anqou/aqpico/constant"
)

// Joypad holds the raw level of every device button. Levels and taps may be
// written from a backend goroutine; everything else belongs to the tick loop.
type Joypad struct {
	held   atomic.Uint32
	tapped atomic.Uint32
	taps   uint32
	now    func() time.Time
}

func NewJoypad() *Joypad {
	return &Joypad{now: time.Now}
}

// NewJoypadWithClock is NewJoypad with a caller supplied clock.
func NewJoypadWithClock(now func() time.Time) *Joypad {
	return &Joypad{now: now}
}

func (j *Joypad) SetState(state uint8) {
	j.held.Store(uint32(state) & (1<<constant.NUM_BUTTONS - 1))
}

func (j *Joypad) State() uint8 {
	return uint8(j.held.Load() | j.taps)
}

func (j *Joypad) Press(id int) {
	for {
		old := j.held.Load()
		if j.held.CompareAndSwap(old, old|1<<id) {
			return
		}
	}
}

func (j *Joypad) Release(id int) {
	for {
		old := j.held.Load()
		if j.held.CompareAndSwap(old, old&^(1<<id)) {
			return
		}
	}
}

// Tap registers a press that lasts exactly one tick, for inputs that never
// report a release (terminal key events).
func (j *Joypad) Tap(id int) {
	for {
		old := j.tapped.Load()
		if j.tapped.CompareAndSwap(old, old|1<<id) {
			return
		}
	}
}

// Latch starts a new tick: taps received since the previous Latch become
// visible, older ones are dropped.
func (j *Joypad) Latch() {
	j.taps = j.tapped.Swap(0)
}

func (j *Joypad) Raw(id int) bool {
	return (j.held.Load()|j.taps)&(1<<id) != 0
}

// Button returns a reader for one button with the device's default
// repeat/hold timing.
func (j *Joypad) Button(id int) *Button {
	return &Button{
		pad:    j,
		id:     id,
		repeat: constant.BUTTON_REPEAT,
		hold:   constant.BUTTON_HOLD,
	}
}
