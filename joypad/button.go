package joypad

import "time"

// Button turns a raw level into momentary presses: true on the press edge
// and, while held, once per repeat period (three times as often after the
// hold time). Reading consumes the edge.
type Button struct {
	pad          *Joypad
	id           int
	repeat, hold time.Duration

	lastState bool
	pressed   bool
	pressedAt time.Time
	lastAt    time.Time
}

func (b *Button) ID() int {
	return b.id
}

// SetRepeat changes the auto-repeat period. 0 disables auto-repeat.
func (b *Button) SetRepeat(repeat time.Duration) {
	b.repeat = repeat
}

func (b *Button) SetHold(hold time.Duration) {
	b.hold = hold
}

func (b *Button) Raw() bool {
	return b.pad.Raw(b.id)
}

func (b *Button) IsPressed() bool {
	now := b.pad.now()
	state := b.pad.Raw(b.id)
	changed := state != b.lastState
	b.lastState = state

	if changed {
		if state {
			b.pressed = true
			b.pressedAt = now
			b.lastAt = now
			return true
		}
		b.pressed = false
		b.pressedAt = time.Time{}
		b.lastAt = time.Time{}
	}

	if b.repeat == 0 || !b.pressed {
		return false
	}

	rate := b.repeat
	if b.hold > 0 && now.Sub(b.pressedAt) > b.hold {
		rate /= 3
	}
	if now.Sub(b.lastAt) > rate {
		b.lastAt = now
		return true
	}
	return false
}

// Sync adopts the current level without reporting it: a press still held
// from a previous screen neither fires nor repeats until it is released.
func (b *Button) Sync() {
	b.lastState = b.Raw()
	b.pressed = false
	b.pressedAt = time.Time{}
	b.lastAt = time.Time{}
}
