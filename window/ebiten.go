//go:build ebiten

package window

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/util"
)

var ebitenKeys = map[ebiten.Key]int{
	ebiten.KeyA:         constant.BTN_A,
	ebiten.KeyEnter:     constant.BTN_A,
	ebiten.KeyB:         constant.BTN_B,
	ebiten.KeyBackspace: constant.BTN_B,
	ebiten.KeyX:         constant.BTN_X,
	ebiten.KeyUp:        constant.BTN_X,
	ebiten.KeyY:         constant.BTN_Y,
	ebiten.KeyDown:      constant.BTN_Y,
}

func EbitenInitialize(scale int) {
	if scale < 1 {
		scale = constant.WINDOW_SCALE
	}
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(constant.LCD_WIDTH*scale, constant.LCD_HEIGHT*scale)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)
}

// EbitenWindow is both the device window and the ebiten.Game. Ebiten owns
// the main goroutine, so the tick loop runs elsewhere and the two sides only
// share the last shown frame and the joypad.
type EbitenWindow struct {
	pad      *joypad.Joypad
	closed   atomic.Bool
	finished atomic.Bool

	mtxPixels sync.Mutex
	pixels    []byte
}

func NewEbitenWindow(pad *joypad.Joypad) *EbitenWindow {
	return &EbitenWindow{
		pad:    pad,
		pixels: make([]byte, 4*constant.LCD_WIDTH*constant.LCD_HEIGHT),
	}
}

// Run blocks until the window is closed or Finish is called.
func (wind *EbitenWindow) Run() error {
	defer wind.closed.Store(true)
	return ebiten.RunGame(wind)
}

// Finish asks the game loop to terminate at its next update.
func (wind *EbitenWindow) Finish() {
	wind.finished.Store(true)
}

func (wind *EbitenWindow) Show(frame *image.RGBA) error {
	if wind.closed.Load() {
		return ErrClosed
	}
	wind.mtxPixels.Lock()
	copy(wind.pixels, frame.Pix)
	wind.mtxPixels.Unlock()
	return nil
}

func (wind *EbitenWindow) Poll() error {
	if wind.closed.Load() {
		return ErrClosed
	}
	wind.pad.Latch()
	return nil
}

func (wind *EbitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constant.LCD_WIDTH, constant.LCD_HEIGHT
}

func (wind *EbitenWindow) Update() error {
	if wind.finished.Load() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		wind.closed.Store(true)
		return ebiten.Termination
	}

	var state uint8
	for key, id := range ebitenKeys {
		state |= util.BoolToU8(ebiten.IsKeyPressed(key)) << id
	}
	wind.pad.SetState(state)

	return nil
}

func (wind *EbitenWindow) Draw(screen *ebiten.Image) {
	wind.mtxPixels.Lock()
	screen.WritePixels(wind.pixels)
	wind.mtxPixels.Unlock()
}
