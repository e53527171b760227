//go:build sdl2

package window

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/joypad"
)

var sdlKeys = map[sdl.Keycode]int{
	sdl.K_a:         constant.BTN_A,
	sdl.K_RETURN:    constant.BTN_A,
	sdl.K_b:         constant.BTN_B,
	sdl.K_BACKSPACE: constant.BTN_B,
	sdl.K_x:         constant.BTN_X,
	sdl.K_UP:        constant.BTN_X,
	sdl.K_y:         constant.BTN_Y,
	sdl.K_DOWN:      constant.BTN_Y,
}

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pad      *joypad.Joypad
}

func NewSDLWindow(pad *joypad.Joypad, scale int) (*SDLWindow, error) {
	if scale < 1 {
		scale = constant.WINDOW_SCALE
	}
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(constant.LCD_WIDTH*scale),
		int32(constant.LCD_HEIGHT*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		constant.LCD_WIDTH,
		constant.LCD_HEIGHT,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	return &SDLWindow{
		window:   window,
		renderer: renderer,
		texture:  texture,
		pad:      pad,
	}, nil
}

func (wind *SDLWindow) Close() {
	wind.texture.Destroy()
	wind.renderer.Destroy()
	wind.window.Destroy()
}

func (wind *SDLWindow) Show(frame *image.RGBA) error {
	bounds := frame.Bounds()
	if bounds.Dx() != constant.LCD_WIDTH || bounds.Dy() != constant.LCD_HEIGHT {
		return fmt.Errorf(
			"Invalid frame size: expected %dx%d, got %dx%d",
			constant.LCD_WIDTH,
			constant.LCD_HEIGHT,
			bounds.Dx(),
			bounds.Dy(),
		)
	}

	// Update the texture
	pixels, pitch, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	for row := 0; row < constant.LCD_HEIGHT; row++ {
		src := frame.Pix[row*frame.Stride:]
		dst := pixels[row*pitch:]
		for col := 0; col < constant.LCD_WIDTH; col++ {
			dst[col*4+0] = src[col*4+2] // b
			dst[col*4+1] = src[col*4+1] // g
			dst[col*4+2] = src[col*4+0] // r
			dst[col*4+3] = 0xff         // a
		}
	}
	wind.texture.Unlock()

	// Present the scene
	wind.renderer.Clear()
	wind.renderer.Copy(wind.texture, nil, nil)
	wind.renderer.Present()

	return nil
}

// Poll drains the SDL event queue into the joypad. Key repeats from the OS
// are ignored; the joypad buttons do their own repeating.
func (wind *SDLWindow) Poll() error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return ErrClosed

		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return ErrClosed
			}
			id, ok := sdlKeys[ev.Keysym.Sym]
			if !ok || ev.Repeat != 0 {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				wind.pad.Press(id)
			case sdl.KEYUP:
				wind.pad.Release(id)
			}
		}
	}
	wind.pad.Latch()
	return nil
}

func SDLFinalize() {
	sdl.Quit()
}
