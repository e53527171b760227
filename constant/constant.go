package constant

import "time"

const (
	BTN_A, BTN_B, BTN_X, BTN_Y = 0x00, 0x01, 0x02, 0x03
	NUM_BUTTONS                = 4
	LCD_WIDTH                  = 240
	LCD_HEIGHT                 = 135
	WINDOW_TITLE               = "aqpico"
	WINDOW_SCALE               = 4
	WINDOW_WIDTH               = LCD_WIDTH * WINDOW_SCALE
	WINDOW_HEIGHT              = LCD_HEIGHT * WINDOW_SCALE
	FONT_BASE_SCALE            = 2
)

const (
	TICK_INTERVAL = 10 * time.Millisecond
	BUTTON_REPEAT = 200 * time.Millisecond
	BUTTON_HOLD   = 1000 * time.Millisecond
)
