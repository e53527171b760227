package launcher

import (
	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/pong"
)

// Pong returns the ball game app. Every launch starts a fresh game with the
// current configuration.
func (l *Launcher) Pong() App {
	return AppFunc(func() error {
		btns := l.buttons()
		g := pong.New(l.dev, l.dev, pong.Buttons{
			LeftUp:    btns[constant.BTN_A],
			LeftDown:  btns[constant.BTN_B],
			RightUp:   btns[constant.BTN_X],
			RightDown: btns[constant.BTN_Y],
		}, PongConfig(l.cfg.Pong), l.dev.Rand)
		return g.RunSession()
	})
}
