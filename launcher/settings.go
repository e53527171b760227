package launcher

import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/menu"
	"github.com/ushitora-anqou/aqpico/slider"
	"github.com/ushitora-anqou/aqpico/util"
)

type tunable struct {
	title          string
	value          *int
	min, max, step int
}

// settings edits the in-memory configuration. Nothing is written to disk.
type settings struct {
	l *Launcher
}

// Settings returns the settings app for this launcher.
func (l *Launcher) Settings() App {
	return &settings{l: l}
}

func (s *settings) tunables() []tunable {
	cfg := s.l.cfg
	return []tunable{
		{"Scroll delay", &cfg.Menu.ScrollTimeout, 10, 200, 10},
		{"Font size", &cfg.Menu.FontSize, 1, 4, 1},
		{"Ball speed", &cfg.Pong.BallSpeed, 1, 5, 1},
		{"Paddle speed", &cfg.Pong.MoveDelta, 1, 10, 1},
	}
}

func (s *settings) Run() error {
	cursor := 0
	for {
		tunables := s.tunables()
		items := make([]string, len(tunables))
		for i, t := range tunables {
			items[i] = fmt.Sprintf("%s: %d", t.title, *t.value)
		}

		m := s.l.newMenu(items)
		m.SetSelected(cursor)
		sel, err := m.Select()
		if errors.Is(err, menu.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		cursor = sel.Index

		if err := s.edit(tunables[sel.Index]); err != nil {
			return err
		}
	}
}

func (s *settings) edit(t tunable) error {
	btns := s.l.buttons()
	sl := slider.New(s.l.dev, s.l.dev, slider.Buttons{
		Inc:    btns[constant.BTN_X],
		Dec:    btns[constant.BTN_Y],
		Save:   btns[constant.BTN_A],
		Cancel: btns[constant.BTN_B],
	}, slider.Config{
		Title:    t.title,
		Min:      t.min,
		Max:      t.max,
		Step:     t.step,
		Value:    *t.value,
		FontSize: 2,
		Palette:  slider.DefaultPalette(),
	})
	value, err := sl.Run()
	if errors.Is(err, slider.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	util.Trace("settings: %s = %d", t.title, value)
	*t.value = value
	return nil
}
