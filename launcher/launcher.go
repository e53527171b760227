// Package launcher is the top-level screen of the device: a menu of the
// registered apps. Choosing an entry runs the app and comes back to the menu
// with the cursor where it was.
package launcher

import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/aqpico/config"
	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/device"
	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/menu"
	"github.com/ushitora-anqou/aqpico/surface"
	"github.com/ushitora-anqou/aqpico/util"
	"github.com/ushitora-anqou/aqpico/window"
)

const FAULT_TITLE = "ERROR"

var (
	faultTitleColor = surface.RGB(255, 0, 0)
	faultHintColor  = surface.RGB(128, 128, 128)
)

type Launcher struct {
	dev *device.Device
	reg *Registry
	cfg *config.Config
}

// New builds a launcher over reg. cfg is read every time a screen is built,
// so changes made by the settings app apply to the next screen.
func New(dev *device.Device, reg *Registry, cfg *config.Config) *Launcher {
	return &Launcher{dev: dev, reg: reg, cfg: cfg}
}

// buttons returns fresh readers for every button. They start from the
// current level, so the press that closed the previous screen is not seen
// again.
func (l *Launcher) buttons() [constant.NUM_BUTTONS]*joypad.Button {
	var ret [constant.NUM_BUTTONS]*joypad.Button
	for id := range ret {
		ret[id] = l.dev.Button(id)
		ret[id].Sync()
	}
	return ret
}

func (l *Launcher) newMenu(items []string) *menu.Menu {
	btns := l.buttons()
	return menu.New(l.dev, l.dev, menu.Buttons{
		Previous: btns[constant.BTN_Y],
		Next:     btns[constant.BTN_X],
		Select:   btns[constant.BTN_A],
		Exit:     btns[constant.BTN_B],
	}, MenuConfig(l.cfg.Menu, items))
}

// Run shows the app menu until it is exited. A failing app is reported on a
// fault screen and does not end Run.
func (l *Launcher) Run() error {
	items := l.reg.ListAvailable()
	cursor := 0
	for {
		m := l.newMenu(items)
		m.SetSelected(cursor)
		sel, err := m.Select()
		if errors.Is(err, menu.ErrCancelled) {
			util.Trace("launcher: exit")
			return nil
		}
		if err != nil {
			return err
		}
		cursor = sel.Index

		err = l.reg.Launch(sel.Label)
		if errors.Is(err, window.ErrClosed) {
			return err
		}
		if err != nil {
			util.Trace("launcher: %s failed: %v", sel.Label, err)
			if err := l.showFault(sel.Label, err); err != nil {
				return err
			}
		}
	}
}

// showFault reports an app failure and waits for any button.
func (l *Launcher) showFault(name string, fault error) error {
	pal := MenuConfig(l.cfg.Menu, nil).Palette
	w, h := l.dev.Bounds()
	titleSize, textSize := 3, 2

	l.dev.Clear(pal.Background)
	l.dev.Text(FAULT_TITLE, 4, 4, 0, titleSize, faultTitleColor)
	msg := fmt.Sprintf("%s: %v", name, fault)
	l.dev.Text(msg, 4, 8+l.dev.TextHeight(titleSize), w-8, textSize, pal.Foreground)
	l.dev.Text("Press any button", 4, h-4-l.dev.TextHeight(textSize), 0, textSize, faultHintColor)
	if err := l.dev.Present(); err != nil {
		return err
	}

	btns := l.buttons()
	for {
		for _, b := range btns {
			if b.IsPressed() {
				return nil
			}
		}
		if err := l.dev.Wait(); err != nil {
			return err
		}
	}
}
