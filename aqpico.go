package main

import (
	"errors"
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/ushitora-anqou/aqpico/config"
	"github.com/ushitora-anqou/aqpico/constant"
	"github.com/ushitora-anqou/aqpico/device"
	"github.com/ushitora-anqou/aqpico/joypad"
	"github.com/ushitora-anqou/aqpico/launcher"
	"github.com/ushitora-anqou/aqpico/surface"
	"github.com/ushitora-anqou/aqpico/util"
	"github.com/ushitora-anqou/aqpico/window"
)

var (
	flagConfig      = flag.String("config", config.DefaultPath(), "configuration file")
	flagWriteConfig = flag.Bool("write-config", false, "write the effective configuration to -config and exit")
)

type AQPico struct {
	dev      *device.Device
	launcher *launcher.Launcher
}

func NewAQPico(wind window.Window, pad *joypad.Joypad, cfg *config.Config) *AQPico {
	fb := surface.NewFramebuffer(constant.LCD_WIDTH, constant.LCD_HEIGHT, wind)
	ts := window.NewTimeSynchronizer(wind, time.Duration(cfg.TickMS)*time.Millisecond)
	dev := device.NewDevice(fb, pad, ts)

	reg := launcher.NewRegistry()
	l := launcher.New(dev, reg, cfg)
	reg.Register("pong", l.Pong())
	reg.Register(launcher.SETTINGS, l.Settings())

	return &AQPico{dev, l}
}

// Run blocks until the launcher is exited or the window is closed.
func (a *AQPico) Run() error {
	err := a.launcher.Run()
	if errors.Is(err, window.ErrClosed) {
		return nil
	}
	return err
}

// prepare parses the flags and loads the configuration. done is true when
// nothing is left to do.
func prepare() (cfg *config.Config, done bool, err error) {
	flag.Parse()
	c, err := config.Load(*flagConfig)
	if err != nil {
		return nil, false, err
	}
	if c.Trace {
		util.EnableTrace()
	}
	if *flagWriteConfig {
		return &c, true, c.Save(*flagConfig)
	}
	return &c, false, nil
}

// startProfile starts CPU profiling when AQPICO_CPUPROFILE names a file.
func startProfile() (func(), error) {
	filename := os.Getenv("AQPICO_CPUPROFILE")
	if filename == "" {
		return func() {}, nil
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}
