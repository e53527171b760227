package pong

import (
	"image/color"

	"github.com/ushitora-anqou/aqpico/surface"
)

type Phase int

const (
	PreStart Phase = iota
	Active
	Paused
	Help
)

func (p Phase) String() string {
	switch p {
	case PreStart:
		return "PreStart"
	case Active:
		return "Active"
	case Paused:
		return "Paused"
	case Help:
		return "Help"
	}
	return "Unknown"
}

type Ball struct {
	X, Y           int
	Radius         int
	SpeedX, SpeedY int
}

// Input is the paddle movement requested for one tick. Up wins over down.
type Input struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

type Button interface {
	IsPressed() bool
}

type Ticker interface {
	Wait() error
}

type Buttons struct {
	LeftUp    Button
	LeftDown  Button
	RightUp   Button
	RightDown Button
}

type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
	Prompt     color.RGBA
}

type Config struct {
	BallRadius int
	// BallSpeed is the per-axis speed in pixels per tick.
	BallSpeed int
	// PaddleFraction is the paddle height relative to the screen height.
	PaddleFraction float64
	MoveDelta      int
	ScoreWidth     int
	ScoreSize      int
	// StartDelayTicks is how long the start banner stays up.
	StartDelayTicks int
	Palette         Palette
}

func DefaultConfig() Config {
	return Config{
		BallRadius:      5,
		BallSpeed:       1,
		PaddleFraction:  0.37,
		MoveDelta:       4,
		ScoreWidth:      70,
		ScoreSize:       2,
		StartDelayTicks: 100,
		Palette: Palette{
			Background: surface.RGB(0, 0, 0),
			Foreground: surface.RGB(255, 255, 255),
			Prompt:     surface.RGB(0, 255, 0),
		},
	}
}
