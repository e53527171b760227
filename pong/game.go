// Package pong is the two-paddle ball game of the device.
//
// A session starts on a prompt screen. X starts play, B shows the help
// screen. During play A/B move the left paddle and X/Y the right one;
// pressing X and Y together pauses. From the pause screen A resumes and B
// ends the session.
package pong

import (
	"math/rand"
	"time"

	"github.com/ushitora-anqou/aqpico/surface"
	"github.com/ushitora-anqou/aqpico/util"
)

type Game struct {
	surf    surface.Surface
	ticker  Ticker
	buttons Buttons
	cfg     Config
	board   *Board
	phase   Phase
}

type noButton struct{}

func (noButton) IsPressed() bool { return false }

// repeater is implemented by buttons whose auto-repeat can be tuned.
type repeater interface {
	SetRepeat(time.Duration)
}

func New(surf surface.Surface, ticker Ticker, buttons Buttons, cfg Config, rng *rand.Rand) *Game {
	for _, b := range []*Button{&buttons.LeftUp, &buttons.LeftDown, &buttons.RightUp, &buttons.RightDown} {
		if *b == nil {
			*b = noButton{}
		}
	}
	w, h := surf.Bounds()
	return &Game{
		surf:    surf,
		ticker:  ticker,
		buttons: buttons,
		cfg:     cfg,
		board:   NewBoard(w, h, cfg, rng),
		phase:   PreStart,
	}
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Ball() Ball {
	return g.board.Ball()
}

func (g *Game) Paddles() (int, int) {
	return g.board.Paddles()
}

func (g *Game) Scores() (int, int) {
	return g.board.Scores()
}

// Draw renders the board and presents it.
func (g *Game) Draw() error {
	g.drawBoard()
	return g.surf.Present()
}

func (g *Game) setPhase(p Phase) {
	if g.phase != p {
		util.Trace("pong: %v -> %v", g.phase, p)
		g.phase = p
	}
}

// RunSession blocks until the player leaves through the pause screen.
func (g *Game) RunSession() error {
	if err := g.reset(); err != nil {
		return err
	}
	for {
		switch g.phase {
		case Active:
			exit, err := g.tick()
			if err != nil {
				return err
			}
			if exit {
				return nil
			}
		default:
			var err error
			switch {
			case g.buttons.RightUp.IsPressed():
				err = g.start()
			case g.buttons.LeftDown.IsPressed():
				err = g.help()
			}
			if err != nil {
				return err
			}
		}
		if err := g.ticker.Wait(); err != nil {
			return err
		}
	}
}

// reset shows the start prompt with the ball served from the centre.
// Scores are kept.
func (g *Game) reset() error {
	g.setPhase(PreStart)
	g.board.resetBall()
	g.drawBoard()
	return g.drawPrompts(MSG_START, MSG_HELP)
}

func (g *Game) start() error {
	g.setPhase(Active)
	for _, b := range []Button{g.buttons.LeftUp, g.buttons.LeftDown, g.buttons.RightUp, g.buttons.RightDown} {
		if r, ok := b.(repeater); ok {
			r.SetRepeat(PLAY_REPEAT)
		}
	}

	g.drawBoard()
	g.drawCentered(MSG_PLAY, g.board.maxY-30, PROMPT_SIZE)
	if err := g.surf.Present(); err != nil {
		return err
	}
	for i := 0; i < g.cfg.StartDelayTicks; i++ {
		if err := g.ticker.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) help() error {
	g.setPhase(Help)
	if err := g.drawHelp(); err != nil {
		return err
	}
	for !g.buttons.LeftDown.IsPressed() {
		if err := g.ticker.Wait(); err != nil {
			return err
		}
	}
	return g.reset()
}

// tick runs one tick of play and reports whether the player chose to end
// the session.
func (g *Game) tick() (bool, error) {
	var in Input
	if g.buttons.RightUp.IsPressed() {
		if g.buttons.RightDown.IsPressed() {
			return g.pause()
		}
		in.RightUp = true
	} else {
		in.RightDown = g.buttons.RightDown.IsPressed()
	}
	if g.buttons.LeftUp.IsPressed() {
		in.LeftUp = true
	} else {
		in.LeftDown = g.buttons.LeftDown.IsPressed()
	}

	g.board.Step(in)
	return false, g.Draw()
}

// pause freezes the board until the player resumes or exits.
func (g *Game) pause() (bool, error) {
	g.setPhase(Paused)
	if err := g.drawPrompts(MSG_RESUME, MSG_EXIT); err != nil {
		return false, err
	}
	for {
		if err := g.ticker.Wait(); err != nil {
			return false, err
		}
		switch {
		case g.buttons.LeftUp.IsPressed():
			g.setPhase(Active)
			return false, g.Draw()
		case g.buttons.LeftDown.IsPressed():
			util.Trace("pong: session over, score %d-%d", g.board.scoreLeft, g.board.scoreRight)
			return true, nil
		}
	}
}
