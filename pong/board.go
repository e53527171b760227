package pong

import (
	"math/rand"

	"github.com/ushitora-anqou/aqpico/util"
)

// Board is the playfield: two paddles, the ball and the scores.
type Board struct {
	cfg              Config
	maxX, maxY       int
	centerX, centerY int
	barHeight        int
	rng              *rand.Rand

	ball        Ball
	left, right int
	scoreLeft   int
	scoreRight  int
}

func NewBoard(width, height int, cfg Config, rng *rand.Rand) *Board {
	b := &Board{
		cfg:     cfg,
		maxX:    width - 1,
		maxY:    height - 1,
		centerX: width / 2,
		centerY: height / 2,
		rng:     rng,
	}
	b.barHeight = int(float64(b.maxY) * cfg.PaddleFraction)
	b.resetBall()
	b.centerPaddles()
	return b
}

func (b *Board) Ball() Ball {
	return b.ball
}

// Paddles returns the top row of the left and right paddles.
func (b *Board) Paddles() (int, int) {
	return b.left, b.right
}

func (b *Board) Scores() (int, int) {
	return b.scoreLeft, b.scoreRight
}

func (b *Board) BarHeight() int {
	return b.barHeight
}

// resetBall puts the ball back in the centre heading down-right.
func (b *Board) resetBall() {
	b.ball = Ball{
		X:      b.centerX,
		Y:      b.centerY,
		Radius: b.cfg.BallRadius,
		SpeedX: b.cfg.BallSpeed,
		SpeedY: b.cfg.BallSpeed,
	}
}

func (b *Board) centerPaddles() {
	top := b.clampPaddle(b.centerY - b.barHeight/2)
	b.left, b.right = top, top
}

func (b *Board) clampPaddle(top int) int {
	return util.Clamp(top, b.cfg.MoveDelta, b.maxY-b.barHeight-b.cfg.MoveDelta)
}

func (b *Board) movePaddle(top int, up, down bool) int {
	switch {
	case up:
		return b.clampPaddle(top - b.cfg.MoveDelta)
	case down:
		return b.clampPaddle(top + b.cfg.MoveDelta)
	}
	return top
}

func (b *Board) randomSpeed() int {
	if b.rng.Intn(2) == 0 {
		return -b.cfg.BallSpeed
	}
	return b.cfg.BallSpeed
}

// Step advances the board by one tick and reports whether a round ended.
func (b *Board) Step(in Input) bool {
	b.left = b.movePaddle(b.left, in.LeftUp, in.LeftDown)
	b.right = b.movePaddle(b.right, in.RightUp, in.RightDown)

	ball := &b.ball
	ball.X += ball.SpeedX
	ball.Y += ball.SpeedY

	switch {
	case ball.X+ball.Radius > b.maxX:
		b.newRound(true)
		return true
	case ball.X-ball.Radius < 0:
		b.newRound(false)
		return true
	}

	if (ball.Y+ball.Radius > b.maxY && ball.SpeedY > 0) || (ball.Y-ball.Radius < 0 && ball.SpeedY < 0) {
		ball.SpeedY = -ball.SpeedY
	}

	// Only the paddle the ball is heading for can return it.
	switch {
	case ball.SpeedX < 0:
		if ball.X-ball.Radius < PADDLE_INSET+PADDLE_WIDTH && b.onPaddle(b.left) {
			ball.SpeedX = -ball.SpeedX
		}
	case ball.SpeedX > 0:
		if ball.X+ball.Radius > b.maxX-PADDLE_INSET-PADDLE_WIDTH && b.onPaddle(b.right) {
			ball.SpeedX = -ball.SpeedX
		}
	}
	return false
}

func (b *Board) onPaddle(top int) bool {
	return top <= b.ball.Y && b.ball.Y < top+b.barHeight
}

// newRound scores the point and serves again from the centre in a random
// diagonal.
func (b *Board) newRound(leftScored bool) {
	if leftScored {
		b.scoreLeft++
	} else {
		b.scoreRight++
	}
	util.Trace("pong: round over, score %d-%d", b.scoreLeft, b.scoreRight)

	b.ball.X, b.ball.Y = b.centerX, b.centerY
	b.ball.SpeedX = b.randomSpeed()
	b.ball.SpeedY = b.randomSpeed()
	b.centerPaddles()
}
