package pong

import "strconv"

func (g *Game) drawBoard() {
	b := g.board
	pal := g.cfg.Palette
	g.surf.Clear(pal.Background)

	g.drawScores()

	// border
	g.surf.Line(0, 0, b.maxX, 0, pal.Foreground)
	g.surf.Line(0, b.maxY, b.maxX, b.maxY, pal.Foreground)
	g.surf.Line(0, 0, 0, b.maxY, pal.Foreground)
	g.surf.Line(b.maxX, 0, b.maxX, b.maxY, pal.Foreground)

	g.surf.Rectangle(PADDLE_INSET, b.left, PADDLE_WIDTH, b.barHeight, pal.Foreground)
	g.surf.Rectangle(b.maxX-PADDLE_INSET-PADDLE_WIDTH, b.right, PADDLE_WIDTH, b.barHeight, pal.Foreground)

	g.surf.Circle(b.ball.X, b.ball.Y, b.ball.Radius, pal.Foreground)
}

// drawScores puts a divider at the centre and each score inside its half
// of the score area.
func (g *Game) drawScores() {
	b := g.board
	size := g.cfg.ScoreSize
	fg := g.cfg.Palette.Foreground
	half := g.cfg.ScoreWidth / 2

	left := strconv.Itoa(b.scoreLeft)
	right := strconv.Itoa(b.scoreRight)
	dividerWidth := g.surf.MeasureText("|", size)

	g.surf.Text("|", b.centerX, SCORE_Y, 0, size, fg)
	g.surf.Text(left, b.centerX-half+dividerWidth, SCORE_Y, 0, size, fg)
	g.surf.Text(right, b.centerX+half-g.surf.MeasureText(right, size), SCORE_Y, 0, size, fg)
}

func (g *Game) drawCentered(s string, y, size int) {
	x := g.board.centerX - g.surf.MeasureText(s, size)/2
	g.surf.Text(s, x, y, 0, size, g.cfg.Palette.Prompt)
}

// drawPrompts shows two lines of instructions over the current board.
func (g *Game) drawPrompts(first, second string) error {
	g.drawCentered(first, g.board.maxY-60, PROMPT_SIZE)
	g.drawCentered(second, g.board.maxY-30, PROMPT_SIZE)
	return g.surf.Present()
}

func (g *Game) drawHelp() error {
	b := g.board
	g.surf.Clear(g.cfg.Palette.Background)
	g.drawCentered(MSG_HELP_TITLE, 4, PROMPT_SIZE)
	lineHeight := g.surf.TextHeight(HELP_SIZE)
	for i, line := range helpLines {
		g.surf.Text(line, 8, 36+i*lineHeight, b.maxX-16, HELP_SIZE, g.cfg.Palette.Foreground)
	}
	g.drawCentered(MSG_HELP_RETURN, b.maxY-lineHeight-4, HELP_SIZE)
	return g.surf.Present()
}
