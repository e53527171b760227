package pong

import "time"

const (
	PADDLE_INSET = 4
	PADDLE_WIDTH = 4
	SCORE_Y      = 7
	PROMPT_SIZE  = 3
	HELP_SIZE    = 2
)

// PLAY_REPEAT is the button repeat period during play: a held button moves
// its paddle on every tick.
const PLAY_REPEAT = time.Millisecond

const (
	MSG_START       = "Use X to begin"
	MSG_HELP        = "Use B for help"
	MSG_PLAY        = "PLAY BALL!"
	MSG_RESUME      = "Use A to resume"
	MSG_EXIT        = "Use B to exit"
	MSG_HELP_TITLE  = "PONG"
	MSG_HELP_RETURN = "Use B to return"
)

var helpLines = []string{
	"Left: A up, B down",
	"Right: X up, Y down",
	"X+Y together: pause",
}
