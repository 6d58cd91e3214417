package game

import "github.com/diegok/pong/internal/vmath"

const (
	PaddleSpeed     = 1300.0 // Court units per second
	PaddleWidth     = 10.0
	PaddleGap       = 16.0 // Distance from the court edge
	paddleHeightDiv = 13.0
)

// Side identifies a player's half of the court
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Direction is a vertical paddle movement request
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = -1
	DirDown Direction = 1
)

type Paddle struct {
	Rect vmath.Rect
	Side Side
}

// NewPaddle places a paddle near its court edge, vertically centered
func NewPaddle(side Side, courtW, courtH float64) *Paddle {
	height := courtH / paddleHeightDiv
	x := PaddleGap
	if side == SideRight {
		x = courtW - PaddleWidth - PaddleGap
	}
	return &Paddle{
		Rect: vmath.Rect{
			X: x,
			Y: courtH/2 - height/2,
			W: PaddleWidth,
			H: height,
		},
		Side: side,
	}
}

// Move shifts the paddle by PaddleSpeed*dt and keeps it inside the court
func (p *Paddle) Move(dir Direction, dt, courtH float64) {
	if dir == DirNone {
		return
	}
	p.Rect.Y += float64(dir) * PaddleSpeed * dt
	p.Rect.Y = vmath.Clamp(p.Rect.Y, 0, courtH-p.Rect.H)
}
