package game

import (
	"github.com/diegok/pong/internal/vmath"
)

// MaxBounceAngle is the launch angle in degrees off a paddle's top or bottom edge
const MaxBounceAngle = 55.0

// Court holds the fixed playfield geometry
type Court struct {
	Width, Height float64
	// MidToSideAngle is the angle at the court center between the rays to
	// the top-right and bottom-right corners. It bounds the launch cone.
	MidToSideAngle float64
}

func NewCourt(width, height int) Court {
	w, h := float64(width), float64(height)
	mid := vmath.Vec2{X: w / 2, Y: h / 2}
	toTopRight := vmath.Vec2{X: w, Y: 0}.Sub(mid)
	toBottomRight := vmath.Vec2{X: w, Y: h}.Sub(mid)
	return Court{
		Width:          w,
		Height:         h,
		MidToSideAngle: vmath.AngleBetween(toTopRight, toBottomRight),
	}
}

func (c Court) Center() vmath.Vec2 {
	return vmath.Vec2{X: c.Width / 2, Y: c.Height / 2}
}

// Outcome is the scoring result of one ball update
type Outcome int

const (
	NoScore Outcome = iota
	LeftScored
	RightScored
)

func (o Outcome) String() string {
	switch o {
	case LeftScored:
		return "left scored"
	case RightScored:
		return "right scored"
	default:
		return "no score"
	}
}

// Scorer returns the side that earned the point; ok is false for NoScore
func (o Outcome) Scorer() (side Side, ok bool) {
	switch o {
	case LeftScored:
		return SideLeft, true
	case RightScored:
		return SideRight, true
	}
	return SideLeft, false
}

// BallEvents describes what happened to the ball during one update.
// Side effects such as sounds are left to the caller.
type BallEvents struct {
	Outcome    Outcome
	WallBounce bool
	PaddleHit  bool
	HitSide    Side // Valid when PaddleHit is set
}

// UpdateBall advances the ball and resolves scoring, wall bounces and paddle
// hits, in that priority. A score resets the ball before returning.
func UpdateBall(b *Ball, c Court, left, right *Paddle, dt float64, rng Rand) BallEvents {
	b.Advance(dt)

	if b.Left() > c.Width {
		b.Reset(c, rng)
		return BallEvents{Outcome: LeftScored}
	}
	if b.Right() < 0 {
		b.Reset(c, rng)
		return BallEvents{Outcome: RightScored}
	}

	var ev BallEvents
	switch {
	case b.Bottom() >= c.Height || b.Top() <= 0:
		b.BounceVertical()
		ev.WallBounce = true
	case BallPaddleCollision(left, b):
		b.BounceOffPaddle(left)
		ev.PaddleHit, ev.HitSide = true, SideLeft
	case BallPaddleCollision(right, b):
		b.BounceOffPaddle(right)
		ev.PaddleHit, ev.HitSide = true, SideRight
	}
	return ev
}

// BallPaddleCollision uses the closest point on the paddle to the ball center
func BallPaddleCollision(p *Paddle, b *Ball) bool {
	return vmath.CircleRectOverlap(b.Pos, b.Radius, p.Rect)
}

// BounceOffPaddle sends the ball away from p at an angle given by where it
// struck: the top edge maps to -MaxBounceAngle, the bottom to +MaxBounceAngle.
// The mapping is not clamped, so hits beyond the paddle ends go steeper.
func (b *Ball) BounceOffPaddle(p *Paddle) {
	deg := vmath.MapRange(0, p.Rect.H, -MaxBounceAngle, MaxBounceAngle, b.Pos.Y-p.Rect.Y)
	dir := vmath.FromAngle(vmath.Radians(deg))
	if p.Side == SideRight {
		dir.X = -dir.X
	}
	b.Direction = dir
	b.SpeedUp()
}
