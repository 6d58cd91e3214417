package game

import (
	"github.com/diegok/pong/internal/vmath"
)

const (
	BallStartSpeed    = 500.0
	BallMaxSpeed      = 800.0
	BallSpeedIncrease = 40.0
	BallRadius        = 8.0
)

// Rand is the random source used for launch directions.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

type Ball struct {
	Pos           vmath.Vec2
	Radius        float64
	Direction     vmath.Vec2 // Always unit length
	Speed         float64
	StartSpeed    float64
	SpeedIncrease float64
	MaxSpeed      float64
}

func NewBall(c Court, rng Rand) *Ball {
	b := &Ball{
		Radius:        BallRadius,
		StartSpeed:    BallStartSpeed,
		SpeedIncrease: BallSpeedIncrease,
		MaxSpeed:      BallMaxSpeed,
	}
	b.Reset(c, rng)
	return b
}

// Reset places the ball at center at its start speed and picks a new launch direction
func (b *Ball) Reset(c Court, rng Rand) {
	b.Speed = b.StartSpeed
	b.Pos = c.Center()
	b.Direction = LaunchDirection(c.MidToSideAngle, rng)
}

// LaunchDirection picks a unit vector inside the launch cone, which spans
// midToSide radians centered on the horizontal axis. The horizontal sign is
// a separate coin flip.
func LaunchDirection(midToSide float64, rng Rand) vmath.Vec2 {
	angle := rng.Float64()*midToSide - midToSide/2
	dir := vmath.FromAngle(angle)
	if rng.Float64() < 0.5 {
		dir.X = -dir.X
	}
	return dir
}

// Advance moves the ball along its direction
func (b *Ball) Advance(dt float64) {
	b.Pos = b.Pos.Add(b.Direction.Scale(b.Speed * dt))
}

// SpeedUp adds SpeedIncrease without passing MaxSpeed
func (b *Ball) SpeedUp() {
	if b.Speed >= b.MaxSpeed {
		return
	}
	b.Speed += b.SpeedIncrease
	if b.Speed > b.MaxSpeed {
		b.Speed = b.MaxSpeed
	}
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.Direction.Y = -b.Direction.Y
}

func (b *Ball) Top() float64    { return b.Pos.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Pos.Y + b.Radius }
func (b *Ball) Left() float64   { return b.Pos.X - b.Radius }
func (b *Ball) Right() float64  { return b.Pos.X + b.Radius }
