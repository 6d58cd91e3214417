package app

import (
	"log/slog"

	"github.com/diegok/pong/internal/game"
)

// Sounds plays the game's sound effects
type Sounds interface {
	PaddleHit()
	Score()
}

// Driver advances a session and turns its events into sounds and log lines.
// Both frontends step the game through it.
type Driver struct {
	Session *game.Session
	Sounds  Sounds
	Log     *slog.Logger
}

func (d *Driver) Step(dt float64, ctl game.Controls, action game.PopupAction) game.FrameEvents {
	ev := d.Session.Frame(dt, ctl, action)
	s := d.Session

	if ev.Ball.PaddleHit {
		d.Sounds.PaddleHit()
		d.Log.Debug("paddle hit", "side", ev.Ball.HitSide, "speed", s.Ball.Speed, "tick", s.Tick)
	}
	if ev.Ball.WallBounce {
		d.Log.Debug("wall bounce", "y", s.Ball.Pos.Y, "tick", s.Tick)
	}
	if scorer, ok := ev.Ball.Outcome.Scorer(); ok {
		d.Sounds.Score()
		d.Log.Info("point", "side", scorer, "left", s.LeftScore, "right", s.RightScore)
	}

	switch {
	case ev.GameOver:
		d.Log.Info("game over", "winner", s.Winner(), "left", s.LeftScore, "right", s.RightScore)
	case ev.Restarted:
		d.Log.Info("game restarted")
	case ev.Quit:
		d.Log.Info("quit from popup")
	}

	return ev
}
