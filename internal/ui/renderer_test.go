package ui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/hud"
	"github.com/diegok/pong/internal/vmath"
)

func newTestRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen, *game.Session) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)

	s := game.NewSession(game.DefaultConfig(), rand.New(rand.NewSource(3)))
	return NewRenderer(NewScreen(sim), s.Court), sim, s
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func rowText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(sim, x, y))
	}
	return b.String()
}

func TestRenderer_Playing(t *testing.T) {
	r, sim, s := newTestRenderer(t, 80, 24)

	action := r.Render(s, 0, 0, true)

	if action != game.PopupNone {
		t.Errorf("expected no popup action while playing, got %v", action)
	}
	v := r.viewport()
	bx, by := v.toCell(s.Ball.Pos)
	if got := runeAt(sim, bx, by); got != BallChar {
		t.Errorf("expected ball at (%d,%d), got %q", bx, by, got)
	}
	leftAt, rightAt := r.layout.ScoreAnchors(1 / v.sx)
	for _, at := range []vmath.Vec2{leftAt, rightAt} {
		x, y := v.toCell(at)
		if got := runeAt(sim, x, y); got != '0' {
			t.Errorf("expected score 0 at (%d,%d), got %q", x, y, got)
		}
	}
	for _, p := range []*game.Paddle{s.Left, s.Right} {
		x, y, _, _ := v.cover(p.Rect)
		if got := runeAt(sim, x, y); got != PaddleChar {
			t.Errorf("expected %v paddle at (%d,%d), got %q", p.Side, x, y, got)
		}
	}
	if strings.Contains(rowText(sim, 9), hud.WinnerText(game.SideLeft)) {
		t.Error("winner text shown while playing")
	}
}

func TestRenderer_DrawsHalfCourt(t *testing.T) {
	r, sim, s := newTestRenderer(t, 80, 24)

	r.Render(s, 0, 0, false)

	x, _, _, _ := r.viewport().cover(r.dashes[0])
	if got := runeAt(sim, x, 0); got != LineChar {
		t.Errorf("expected center line at column %d, got %q", x, got)
	}
}

func gameOverSession(s *game.Session) {
	s.LeftScore = s.MaxScore
	s.Frame(0, game.Controls{}, game.PopupNone)
}

func TestRenderer_PopupClick(t *testing.T) {
	tests := []struct {
		name    string
		button  func(p hud.Popup) vmath.Rect
		clicked bool
		want    game.PopupAction
	}{
		{"reset", func(p hud.Popup) vmath.Rect { return p.Reset }, true, game.PopupReset},
		{"quit", func(p hud.Popup) vmath.Rect { return p.Quit }, true, game.PopupQuit},
		{"hover only", func(p hud.Popup) vmath.Rect { return p.Quit }, false, game.PopupNone},
		{"outside", func(p hud.Popup) vmath.Rect { return vmath.Rect{W: 20, H: 20} }, true, game.PopupNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, s := newTestRenderer(t, 120, 60)
			gameOverSession(s)

			x, y := r.viewport().toCell(tt.button(r.popup).Center())

			if got := r.Render(s, x, y, tt.clicked); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRenderer_PopupShowsWinner(t *testing.T) {
	r, sim, s := newTestRenderer(t, 120, 60)
	gameOverSession(s)

	r.Render(s, 0, 0, false)

	_, fy, _, _ := r.viewport().cover(r.popup.Frame)
	if row := rowText(sim, fy-1); !strings.Contains(row, "LEFT WINS") {
		t.Errorf("expected winner text above popup, got %q", row)
	}
	_, by := r.viewport().toCell(r.popup.Reset.Center())
	if row := rowText(sim, by); !strings.Contains(row, hud.ResetLabel) {
		t.Errorf("expected reset label on row %d, got %q", by, row)
	}
}

func TestBlendOver(t *testing.T) {
	got := blendOver(hud.CourtLine, hud.Background)
	if want := tcell.NewRGBColor(141, 141, 141); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	opaque := blendOver(hud.Button, hud.Background)
	if want := tcell.NewRGBColor(200, 200, 200); opaque != want {
		t.Errorf("expected opaque colour unchanged, got %v", opaque)
	}
}
