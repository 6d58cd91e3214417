// Package hud lays out the court markings, scores and end-of-game popup in
// court coordinates so every frontend draws and hit-tests the same shapes.
package hud

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/vmath"
)

const (
	ScoreFontSize = 50.0
	PopupFontSize = 22.0
	ScoreY        = 30.0

	dashHeight = 30.0
	dashWidth  = 4.0
	dashGap    = dashHeight * 0.45

	ResetLabel = "Reset"
	QuitLabel  = "Quit"
)

var (
	Background  = color.NRGBA{0, 0, 0, 255}
	Foreground  = color.NRGBA{245, 245, 245, 255}
	CourtLine   = color.NRGBA{200, 200, 200, 180}
	ScoreText   = color.NRGBA{200, 200, 200, 190}
	PopupFill   = color.NRGBA{80, 80, 80, 255}
	Button      = color.NRGBA{200, 200, 200, 255}
	ButtonHover = color.NRGBA{130, 130, 130, 255}
	ButtonText  = color.NRGBA{0, 0, 0, 255}
)

// Layout computes HUD geometry for a court of the given size
type Layout struct {
	Width, Height float64
}

func New(c game.Court) Layout {
	return Layout{Width: c.Width, Height: c.Height}
}

// HalfCourt returns the dashes of the center line, top to bottom
func (l Layout) HalfCourt() []vmath.Rect {
	var dashes []vmath.Rect
	for y := 0.0; y < l.Height; y += dashHeight + dashGap {
		dashes = append(dashes, vmath.Rect{
			X: l.Width/2 - dashWidth/2,
			Y: y,
			W: dashWidth,
			H: dashHeight,
		})
	}
	return dashes
}

// ScoreAnchors returns the top-left text positions of both scores. The right
// score is right-aligned against a margin mirroring the left one, so the
// caller supplies its rendered width.
func (l Layout) ScoreAnchors(rightTextWidth float64) (left, right vmath.Vec2) {
	leftX := float64(int(l.Width) / 5)
	left = vmath.Vec2{X: leftX, Y: ScoreY}
	right = vmath.Vec2{X: l.Width - leftX - rightTextWidth, Y: ScoreY}
	return left, right
}

// Popup is the end-of-game dialog with its two buttons
type Popup struct {
	Frame vmath.Rect
	Quit  vmath.Rect
	Reset vmath.Rect
}

// Popup centers a dialog a fifth of the court in each dimension, with Quit
// stacked above Reset
func (l Layout) Popup() Popup {
	w, h := l.Width/5, l.Height/5
	frame := vmath.Rect{
		X: float64(int(l.Width)/2) - w/2,
		Y: float64(int(l.Height)/2) - h/2,
		W: w,
		H: h,
	}

	btnW, btnH := w*0.8, h/3
	quit := vmath.Rect{
		X: frame.X + w*0.1,
		Y: frame.Y + btnH*0.33,
		W: btnW,
		H: btnH,
	}
	reset := vmath.Rect{
		X: quit.X,
		Y: frame.Y + btnH*1.66,
		W: btnW,
		H: btnH,
	}
	return Popup{Frame: frame, Quit: quit, Reset: reset}
}

// Action resolves a cursor position and click into a popup action.
// Reset wins if the buttons ever overlap.
func (p Popup) Action(cursor vmath.Vec2, clicked bool) game.PopupAction {
	if !clicked {
		return game.PopupNone
	}
	if p.Reset.ContainsStrict(cursor) {
		return game.PopupReset
	}
	if p.Quit.ContainsStrict(cursor) {
		return game.PopupQuit
	}
	return game.PopupNone
}

// ButtonColors returns the quit and reset fills for the hover state
func (p Popup) ButtonColors(cursor vmath.Vec2) (quit, reset color.NRGBA) {
	quit, reset = Button, Button
	if p.Quit.ContainsStrict(cursor) {
		quit = ButtonHover
	}
	if p.Reset.ContainsStrict(cursor) {
		reset = ButtonHover
	}
	return quit, reset
}

// WinnerText announces the side that won
func WinnerText(side game.Side) string {
	return fmt.Sprintf("%s WINS", strings.ToUpper(side.String()))
}
