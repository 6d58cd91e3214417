// Package window runs a session in a desktop window through ebiten.
package window

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/hud"
	"github.com/diegok/pong/internal/vmath"
)

const Title = "Pong"

// glyphHeight is the pixel height of the bitmap face that text is scaled from
const glyphHeight = 13.0

// Stepper advances the session by one frame and reacts to what happened
type Stepper interface {
	Step(dt float64, ctl game.Controls, action game.PopupAction) game.FrameEvents
}

// Game adapts a session to ebiten's Update/Draw cycle. Update simulates and
// Draw presents the result, so each frame shows the state its input produced.
type Game struct {
	session *game.Session
	stepper Stepper
	done    <-chan struct{}
	tps     int

	layout hud.Layout
	popup  hud.Popup
	dashes []vmath.Rect
	face   *text.GoXFace

	// Input sources, replaced in tests
	keyPressed  func(ebiten.Key) bool
	cursor      func() (int, int)
	justClicked func() bool
}

// New creates a window game. Closing done ends it from outside, e.g. on a
// signal.
func New(s *game.Session, stepper Stepper, fps int, done <-chan struct{}) *Game {
	layout := hud.New(s.Court)
	return &Game{
		session:    s,
		stepper:    stepper,
		done:       done,
		tps:        fps,
		layout:     layout,
		popup:      layout.Popup(),
		dashes:     layout.HalfCourt(),
		face:       text.NewGoXFace(basicfont.Face7x13),
		keyPressed: ebiten.IsKeyPressed,
		cursor:     ebiten.CursorPosition,
		justClicked: func() bool {
			return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		},
	}
}

// Run opens the window and blocks until the session terminates or the
// window is closed
func Run(g *Game) error {
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(int(g.layout.Width), int(g.layout.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	select {
	case <-g.done:
		g.session.Terminate()
		return ebiten.Termination
	default:
	}
	if g.keyPressed(ebiten.KeyEscape) {
		g.session.Terminate()
		return ebiten.Termination
	}

	action := game.PopupNone
	if g.session.State() == game.StateGameOver {
		action = g.popup.Action(g.cursorPos(), g.justClicked())
	}

	g.stepper.Step(1/float64(g.tps), g.controls(), action)

	if g.session.State() == game.StateTerminated {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) controls() game.Controls {
	return game.Controls{
		LeftUp:    g.keyPressed(ebiten.KeyW),
		LeftDown:  g.keyPressed(ebiten.KeyS),
		RightUp:   g.keyPressed(ebiten.KeyArrowUp),
		RightDown: g.keyPressed(ebiten.KeyArrowDown),
	}
}

func (g *Game) cursorPos() vmath.Vec2 {
	x, y := g.cursor()
	return vmath.Vec2{X: float64(x), Y: float64(y)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(hud.Background)

	for _, d := range g.dashes {
		fillRect(screen, d, hud.CourtLine)
	}
	fillRect(screen, g.session.Left.Rect, hud.Foreground)
	fillRect(screen, g.session.Right.Rect, hud.Foreground)

	b := g.session.Ball
	vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), hud.Foreground, true)

	g.drawScore(screen)

	if g.session.State() == game.StateGameOver {
		g.drawPopup(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.layout.Width), int(g.layout.Height)
}

func fillRect(dst *ebiten.Image, r vmath.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// textWidth measures s at the given pixel size
func (g *Game) textWidth(s string, size float64) float64 {
	return text.Advance(s, g.face) * size / glyphHeight
}

func (g *Game) drawText(dst *ebiten.Image, s string, at vmath.Vec2, size float64, c color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawScore(dst *ebiten.Image) {
	leftText := strconv.Itoa(g.session.LeftScore)
	rightText := strconv.Itoa(g.session.RightScore)
	leftAt, rightAt := g.layout.ScoreAnchors(g.textWidth(rightText, hud.ScoreFontSize))
	g.drawText(dst, leftText, leftAt, hud.ScoreFontSize, hud.ScoreText)
	g.drawText(dst, rightText, rightAt, hud.ScoreFontSize, hud.ScoreText)
}

func (g *Game) drawPopup(dst *ebiten.Image) {
	fillRect(dst, g.popup.Frame, hud.PopupFill)

	quitColor, resetColor := g.popup.ButtonColors(g.cursorPos())
	g.drawButton(dst, g.popup.Quit, hud.QuitLabel, quitColor)
	g.drawButton(dst, g.popup.Reset, hud.ResetLabel, resetColor)

	winner := hud.WinnerText(g.session.Winner())
	g.drawText(dst, winner, g.labelOrigin(g.popup.Frame, winner, -hud.PopupFontSize*1.5), hud.PopupFontSize, hud.Foreground)
}

func (g *Game) drawButton(dst *ebiten.Image, r vmath.Rect, label string, fill color.Color) {
	fillRect(dst, r, fill)
	c := r.Center()
	at := vmath.Vec2{
		X: c.X - g.textWidth(label, hud.PopupFontSize)/2,
		Y: c.Y - hud.PopupFontSize/2,
	}
	g.drawText(dst, label, at, hud.PopupFontSize, hud.ButtonText)
}

// labelOrigin centers s horizontally over r, offset vertically from its top
func (g *Game) labelOrigin(r vmath.Rect, s string, dy float64) vmath.Vec2 {
	return vmath.Vec2{
		X: r.Center().X - g.textWidth(s, hud.PopupFontSize)/2,
		Y: r.Y + dy,
	}
}
