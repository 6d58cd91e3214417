package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/hud"
	"github.com/diegok/pong/internal/vmath"
)

const (
	BallChar   = '\u25CF' // ●
	PaddleChar = '\u2588' // █
	LineChar   = '\u2502' // │
)

// Renderer draws a session scaled from court coordinates into terminal cells
type Renderer struct {
	screen *Screen
	layout hud.Layout
	popup  hud.Popup
	dashes []vmath.Rect

	bg, paddle, ball, line, score, winner tcell.Style
	popupFill, button, buttonHover        tcell.Style
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, court game.Court) *Renderer {
	layout := hud.New(court)
	bg := tcell.StyleDefault.Background(toTcell(hud.Background))
	return &Renderer{
		screen:      screen,
		layout:      layout,
		popup:       layout.Popup(),
		dashes:      layout.HalfCourt(),
		bg:          bg,
		paddle:      bg.Foreground(toTcell(hud.Foreground)),
		ball:        bg.Foreground(toTcell(hud.Foreground)),
		line:        bg.Foreground(blendOver(hud.CourtLine, hud.Background)),
		score:       bg.Foreground(blendOver(hud.ScoreText, hud.Background)).Bold(true),
		winner:      bg.Foreground(toTcell(hud.Foreground)).Bold(true),
		popupFill:   bg.Background(toTcell(hud.PopupFill)),
		button:      tcell.StyleDefault.Background(toTcell(hud.Button)).Foreground(toTcell(hud.ButtonText)),
		buttonHover: tcell.StyleDefault.Background(toTcell(hud.ButtonHover)).Foreground(toTcell(hud.ButtonText)),
	}
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blendOver flattens a translucent colour onto an opaque background,
// since terminal cells have no alpha
func blendOver(c, bg color.NRGBA) tcell.Color {
	fg, _ := colorful.MakeColor(color.NRGBA{c.R, c.G, c.B, 255})
	base, _ := colorful.MakeColor(bg)
	r, g, b := base.BlendRgb(fg, float64(c.A)/255).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// viewport maps court coordinates onto the current terminal size
type viewport struct {
	w, h   int
	sx, sy float64
}

func (r *Renderer) viewport() viewport {
	w, h := r.screen.Size()
	return viewport{
		w:  w,
		h:  h,
		sx: float64(w) / r.layout.Width,
		sy: float64(h) / r.layout.Height,
	}
}

func (v viewport) toCell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// cellCenter returns the court point at the middle of a cell
func (v viewport) cellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: (float64(x) + 0.5) / v.sx, Y: (float64(y) + 0.5) / v.sy}
}

// cover returns the cells touched by rect, at least one in each direction
func (v viewport) cover(rect vmath.Rect) (x, y, w, h int) {
	x, y = v.toCell(vmath.Vec2{X: rect.X, Y: rect.Y})
	x1 := int(math.Ceil(rect.Right() * v.sx))
	y1 := int(math.Ceil(rect.Bottom() * v.sy))
	return x, y, max(x1-x, 1), max(y1-y, 1)
}

// fillCenters fills the cells whose centers lie inside rect, matching what
// the popup hit test accepts
func (r *Renderer) fillCenters(v viewport, rect vmath.Rect, style tcell.Style) {
	x0, y0, w, h := v.cover(rect)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if rect.ContainsStrict(v.cellCenter(x, y)) {
				r.screen.SetCell(x, y, style, ' ')
			}
		}
	}
}

// Render draws one frame. While the game is over it also resolves the click
// against the popup drawn in this frame and returns the chosen action.
func (r *Renderer) Render(s *game.Session, cursorX, cursorY int, clicked bool) game.PopupAction {
	v := r.viewport()
	r.screen.Fill(r.bg)

	r.drawHalfCourt(v)
	r.drawPaddle(v, s.Left)
	r.drawPaddle(v, s.Right)
	bx, by := v.toCell(s.Ball.Pos)
	r.screen.SetCell(bx, by, r.ball, BallChar)
	r.drawScore(v, s.LeftScore, s.RightScore)

	action := game.PopupNone
	if s.State() == game.StateGameOver {
		cursor := v.cellCenter(cursorX, cursorY)
		action = r.popup.Action(cursor, clicked)
		r.drawPopup(v, cursor, s.Winner())
	}

	r.screen.Show()
	return action
}

func (r *Renderer) drawHalfCourt(v viewport) {
	for _, d := range r.dashes {
		x, y, _, h := v.cover(d)
		for dy := 0; dy < h; dy++ {
			r.screen.SetCell(x, y+dy, r.line, LineChar)
		}
	}
}

func (r *Renderer) drawPaddle(v viewport, p *game.Paddle) {
	x, y, w, h := v.cover(p.Rect)
	r.screen.FillRect(x, y, w, h, r.paddle, PaddleChar)
}

func (r *Renderer) drawScore(v viewport, left, right int) {
	leftText, rightText := strconv.Itoa(left), strconv.Itoa(right)
	// One cell per digit, measured back in court units for right alignment
	leftAt, rightAt := r.layout.ScoreAnchors(float64(len(rightText)) / v.sx)

	x, y := v.toCell(leftAt)
	r.screen.DrawText(x, y, leftText, r.score)
	x, y = v.toCell(rightAt)
	r.screen.DrawText(x, y, rightText, r.score)
}

func (r *Renderer) drawPopup(v viewport, cursor vmath.Vec2, winner game.Side) {
	r.fillCenters(v, r.popup.Frame, r.popupFill)

	quitColor, resetColor := r.popup.ButtonColors(cursor)
	r.drawButton(v, r.popup.Quit, hud.QuitLabel, quitColor)
	r.drawButton(v, r.popup.Reset, hud.ResetLabel, resetColor)

	text := hud.WinnerText(winner)
	fx, fy, fw, _ := v.cover(r.popup.Frame)
	r.screen.DrawText(fx+(fw-len(text))/2, fy-1, text, r.winner)
}

func (r *Renderer) drawButton(v viewport, rect vmath.Rect, label string, fill color.NRGBA) {
	style := r.button
	if fill == hud.ButtonHover {
		style = r.buttonHover
	}
	r.fillCenters(v, rect, style)

	cx, cy := v.toCell(rect.Center())
	r.screen.DrawText(cx-len(label)/2, cy, label, style)
}
