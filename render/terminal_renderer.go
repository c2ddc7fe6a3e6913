package render

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/parameter"
)

const (
	ballRune  = '●'
	blockRune = '█'
	netRune   = '┊'

	// statusRows is reserved below the court
	statusRows = 1
)

// TerminalRenderer draws frames on a tcell screen
// Court units are scaled to the current screen size on every draw
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	normal Palette
	paused Palette
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		normal: NewPalette(0),
		paused: NewPalette(parameter.PausedDimFactor),
	}
}

// courtView maps court coordinates to screen cells
type courtView struct {
	cols, rows int
	sx, sy     float64
}

func newCourtView(width, height int) courtView {
	rows := max(height-statusRows, 1)
	cols := max(width, 1)
	return courtView{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / parameter.CourtWidth,
		sy:   float64(rows) / parameter.CourtHeight,
	}
}

// cellX maps a court x to a column, clamped into the view
func (v courtView) cellX(x float64) int {
	return clampInt(int(math.Floor(x*v.sx)), 0, v.cols-1)
}

func (v courtView) cellY(y float64) int {
	return clampInt(int(math.Floor(y*v.sy)), 0, v.rows-1)
}

// span maps [from, from+size) to an inclusive cell range of at least one cell
func span(from, size, scale float64, limit int) (int, int) {
	lo := int(math.Floor(from * scale))
	hi := int(math.Ceil((from+size)*scale)) - 1
	if hi < lo {
		hi = lo
	}
	return clampInt(lo, 0, limit-1), clampInt(hi, 0, limit-1)
}

// Draw renders one frame
func (r *TerminalRenderer) Draw(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := f.Snapshot
	pal := r.normal
	if snap.Match.Paused {
		pal = r.paused
	}

	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	view := newCourtView(width, height)
	courtStyle := tcell.StyleDefault.Background(pal.Court)

	r.drawCourt(view, courtStyle)
	r.drawNet(view, snap.Net, courtStyle.Foreground(pal.Net))
	r.drawScores(view, snap, courtStyle.Foreground(pal.Score).Bold(true))
	r.drawPaddle(view, snap.User, courtStyle.Foreground(pal.User))
	r.drawPaddle(view, snap.AI, courtStyle.Foreground(pal.AI))
	r.drawBall(view, snap.Ball, courtStyle.Foreground(pal.Ball))
	r.drawStatusBar(view, width, snap.Match, pal)

	if f.Banner != "" {
		r.drawBanner(view, f.Banner, pal)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawCourt(view courtView, style tcell.Style) {
	for y := 0; y < view.rows; y++ {
		for x := 0; x < view.cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawNet(view courtView, net component.Net, style tcell.Style) {
	x := view.cellX(net.X + net.Width/2)
	y0, y1 := span(net.Y, net.Height, view.sy, view.rows)
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x, y, netRune, nil, style)
	}
}

// drawScores places the scores at a quarter and three quarters of the width, a fifth down
func (r *TerminalRenderer) drawScores(view courtView, snap component.Snapshot, style tcell.Style) {
	y := view.cellY(parameter.CourtHeight / 5)
	r.drawCentered(view.cellX(parameter.CourtWidth/4), y, fmt.Sprint(snap.User.Score), style)
	r.drawCentered(view.cellX(3*parameter.CourtWidth/4), y, fmt.Sprint(snap.AI.Score), style)
}

// drawPaddle fills the cells covered by the paddle, clipped to the court
func (r *TerminalRenderer) drawPaddle(view courtView, p component.Paddle, style tcell.Style) {
	if p.Y+p.Height <= 0 || p.Y >= parameter.CourtHeight {
		return
	}
	x0, x1 := span(p.X, p.Width, view.sx, view.cols)
	y0, y1 := span(p.Y, p.Height, view.sy, view.rows)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, blockRune, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBall(view courtView, b component.Ball, style tcell.Style) {
	r.screen.SetContent(view.cellX(b.X), view.cellY(b.Y), ballRune, nil, style)
}

// drawStatusBar shows the key hints with state-dependent labels
func (r *TerminalRenderer) drawStatusBar(view courtView, width int, m component.Match, pal Palette) {
	y := view.rows
	style := tcell.StyleDefault.Foreground(pal.Text)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
	r.drawText(0, y, StatusLine(m), style)
}

// drawBanner draws a boxed announcement in the middle of the court
func (r *TerminalRenderer) drawBanner(view courtView, text string, pal Palette) {
	text = " " + text + " "
	w := runewidth.StringWidth(text)
	cx, cy := view.cols/2, view.rows/2
	x0 := cx - w/2 - 1

	box := tcell.StyleDefault.Foreground(pal.Text).Background(tcell.ColorBlack)
	border := strings.Repeat("─", w)
	r.drawText(x0, cy-1, "┌"+border+"┐", box)
	r.drawText(x0, cy, "│"+text+"│", box.Bold(true))
	r.drawText(x0, cy+1, "└"+border+"┘", box)
}

// drawCentered draws text centered on column cx
func (r *TerminalRenderer) drawCentered(cx, y int, text string, style tcell.Style) {
	r.drawText(cx-runewidth.StringWidth(text)/2, y, text, style)
}

// drawText writes text advancing by display width, wide runes occupy two cells
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

// StatusLine renders the key hints, labels follow the current state
func StatusLine(m component.Match) string {
	pause, mute := "Pause", "Mute"
	if m.Paused {
		pause = "Unpause"
	}
	if m.Muted {
		mute = "Unmute"
	}
	return fmt.Sprintf(" [p] %s  [m] %s  [r] Restart  [w] Game of %d  [q] Quit  ↑↓ Move",
		pause, mute, m.WinTarget)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
