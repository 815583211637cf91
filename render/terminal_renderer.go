package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mecs/game"
)

// Box drawing runes for the board frame
const (
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
	borderHorizontal  = '─'
	borderVertical    = '│'
)

// Text lines drawn once the game ends
const (
	GameOverText = "Game Over!"
	ExitHintText = "Press any key to exit..."
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	gameX  int // Board origin, top-left border corner
	gameY  int

	defaultStyle tcell.Style
	borderStyle  tcell.Style
	textStyle    tcell.Style
}

// NewTerminalRenderer creates a renderer drawing the board at the screen origin
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:       screen,
		defaultStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		borderStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		textStyle:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// RenderFrame draws the border, the board and the score, then shows the screen
func (r *TerminalRenderer) RenderFrame(w *game.World) {
	r.screen.Clear()
	r.drawBorder(w.Width, w.Height)
	r.drawBoard(w)
	r.drawText(0, w.Height+2, fmt.Sprintf("Score: %d", w.Score))
	r.screen.Show()
}

// RenderGameOver draws the final frame followed by the game over message
func (r *TerminalRenderer) RenderGameOver(w *game.World) {
	r.screen.Clear()
	r.drawBorder(w.Width, w.Height)
	r.drawBoard(w)
	r.drawText(0, w.Height+2, fmt.Sprintf("Score: %d", w.Score))
	r.drawText(0, w.Height+3, GameOverText)
	r.drawText(0, w.Height+4, ExitHintText)
	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(width, height int) {
	x0, y0 := r.gameX, r.gameY
	x1, y1 := x0+width+1, y0+height+1

	r.screen.SetContent(x0, y0, borderTopLeft, nil, r.borderStyle)
	r.screen.SetContent(x1, y0, borderTopRight, nil, r.borderStyle)
	r.screen.SetContent(x0, y1, borderBottomLeft, nil, r.borderStyle)
	r.screen.SetContent(x1, y1, borderBottomRight, nil, r.borderStyle)
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, borderHorizontal, nil, r.borderStyle)
		r.screen.SetContent(x, y1, borderHorizontal, nil, r.borderStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, borderVertical, nil, r.borderStyle)
		r.screen.SetContent(x1, y, borderVertical, nil, r.borderStyle)
	}
}

// drawBoard paints the background then every on-board drawable in its own color
func (r *TerminalRenderer) drawBoard(w *game.World) {
	ox, oy := r.gameX+1, r.gameY+1
	grid := Grid(w)
	for y, row := range grid {
		for x, ch := range row {
			r.screen.SetContent(ox+x, oy+y, ch, nil, r.defaultStyle)
		}
	}

	c := w.Component
	for e := range w.Query().With(c.Drawable).With(c.Position).Iter() {
		p, _ := c.Position.Get(e)
		if !w.InBounds(p) {
			continue
		}
		d, _ := c.Drawable.Get(e)
		r.screen.SetContent(ox+p.X, oy+p.Y, d.Symbol, nil, tcell.StyleDefault.Foreground(d.Color))
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(r.gameX+x+i, r.gameY+y, ch, nil, r.textStyle)
	}
}
