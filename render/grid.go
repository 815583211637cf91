package render

import (
	"github.com/lixenwraith/mecs/game"
	"github.com/lixenwraith/mecs/parameter"
)

// Grid rasterizes the board into rows of runes
// Empty cells hold GlyphEmpty; off-board drawables are skipped; a higher entity id wins a shared cell
func Grid(w *game.World) [][]rune {
	grid := make([][]rune, w.Height)
	for y := range grid {
		row := make([]rune, w.Width)
		for x := range row {
			row[x] = parameter.GlyphEmpty
		}
		grid[y] = row
	}

	c := w.Component
	for e := range w.Query().With(c.Drawable).With(c.Position).Iter() {
		p, _ := c.Position.Get(e)
		if !w.InBounds(p) {
			continue
		}
		d, _ := c.Drawable.Get(e)
		grid[p.Y][p.X] = d.Symbol
	}
	return grid
}

// String renders the grid as newline-terminated rows
func String(w *game.World) string {
	grid := Grid(w)
	buf := make([]rune, 0, (w.Width+1)*w.Height)
	for _, row := range grid {
		buf = append(buf, row...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
