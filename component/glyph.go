package component

import "github.com/gdamore/tcell/v2"

// DrawableComponent is the character and color an entity renders as
type DrawableComponent struct {
	Symbol rune
	Color  tcell.Color
}
