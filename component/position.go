package component

// PositionComponent is a board cell
type PositionComponent struct {
	X, Y int
}

// Equal reports whether both positions name the same cell
func (p PositionComponent) Equal(o PositionComponent) bool {
	return p.X == o.X && p.Y == o.Y
}

// Add returns p shifted by (dx, dy)
func (p PositionComponent) Add(dx, dy int) PositionComponent {
	return PositionComponent{X: p.X + dx, Y: p.Y + dy}
}
