package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMovement  = 10 // Followers trail, then heads advance
	PriorityEating    = 20 // After movement so the new head cell is checked
	PriorityCollision = 30 // Last, sees final positions of the tick
)
