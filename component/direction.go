package component

// DirectionComponent is a heading on the board
type DirectionComponent uint8

const (
	DirectionUp DirectionComponent = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Opposite returns the reverse heading
func (d DirectionComponent) Opposite() DirectionComponent {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

// Delta returns the per-tick cell offset; y grows downward
func (d DirectionComponent) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d DirectionComponent) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}
