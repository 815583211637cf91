package component

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []DirectionComponent{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		assert.Equal(t, d.Opposite().Opposite(), d)
		assert.Assert(t, d.Opposite() != d)

		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, dx+ox, 0, d.String())
		assert.Equal(t, dy+oy, 0, d.String())
	}
}

func TestPositionEqualAdd(t *testing.T) {
	p := PositionComponent{X: 2, Y: 3}
	assert.Assert(t, p.Equal(PositionComponent{X: 2, Y: 3}))
	assert.Assert(t, !p.Equal(PositionComponent{X: 3, Y: 2}))
	assert.Equal(t, p.Add(-1, 1), PositionComponent{X: 1, Y: 4})
}
