package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/dodge/core"
)

func TestSensorEnteredExited(t *testing.T) {
	s := NewSensor()
	s.Previous[core.Entity(1)] = Contact{}
	s.Previous[core.Entity(2)] = Contact{}
	s.Contacts[core.Entity(2)] = Contact{}
	s.Contacts[core.Entity(5)] = Contact{}
	s.Contacts[core.Entity(3)] = Contact{}

	assert.Equal(t, []core.Entity{2, 3, 5}, s.ContactEntities())
	assert.Equal(t, []core.Entity{3, 5}, s.Entered())
	assert.Equal(t, []core.Entity{1}, s.Exited())
	assert.True(t, s.Touching(5))
	assert.False(t, s.Touching(1))
}

func TestShapeConstructors(t *testing.T) {
	assert.Equal(t, Shape{Kind: ShapeCircle, Radius: 12}, Circle(12))
	assert.Equal(t, Shape{Kind: ShapePolygon, Radius: 40, Sides: 3}, RegularPolygon(40, 3))
	assert.Equal(t, Shape{Kind: ShapeRectangle, Width: 10, Height: 4}, Rectangle(10, 4))
}
