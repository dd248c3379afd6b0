package component

import "github.com/lixenwraith/dodge/core"

// ShapeKind selects the collider primitive
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapePolygon
	ShapeRectangle
)

// Shape describes collider geometry in entity-local space, centered on the entity position
// Polygon is regular with its first vertex on local +X
type Shape struct {
	Kind   ShapeKind
	Radius float64 // Circle radius, polygon circumradius
	Sides  int     // Polygon only, >= 3
	Width  float64 // Rectangle only
	Height float64 // Rectangle only
}

// Circle returns a circle shape
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// RegularPolygon returns a regular polygon shape with the given circumradius
func RegularPolygon(radius float64, sides int) Shape {
	return Shape{Kind: ShapePolygon, Radius: radius, Sides: sides}
}

// Rectangle returns an axis-aligned (before rotation) rectangle shape
func Rectangle(width, height float64) Shape {
	return Shape{Kind: ShapeRectangle, Width: width, Height: height}
}

// ColliderComponent makes an entity participate in contact detection and ray casts
type ColliderComponent struct {
	Shape Shape
	Layer core.Layer // Category bits, never zero for a live entity
}
