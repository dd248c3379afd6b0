package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/vmath"
)

const eps = 1e-9

func at(x, y, rot float64) core.Transform {
	return core.NewTransform(x, y, rot)
}

func TestPlaceRegularPolygon(t *testing.T) {
	ws := Place(component.RegularPolygon(10, 3), at(5, 5, math.Pi/2))
	require.Len(t, ws.Vertices, 3)
	// First vertex sits on the local +X axis, rotated to +Y
	assert.InDelta(t, 5, ws.Vertices[0].X, eps)
	assert.InDelta(t, 15, ws.Vertices[0].Y, eps)
	assert.InDelta(t, 15, ws.Bounds.Max.Y, eps)
	assert.False(t, ws.Circle)
}

func TestPlaceRectangleAndCircle(t *testing.T) {
	r := Place(component.Rectangle(4, 2), at(0, 0, 0))
	assert.Equal(t, AABB{Min: vmath.V2(-2, -1), Max: vmath.V2(2, 1)}, r.Bounds)

	tr := at(1, 1, 0)
	tr.Scale = vmath.V2(2, 3)
	c := Place(component.Circle(2), tr)
	assert.True(t, c.Circle)
	assert.Equal(t, 6.0, c.Radius)
}

func TestCollideCircles(t *testing.T) {
	tests := []struct {
		name      string
		ax, bx    float64
		wantHit   bool
		wantDepth float64
	}{
		{"overlapping", 0, 10, true, 5},
		{"exactly touching", 0, 15, true, 0},
		{"separated", 0, 15.001, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Place(component.Circle(10), at(tt.ax, 0, 0))
			b := Place(component.Circle(5), at(tt.bx, 0, 0))
			c, hit := Collide(a, b)
			require.Equal(t, tt.wantHit, hit)
			if hit {
				assert.InDelta(t, tt.wantDepth, c.Depth, eps)
				assert.InDelta(t, -1, c.Normal.X, eps, "normal points from b toward a")
			}
		})
	}

	c, hit := Collide(Place(component.Circle(1), at(3, 3, 0)), Place(component.Circle(1), at(3, 3, 0)))
	require.True(t, hit)
	assert.InDelta(t, 1, vmath.V2Mag(c.Normal), eps)
}

func TestCollideCircleRectangle(t *testing.T) {
	circle := Place(component.Circle(5), at(0, 0, 0))

	t.Run("edge overlap", func(t *testing.T) {
		c, hit := Collide(circle, Place(component.Rectangle(4, 4), at(6, 0, 0)))
		require.True(t, hit)
		assert.InDelta(t, 1, c.Depth, eps)
		assert.InDelta(t, -1, c.Normal.X, eps)
		assert.InDelta(t, 0, c.Normal.Y, eps)
	})

	t.Run("edge gap", func(t *testing.T) {
		_, hit := Collide(circle, Place(component.Rectangle(4, 4), at(7.5, 0, 0)))
		assert.False(t, hit)
	})

	t.Run("corner gap inside bounding boxes", func(t *testing.T) {
		rect := Place(component.Rectangle(10, 10), at(10, 10, 0))
		c6 := Place(component.Circle(6), at(0, 0, 0))
		require.True(t, c6.Bounds.Overlaps(rect.Bounds))
		_, hit := Collide(c6, rect)
		assert.False(t, hit, "closest-vertex axis separates the corner")

		c8 := Place(component.Circle(8), at(0, 0, 0))
		_, hit = Collide(c8, rect)
		assert.True(t, hit)
	})

	t.Run("order independent", func(t *testing.T) {
		rect := Place(component.Rectangle(4, 4), at(6, 0, 0))
		ab, hitAB := Collide(circle, rect)
		ba, hitBA := Collide(rect, circle)
		require.True(t, hitAB)
		require.True(t, hitBA)
		assert.InDelta(t, ab.Depth, ba.Depth, eps)
		assert.InDelta(t, -ab.Normal.X, ba.Normal.X, eps)
	})
}

func TestCollidePolygons(t *testing.T) {
	// Triangle pointing +X with tip at x=10
	tri := Place(component.RegularPolygon(10, 3), at(0, 0, 0))

	_, hit := Collide(tri, Place(component.Rectangle(4, 4), at(11.5, 0, 0)))
	assert.True(t, hit, "tip inside the box")

	_, hit = Collide(tri, Place(component.Rectangle(4, 4), at(12.5, 0, 0)))
	assert.False(t, hit)

	// Behind the flat side at x=-5
	_, hit = Collide(tri, Place(component.Rectangle(2, 2), at(-6.5, 0, 0)))
	assert.False(t, hit)
	_, hit = Collide(tri, Place(component.Rectangle(2, 2), at(-5.5, 0, 0)))
	assert.True(t, hit)

	// Rotated square diamond against an axis-aligned one
	diamond := Place(component.Rectangle(2, 2), at(0, 0, math.Pi/4))
	_, hit = Collide(diamond, Place(component.Rectangle(2, 2), at(2.3, 0, 0)))
	assert.True(t, hit)
	_, hit = Collide(diamond, Place(component.Rectangle(2, 2), at(2.5, 0, 0)))
	assert.False(t, hit)
}

func TestContainsPoint(t *testing.T) {
	tri := Place(component.RegularPolygon(10, 3), at(0, 0, 0))
	assert.True(t, tri.ContainsPoint(vmath.V2(0, 0)))
	assert.True(t, tri.ContainsPoint(vmath.V2(9, 0)))
	assert.False(t, tri.ContainsPoint(vmath.V2(-6, 0)))
	assert.False(t, tri.ContainsPoint(vmath.V2(0, 9)))

	c := Place(component.Circle(2), at(1, 1, 0))
	assert.True(t, c.ContainsPoint(vmath.V2(3, 1)))
	assert.False(t, c.ContainsPoint(vmath.V2(3, 3)))
}

func TestBoundsContain(t *testing.T) {
	rect := Place(component.Rectangle(4, 2), at(10, 10, 0))
	assert.True(t, rect.Bounds.Contains(vmath.V2(8, 9)), "corner is inside")
	assert.True(t, rect.Bounds.Contains(vmath.V2(10, 10)))
	assert.False(t, rect.Bounds.Contains(vmath.V2(12.5, 10)))
	assert.False(t, rect.Bounds.Contains(vmath.V2(10, 8.9)))

	// Points outside the box are rejected before the exact test
	assert.True(t, rect.ContainsPoint(vmath.V2(12, 11)))
	assert.False(t, rect.ContainsPoint(vmath.V2(12.01, 11)))
}

func TestLayerMap(t *testing.T) {
	m := DefaultLayerMap()
	tests := []struct {
		a, b core.Layer
		want bool
	}{
		{core.LayerPlayer, core.LayerCollectible, true},
		{core.LayerCollectible, core.LayerPlayer, true},
		{core.LayerFoe, core.LayerPlayer, true},
		{core.LayerPlayer, core.LayerFoe, true},
		{core.LayerBullet, core.LayerBound, true},
		{core.LayerBound, core.LayerBullet, true},
		{core.LayerBullet, core.LayerBullet, true},
		{core.LayerBullet, core.LayerPlayer, true},
		{core.LayerFoe, core.LayerCollectible, false},
		{core.LayerFoe, core.LayerBound, false},
		{core.LayerFoe, core.LayerFoe, false},
		{core.LayerPlayer, core.LayerBound, false},
		{core.LayerCollectible, core.LayerBullet, false},
		{0, core.LayerPlayer, false},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, m.Allows(tt.a, tt.b))
		})
	}

	assert.Equal(t, core.LayerCollectible|core.LayerPlayer, m.Filter(core.LayerPlayer|core.LayerFoe))
}

func TestReflect(t *testing.T) {
	n := vmath.V2(0, -1)
	v := Reflect(vmath.V2(3, 4), n, 1)
	assert.InDelta(t, 3, v.X, eps)
	assert.InDelta(t, -4, v.Y, eps)

	half := Reflect(vmath.V2(3, 4), n, 0.5)
	assert.InDelta(t, -2, half.Y, eps)

	// Already separating
	assert.Equal(t, vmath.V2(3, -4), Reflect(vmath.V2(3, -4), n, 1))
}

func TestCapSpeedAndClampInside(t *testing.T) {
	v, clamped := CapSpeed(vmath.V2(300, 400), 250)
	assert.True(t, clamped)
	assert.InDelta(t, 250, vmath.V2Mag(v), eps)

	v, clamped = CapSpeed(vmath.V2(3, 4), 250)
	assert.False(t, clamped)
	assert.Equal(t, vmath.V2(3, 4), v)

	p := ClampInside(vmath.V2(-10, 700), 800, 600, 24)
	assert.Equal(t, vmath.V2(24, 576), p)
}
