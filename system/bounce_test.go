package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/entity"
	"github.com/lixenwraith/dodge/physics"
	"github.com/lixenwraith/dodge/vmath"
)

func TestBulletBouncesOffWall(t *testing.T) {
	w := engine.NewWorld()
	entity.CreateBound(w, entity.FaceRight)
	bullet := entity.CreateBullet(w, 0, vmath.V2(795, 300), vmath.V2(100, 0))

	cs := run(t, w, NewPhysicsSystem(w, physics.DefaultLayerMap()), NewBounceSystem(w))
	cs.Step()

	body, _ := w.Components.RigidBody.GetComponent(bullet)
	assert.InDelta(t, -100, body.Velocity.X, 1e-9)
	assert.InDelta(t, 0, body.Velocity.Y, 1e-9)

	tr, _ := w.Components.Transform.GetComponent(bullet)
	assert.InDelta(t, 792, tr.Position.X, 1e-9)
	assert.Equal(t, int64(1), w.Resources.Status.Ints.Get("bounce.count").Load())

	// Moving away: no second reflection
	cs.Step()
	body, _ = w.Components.RigidBody.GetComponent(bullet)
	assert.InDelta(t, -100, body.Velocity.X, 1e-9)
}

func TestBulletsBounceOffEachOther(t *testing.T) {
	w := engine.NewWorld()
	left := entity.CreateBullet(w, 0, vmath.V2(100, 100), vmath.V2(60, 0))
	right := entity.CreateBullet(w, 0, vmath.V2(114, 100), vmath.V2(-60, 0))

	cs := run(t, w, NewPhysicsSystem(w, physics.DefaultLayerMap()), NewBounceSystem(w))
	cs.Step()

	lb, _ := w.Components.RigidBody.GetComponent(left)
	rb, _ := w.Components.RigidBody.GetComponent(right)
	assert.InDelta(t, -60, lb.Velocity.X, 1e-9)
	assert.InDelta(t, 60, rb.Velocity.X, 1e-9)
}

func TestBounceSkipsNonBouncingBodies(t *testing.T) {
	w := engine.NewWorld()
	entity.CreateBound(w, entity.FaceRight)
	bullet := entity.CreateBullet(w, 0, vmath.V2(795, 300), vmath.V2(100, 0))
	body, _ := w.Components.RigidBody.GetComponent(bullet)
	body.Restitution = 0
	w.Components.RigidBody.SetComponent(bullet, body)

	cs := run(t, w, NewPhysicsSystem(w, physics.DefaultLayerMap()), NewBounceSystem(w))
	cs.Step()

	body, _ = w.Components.RigidBody.GetComponent(bullet)
	assert.Equal(t, vmath.V2(100, 0), body.Velocity)
}

func TestLifetimeExpiresBullets(t *testing.T) {
	w := engine.NewWorld()
	w.Resources.Config.Bullet.Lifetime = 100 * time.Millisecond
	bullet := entity.CreateBullet(w, 0, vmath.V2(400, 300), vmath.Vec2{})

	cs := run(t, w, NewLifetimeSystem(w))
	for i := 0; i < 5; i++ {
		cs.Step()
	}
	require.True(t, w.IsAlive(bullet))
	b, _ := w.Components.Bullet.GetComponent(bullet)
	assert.Equal(t, 5*cs.StepDuration(), b.Lifetime)

	cs.Step()
	cs.Step()
	assert.False(t, w.HasEntitiesByTag(core.TagBullet))
	assert.Equal(t, int64(1), w.Resources.Status.Ints.Get("lifetime.expired").Load())
}

func TestPhysicsSystemPublishesStats(t *testing.T) {
	w := engine.NewWorld()
	entity.CreatePlayer(w)
	entity.CreateCollectibleAt(w, vmath.V2(400, 310))
	entity.CreateBullet(w, 0, vmath.V2(100, 100), vmath.V2(10, 0))

	cs := run(t, w, NewPhysicsSystem(w, physics.DefaultLayerMap()))
	cs.Step()

	ints := w.Resources.Status.Ints
	assert.Equal(t, int64(1), ints.Get("physics.moved").Load())
	assert.Equal(t, int64(3), ints.Get("physics.colliders").Load())
	assert.Equal(t, int64(1), ints.Get("physics.touching").Load())
}
