package entity

import (
	"math/rand"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/vmath"
)

// SightRay is the name of the foe's line-of-sight ray
const SightRay = "sight"

// CreatePlayer spawns the player at the playfield center
func CreatePlayer(w *engine.World) core.Entity {
	cfg := w.Resources.Config
	r := cfg.Player.Radius

	eb := w.NewEntity(core.TagPlayer, core.NewTransform(cfg.World.Width/2, cfg.World.Height/2, 0))
	engine.With(eb, w.Components.PlayerSettings, component.PlayerSettingsComponent{Radius: r})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.Circle(r),
		Layer: core.LayerPlayer,
	})
	engine.With(eb, w.Components.Sensor, component.NewSensor())
	engine.With(eb, w.Components.Appearance, component.AppearanceComponent{
		Glyph:  parameter.PlayerGlyph,
		Color:  parameter.PlayerColor,
		Filled: true,
	})
	return eb.Build()
}

// FoeSpawnPosition returns the spawn point for a foe entering from edge (0 top, 1 right, 2 bottom, 3 left)
func FoeSpawnPosition(cfg *parameter.Config, edge int) vmath.Vec2 {
	w, h := cfg.World.Width, cfg.World.Height
	pad := parameter.FoeSpawnPadding

	switch edge % 4 {
	case 0:
		return vmath.V2(w/2, pad)
	case 1:
		return vmath.V2(w-pad, h/2)
	case 2:
		return vmath.V2(w/2, h-pad)
	default:
		return vmath.V2(pad, h/2)
	}
}

// CreateFoe spawns a chasing triangle outside edge, facing into the playfield
func CreateFoe(w *engine.World, edge int) core.Entity {
	cfg := w.Resources.Config
	pos := FoeSpawnPosition(cfg, edge)

	eb := w.NewEntity(core.TagFoe, core.NewTransform(pos.X, pos.Y, parameter.FoeFacingForEdge(edge)))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.RegularPolygon(cfg.Foe.Radius, cfg.Foe.Sides),
		Layer: core.LayerFoe,
	})
	engine.With(eb, w.Components.RigidBody, component.RigidBodyComponent{
		Kind:     component.BodyKinematic,
		Friction: component.Friction{Dynamic: 0},
	})
	engine.With(eb, w.Components.FoeSettings, component.FoeSettingsComponent{
		Radius:       cfg.Foe.Radius,
		LinearSpeed:  cfg.Foe.LinearSpeed,
		AngularSpeed: cfg.Foe.AngularSpeed,
	})
	// A new foe holds fire for one cooldown
	engine.With(eb, w.Components.FoeState, component.FoeStateComponent{LastShotAt: w.Resources.Time.GameTime})
	engine.With(eb, w.Components.RayCast, component.NewRayCast(map[string]component.RaySpec{
		SightRay: {
			Direction: vmath.V2(1, 0),
			MaxLength: cfg.World.Width * cfg.Foe.SightFraction,
			Mask:      core.LayerPlayer,
		},
	}))
	engine.With(eb, w.Components.Appearance, component.AppearanceComponent{
		Glyph:  parameter.FoeGlyph,
		Color:  parameter.FoeColor,
		Filled: true,
	})
	return eb.Build()
}

// RandomCollectiblePosition draws a uniform point inside the playfield inset by the collectible padding
func RandomCollectiblePosition(cfg *parameter.Config, rng *rand.Rand) vmath.Vec2 {
	p := cfg.Collectible.Padding
	return vmath.V2(
		p+rng.Float64()*(cfg.World.Width-2*p),
		p+rng.Float64()*(cfg.World.Height-2*p),
	)
}

// CreateCollectible spawns a collectible at a random position drawn from the world's random source
func CreateCollectible(w *engine.World) core.Entity {
	pos := RandomCollectiblePosition(w.Resources.Config, w.Resources.Rand)
	return CreateCollectibleAt(w, pos)
}

// CreateCollectibleAt spawns a collectible at pos
func CreateCollectibleAt(w *engine.World, pos vmath.Vec2) core.Entity {
	cfg := w.Resources.Config

	eb := w.NewEntity(core.TagCollectible, core.NewTransform(pos.X, pos.Y, 0))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.Circle(cfg.Collectible.Radius),
		Layer: core.LayerCollectible,
	})
	engine.With(eb, w.Components.Appearance, component.AppearanceComponent{
		Glyph: parameter.CollectibleGlyph,
		Color: parameter.CollectibleColor,
	})
	return eb.Build()
}

// CreateBullet spawns a bouncing projectile fired by owner
func CreateBullet(w *engine.World, owner core.Entity, pos, vel vmath.Vec2) core.Entity {
	cfg := w.Resources.Config

	eb := w.NewEntity(core.TagBullet, core.NewTransform(pos.X, pos.Y, vmath.TwoPi/8))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.Circle(cfg.Bullet.Radius),
		Layer: core.LayerBullet,
	})
	engine.With(eb, w.Components.RigidBody, component.RigidBodyComponent{
		Kind:        component.BodyKinematic,
		Velocity:    vel,
		Restitution: cfg.Bullet.Restitution,
	})
	engine.With(eb, w.Components.Bullet, component.BulletComponent{
		Owner:       owner,
		MaxLifetime: cfg.Bullet.Lifetime,
	})
	engine.With(eb, w.Components.Sensor, component.NewSensor())
	engine.With(eb, w.Components.Appearance, component.AppearanceComponent{
		Glyph: parameter.BulletGlyph,
		Color: parameter.BulletColor,
	})
	return eb.Build()
}
