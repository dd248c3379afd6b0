package engine

import (
	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per world; systems copy it through SystemBase
type ComponentStore struct {
	// Spatial
	Transform *Store[core.Transform]

	// Collision and motion
	Collider  *Store[component.ColliderComponent]
	RigidBody *Store[component.RigidBodyComponent]
	Sensor    *Store[component.SensorComponent]
	RayCast   *Store[component.RayCastComponent]

	// Gameplay
	FoeSettings    *Store[component.FoeSettingsComponent]
	FoeState       *Store[component.FoeStateComponent]
	PlayerSettings *Store[component.PlayerSettingsComponent]
	Bullet         *Store[component.BulletComponent]

	// Presentation
	Appearance *Store[component.AppearanceComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform:      NewStore[core.Transform](),
		Collider:       NewStore[component.ColliderComponent](),
		RigidBody:      NewStore[component.RigidBodyComponent](),
		Sensor:         NewStore[component.SensorComponent](),
		RayCast:        NewStore[component.RayCastComponent](),
		FoeSettings:    NewStore[component.FoeSettingsComponent](),
		FoeState:       NewStore[component.FoeStateComponent](),
		PlayerSettings: NewStore[component.PlayerSettingsComponent](),
		Bullet:         NewStore[component.BulletComponent](),
		Appearance:     NewStore[component.AppearanceComponent](),
	}
}

// stores lists every store for uniform removal and clearing
func (c *ComponentStore) stores() []AnyStore {
	return []AnyStore{
		c.Transform,
		c.Collider,
		c.RigidBody,
		c.Sensor,
		c.RayCast,
		c.FoeSettings,
		c.FoeState,
		c.PlayerSettings,
		c.Bullet,
		c.Appearance,
	}
}
