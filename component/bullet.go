package component

import (
	"time"

	"github.com/lixenwraith/dodge/core"
)

// BulletComponent marks a bouncing projectile entity
type BulletComponent struct {
	Owner       core.Entity   // Foe that fired it
	Lifetime    time.Duration // Accumulated age
	MaxLifetime time.Duration // Destruction threshold
}
