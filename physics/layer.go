package physics

import "github.com/lixenwraith/dodge/core"

// LayerMap relates a layer to the layers it may collide with
// The relation is applied symmetrically: if A may hit B, B is hit by A
type LayerMap map[core.Layer]core.Layer

// DefaultLayerMap is the playfield relation: player picks up collectibles,
// foes hit the player, bullets hit the player, walls and each other
func DefaultLayerMap() LayerMap {
	return LayerMap{
		core.LayerPlayer: core.LayerCollectible,
		core.LayerFoe:    core.LayerPlayer,
		core.LayerBullet: core.LayerPlayer | core.LayerBound | core.LayerBullet,
	}
}

// Filter returns the union of targets for every category bit in mask
func (m LayerMap) Filter(mask core.Layer) core.Layer {
	var out core.Layer
	for layer, targets := range m {
		if mask&layer != 0 {
			out |= targets
		}
	}
	return out
}

// Allows reports whether colliders on layers a and b may ever be considered touching
func (m LayerMap) Allows(a, b core.Layer) bool {
	if a == 0 || b == 0 {
		return false
	}
	return m.Filter(a)&b != 0 || m.Filter(b)&a != 0
}
