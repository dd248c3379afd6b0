package scene

import (
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/entity"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/physics"
	"github.com/lixenwraith/dodge/system"
)

// MainName is the name of the playable scene
const MainName = "main"

// MainSystems returns the gameplay systems of the main scene
// The scene sorts them by priority; the list here mirrors that order
func MainSystems(w *engine.World, hub *input.Hub) []engine.System {
	return []engine.System{
		system.NewPhysicsSystem(w, physics.DefaultLayerMap()),
		system.NewControlSystem(w, hub),
		system.NewSpawnSystem(w),
		system.NewChaseSystem(w),
		system.NewShootSystem(w),
		system.NewInteractionSystem(w),
		system.NewBounceSystem(w),
		system.NewLifetimeSystem(w),
		system.NewDifficultySystem(w),
	}
}

// NewMain creates the main scene for w, driven by pointer events from hub
func NewMain(w *engine.World, hub *input.Hub) *engine.Scene {
	return engine.NewScene(w, MainName, BuildMain, MainSystems(w, hub)...)
}

// BuildMain spawns walls, the player, foes and the initial collectibles
func BuildMain(w *engine.World) {
	cfg := w.Resources.Config

	entity.CreateBounds(w)
	entity.CreatePlayer(w)
	for i := 0; i < cfg.Foe.Count; i++ {
		entity.CreateFoe(w, (parameter.FoeSpawnEdge+i)%4)
	}
	for i := 0; i < cfg.Collectible.Count; i++ {
		entity.CreateCollectible(w)
	}
}
