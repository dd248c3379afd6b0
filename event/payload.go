package event

import "github.com/lixenwraith/dodge/core"

// ItemCollectedPayload carries the score awarded for a collectible
type ItemCollectedPayload struct {
	Points int `yaml:"points"`
}

// EntityRemovedPayload identifies a flushed entity
type EntityRemovedPayload struct {
	Entity core.Entity `yaml:"entity"`
	Tag    core.Tag    `yaml:"tag"`
}

// EntitySpawnedPayload identifies a newly built entity
type EntitySpawnedPayload struct {
	Entity core.Entity `yaml:"entity"`
	Tag    core.Tag    `yaml:"tag"`
}

// FoeFiredPayload links a foe to the bullet it spawned
type FoeFiredPayload struct {
	Foe    core.Entity `yaml:"foe"`
	Bullet core.Entity `yaml:"bullet"`
}

// GameOverPayload carries the final and best score of the session
type GameOverPayload struct {
	Score int64 `yaml:"score"`
	Best  int64 `yaml:"best"`
}

// SceneResetPayload names the rebuilt scene
type SceneResetPayload struct {
	Scene string `yaml:"scene"`
}

// Signal is a typed key into the catalog, binding an EventType to its payload type
type Signal[P any] struct {
	Type EventType
}

// Catalog keys
var (
	ItemCollected = Signal[ItemCollectedPayload]{Type: EventItemCollected}
	EntityRemoved = Signal[EntityRemovedPayload]{Type: EventEntityRemoved}
	EntitySpawned = Signal[EntitySpawnedPayload]{Type: EventEntitySpawned}
	FoeFired      = Signal[FoeFiredPayload]{Type: EventFoeFired}
	GameOver      = Signal[GameOverPayload]{Type: EventGameOver}
	SceneReset    = Signal[SceneResetPayload]{Type: EventSceneReset}
)
