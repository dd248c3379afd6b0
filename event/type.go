package event

// EventType identifies a signal in the fixed catalog
type EventType int

const (
	// EventItemCollected fires when the player touches a collectible
	// Trigger: InteractionSystem | Consumer: SpawnSystem, DifficultySystem, Session
	// Payload: ItemCollectedPayload
	EventItemCollected EventType = iota + 1

	// EventEntityRemoved fires once per entity when the deferred removal is flushed
	// Trigger: World.Flush | Consumer: Session (game-over on player)
	// Payload: EntityRemovedPayload
	EventEntityRemoved

	// EventEntitySpawned fires when an entity builder commits
	// Trigger: EntityBuilder.Build | Consumer: Session signal log
	// Payload: EntitySpawnedPayload
	EventEntitySpawned

	// EventFoeFired fires when a foe spawns a bullet
	// Trigger: ShootSystem | Consumer: Session (sound)
	// Payload: FoeFiredPayload
	EventFoeFired

	// EventGameOver fires once per session when the player is gone
	// Trigger: Session | Consumer: Session signal log
	// Payload: GameOverPayload
	EventGameOver

	// EventSceneReset fires after a scene rebuild completes
	// Trigger: Scene.Start | Consumer: Session signal log
	// Payload: SceneResetPayload
	EventSceneReset
)
