package parameter

// System Execution Priorities (lower runs first)
// Physics refreshes contacts before any gameplay system reads them
const (
	PriorityPhysics     = 10
	PriorityControl     = 20
	PrioritySpawn       = 30
	PriorityChase       = 40
	PriorityShoot       = 50
	PriorityInteraction = 60
	PriorityBounce      = 70
	PriorityLifetime    = 80
	PriorityDifficulty  = 90
)
