package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FixedStep is the deterministic simulation step (60 Hz), truncated to whole nanoseconds (16666666ns)
	FixedStep = time.Second / 60

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxCatchUpSteps bounds fixed steps per frame; backlog beyond it is dropped
	MaxCatchUpSteps = 5

	// TelemetryInterval is the period of the status snapshot logged in debug mode
	TelemetryInterval = 5 * time.Second
)
