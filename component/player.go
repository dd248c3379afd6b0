package component

// PlayerSettingsComponent holds the player's clamp radius
type PlayerSettingsComponent struct {
	Radius float64
}
