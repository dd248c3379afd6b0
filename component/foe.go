package component

import "time"

// FoeSettingsComponent holds tunable chase parameters, raised by difficulty scaling
type FoeSettingsComponent struct {
	Radius       float64
	LinearSpeed  float64 // World units per second
	AngularSpeed float64 // Radians per second
}

// FoeStateComponent tracks shooting cooldown on the game clock
type FoeStateComponent struct {
	LastShotAt time.Duration // Game time of the last shot, never decreases
	Shots      int
}
