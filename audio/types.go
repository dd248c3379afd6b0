package audio

import (
	"errors"
	"time"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect  SoundType = iota // Item picked up
	SoundFire                      // Foe shot a bullet
	SoundGameOver                  // Player caught
	soundTypeCount
)

func (t SoundType) String() string {
	switch t {
	case SoundCollect:
		return "collect"
	case SoundFire:
		return "fire"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// AudioConfig holds volume and device settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   48000,
		EffectVolumes: map[SoundType]float64{
			SoundCollect:  0.6,
			SoundFire:     0.3,
			SoundGameOver: 0.8,
		},
	}
}

// Effect timings
const (
	speakerBuffer = 100 * time.Millisecond

	collectNote1Duration = 60 * time.Millisecond
	collectNote2Duration = 120 * time.Millisecond
	collectAttack        = 5 * time.Millisecond
	collectRelease       = 40 * time.Millisecond

	fireDuration = 80 * time.Millisecond
	fireAttack   = 2 * time.Millisecond
	fireRelease  = 60 * time.Millisecond

	gameOverNoteDuration = 180 * time.Millisecond
	gameOverAttack       = 10 * time.Millisecond
	gameOverRelease      = 90 * time.Millisecond
)

// ErrAudioDisabled is returned by Initialize when the config turns audio off
var ErrAudioDisabled = errors.New("audio disabled")
