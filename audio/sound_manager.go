package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// SoundManager plays one-shot effects through a shared mixer
// Every method is safe to call without a working audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
	log         *zap.Logger
}

// NewSoundManager creates a new sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig, log *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize opens the speaker and starts the mixer, idempotent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("audio initialized", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Cleanup stops all sounds; the speaker stays open for a later Initialize
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// IsInitialized reports whether the device is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted forces the mute flag
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns how many effects reached the mixer
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play queues an effect, dropped silently when muted or without a device
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
}

func (sm *SoundManager) PlayCollect()  { sm.Play(SoundCollect) }
func (sm *SoundManager) PlayFire()     { sm.Play(SoundFire) }
func (sm *SoundManager) PlayGameOver() { sm.Play(SoundGameOver) }
