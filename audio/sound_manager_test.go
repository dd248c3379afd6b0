package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayCollect()
	sm.PlayFire()
	sm.PlayGameOver()
	sm.Play(SoundType(99))
	sm.Cleanup()

	if sm.Played() != 0 {
		t.Errorf("Expected nothing played without a device, got %d", sm.Played())
	}
}

// TestSoundManagerDisabled verifies a disabled config never touches the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Disabled manager must not be initialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	// Speaker initialization may fail in CI without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayCollect()
	if sm.Played() != 1 {
		t.Errorf("Expected one effect played, got %d", sm.Played())
	}
	sm.Cleanup()
	if sm.IsInitialized() {
		t.Error("Expected manager to be closed after cleanup")
	}
}

// TestSoundManagerMute verifies muted effects never reach the mixer
func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	if !sm.ToggleMute() {
		t.Fatal("First toggle should mute")
	}
	if !sm.IsMuted() {
		t.Error("Expected muted")
	}
	sm.PlayGameOver()
	if sm.Played() != 0 {
		t.Errorf("Muted manager played %d effects", sm.Played())
	}

	if sm.ToggleMute() {
		t.Error("Second toggle should unmute")
	}
	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Error("SetMuted(true) should mute")
	}
}
