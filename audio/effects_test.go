package audio

import "testing"

// TestEffectsSilentBeforeInit verifies an uninitialized player is a safe
// no-op, since the game must run without audio hardware
func TestEffectsSilentBeforeInit(t *testing.T) {
	e := NewEffects()

	e.Bounce()
	e.Score(1)
	e.Score(2)
	e.Close()

	if e.enabled {
		t.Error("Expected effects to stay disabled without Init")
	}
}
