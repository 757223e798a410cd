package config

import (
	"testing"

	"github.com/venalora/stillpoint/internal/models"
)

func TestPatternsCoverAllModes(t *testing.T) {
	for _, m := range models.Modes {
		p, ok := Patterns[m]
		if !ok {
			t.Fatalf("no pattern for mode %q", m)
		}
		if p.Inhale <= 0 || p.Exhale <= 0 {
			t.Errorf("mode %q: inhale and exhale must be positive", m)
		}
		if p.Hold < 0 || p.HoldAfterExhale < 0 {
			t.Errorf("mode %q: holds must be non-negative", m)
		}
	}
}

func TestRelaxHasNoHolds(t *testing.T) {
	p := Patterns[models.ModeRelax]
	if p.Hold != 0 || p.HoldAfterExhale != 0 {
		t.Errorf("relax pattern should have zero holds, got %v/%v", p.Hold, p.HoldAfterExhale)
	}
}

func TestSoundAssetsCoverAllAudibleSounds(t *testing.T) {
	for _, s := range models.Sounds {
		if s == models.SoundNone {
			continue
		}
		if _, ok := SoundAssets[s]; !ok {
			t.Errorf("no asset mapped for sound %q", s)
		}
	}
	if _, ok := SoundAssets[models.SoundNone]; ok {
		t.Error("silence must not map to an asset")
	}
}

func TestDurationChoicesAscending(t *testing.T) {
	for i := 1; i < len(DurationChoices); i++ {
		if DurationChoices[i] <= DurationChoices[i-1] {
			t.Errorf("duration choices not strictly ascending at %d", i)
		}
	}
}
