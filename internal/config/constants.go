package config

import (
	"time"

	"github.com/venalora/stillpoint/internal/models"
)

// Application settings.
const (
	AppName    = "stillpoint"
	DBFileName = "stillpoint.db"
	SoundsDir  = "sounds"
)

// Patterns maps each breathing mode to its cycle. Relax deliberately
// carries no holds so the cycle swings straight between inhale and
// exhale.
var Patterns = map[models.BreathingMode]models.CyclePattern{
	models.ModeSleep: {
		Inhale:          4 * time.Second,
		Hold:            7 * time.Second,
		Exhale:          8 * time.Second,
		HoldAfterExhale: 0,
	},
	models.ModeFocus: {
		Inhale:          4 * time.Second,
		Hold:            4 * time.Second,
		Exhale:          4 * time.Second,
		HoldAfterExhale: 4 * time.Second,
	},
	models.ModeRelax: {
		Inhale:          5 * time.Second,
		Hold:            0,
		Exhale:          5 * time.Second,
		HoldAfterExhale: 0,
	},
}

// DurationChoices are the selectable session lengths in minutes.
var DurationChoices = []int{1, 3, 5, 10, 15, 20}

// Daily reminder notification. The fixed identifier makes
// re-registration replace the prior request instead of duplicating it.
const (
	ReminderID    = "stillpoint-daily-reminder"
	ReminderTitle = "Time to breathe"
	ReminderBody  = "Your daily breathing session is waiting."
)

// SoundAssets maps a background sound to its bundled file name.
var SoundAssets = map[models.Sound]string{
	models.SoundWaves:      "waves.wav",
	models.SoundForest:     "forest.wav",
	models.SoundWhiteNoise: "white_noise.wav",
}
