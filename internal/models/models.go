package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BreathingMode selects one of the built-in cycle patterns.
type BreathingMode string

const (
	ModeSleep BreathingMode = "sleep"
	ModeFocus BreathingMode = "focus"
	ModeRelax BreathingMode = "relax"
)

// Modes lists the selectable modes in display order.
var Modes = []BreathingMode{ModeSleep, ModeFocus, ModeRelax}

// Valid reports whether m names a known breathing mode.
func (m BreathingMode) Valid() bool {
	switch m {
	case ModeSleep, ModeFocus, ModeRelax:
		return true
	}
	return false
}

// Title returns the mode name for display.
func (m BreathingMode) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// CyclePattern holds the four phase durations of one breathing cycle.
// A zero hold means the phase is skipped, not a zero-length wait.
type CyclePattern struct {
	Inhale          time.Duration
	Hold            time.Duration
	Exhale          time.Duration
	HoldAfterExhale time.Duration
}

// Session is one completed, timed breathing practice. Records are
// append-only: created once when a countdown reaches zero, never
// mutated, never deleted.
type Session struct {
	ID        string
	CreatedAt time.Time
	Minutes   int
	Mode      BreathingMode
}

// ThemeName selects a color theme.
type ThemeName string

const (
	ThemePink  ThemeName = "pink"
	ThemeBlue  ThemeName = "blue"
	ThemeGreen ThemeName = "green"
)

var ThemeNames = []ThemeName{ThemePink, ThemeBlue, ThemeGreen}

func (t ThemeName) Valid() bool {
	switch t {
	case ThemePink, ThemeBlue, ThemeGreen:
		return true
	}
	return false
}

// Sound names a bundled background-sound asset. The empty value means
// silence and no playback is attempted.
type Sound string

const (
	SoundNone       Sound = ""
	SoundWaves      Sound = "waves"
	SoundForest     Sound = "forest"
	SoundWhiteNoise Sound = "white_noise"
)

var Sounds = []Sound{SoundNone, SoundWaves, SoundForest, SoundWhiteNoise}

func (s Sound) Valid() bool {
	switch s {
	case SoundNone, SoundWaves, SoundForest, SoundWhiteNoise:
		return true
	}
	return false
}

// Title returns the sound name for display.
func (s Sound) Title() string {
	if s == SoundNone {
		return "None"
	}
	parts := strings.Split(string(s), "_")
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// ClockTime is a wall-clock time of day, minute resolution.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClockTime parses "HH:MM" (24h).
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in %q", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// Settings is the persisted user preference state. Reminder nil means
// no daily reminder is scheduled.
type Settings struct {
	Theme    ThemeName
	Sound    Sound
	Reminder *ClockTime
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{Theme: ThemePink, Sound: SoundNone}
}
