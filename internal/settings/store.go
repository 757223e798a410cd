// Package settings layers typed, write-through user preferences over
// the key/value settings table. Every setter persists the full
// settings state before notifying subscribers.
package settings

import (
	"context"

	"github.com/venalora/stillpoint/internal/database"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/util"
)

const (
	keyTheme    = "theme"
	keySound    = "background_sound"
	keyReminder = "reminder_time"
)

// Subscriber receives the full settings state after each change.
type Subscriber func(models.Settings)

// Store holds the in-memory settings and persists on every mutation.
// Not safe for concurrent use; all access happens on the UI loop.
type Store struct {
	db          database.SettingsRepository
	current     models.Settings
	subscribers []Subscriber
}

func NewStore(db database.SettingsRepository) *Store {
	return &Store{db: db, current: models.DefaultSettings()}
}

// Load restores persisted values field by field. A missing or
// invalid field falls back to its default without disturbing the
// others.
func (s *Store) Load(ctx context.Context) {
	s.current = models.DefaultSettings()
	if v, ok := s.db.GetSetting(ctx, keyTheme); ok {
		if theme := models.ThemeName(v); theme.Valid() {
			s.current.Theme = theme
		}
	}
	if v, ok := s.db.GetSetting(ctx, keySound); ok {
		if sound := models.Sound(v); sound.Valid() {
			s.current.Sound = sound
		}
	}
	if v, ok := s.db.GetSetting(ctx, keyReminder); ok {
		if t, err := models.ParseClockTime(v); err == nil {
			s.current.Reminder = &t
		}
	}
}

// Current returns the in-memory settings state.
func (s *Store) Current() models.Settings {
	return s.current
}

// Subscribe registers a callback invoked after every mutation.
func (s *Store) Subscribe(fn Subscriber) {
	s.subscribers = append(s.subscribers, fn)
}

// SetTheme selects a color theme. Unknown names are ignored.
func (s *Store) SetTheme(ctx context.Context, theme models.ThemeName) {
	if !theme.Valid() {
		return
	}
	s.current.Theme = theme
	s.persist(ctx)
	s.notify()
}

// SetSound selects a background sound, or silence for SoundNone.
func (s *Store) SetSound(ctx context.Context, sound models.Sound) {
	if !sound.Valid() {
		return
	}
	s.current.Sound = sound
	s.persist(ctx)
	s.notify()
}

// SetReminder sets or clears (nil) the daily reminder time.
func (s *Store) SetReminder(ctx context.Context, at *models.ClockTime) {
	if at == nil {
		s.current.Reminder = nil
	} else {
		t := *at
		s.current.Reminder = &t
	}
	s.persist(ctx)
	s.notify()
}

// persist writes the entire settings state. Write failures are
// best-effort: logged, never surfaced.
func (s *Store) persist(ctx context.Context) {
	util.LogError("persist theme", s.db.SetSetting(ctx, keyTheme, string(s.current.Theme)))
	util.LogError("persist sound", s.db.SetSetting(ctx, keySound, string(s.current.Sound)))
	if s.current.Reminder == nil {
		util.LogError("clear reminder", s.db.DeleteSetting(ctx, keyReminder))
	} else {
		util.LogError("persist reminder", s.db.SetSetting(ctx, keyReminder, s.current.Reminder.String()))
	}
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn(s.current)
	}
}
