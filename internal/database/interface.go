package database

import (
	"context"

	"github.com/venalora/stillpoint/internal/models"
)

// SessionRepository defines the append-only session log operations.
type SessionRepository interface {
	AddSession(ctx context.Context, minutes int, mode models.BreathingMode) (models.Session, error)
	AllSessions(ctx context.Context) ([]models.Session, error)
	SessionCount(ctx context.Context) (int, error)
}

// SettingsRepository defines key/value preference persistence.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// Store combines all repository interfaces.
type Store interface {
	SessionRepository
	SettingsRepository
}

var _ Store = (*Database)(nil)
