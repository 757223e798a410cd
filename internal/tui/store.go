package tui

import (
	"context"

	"github.com/venalora/stillpoint/internal/database"
	"github.com/venalora/stillpoint/internal/models"
)

// Store defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	AddSession(ctx context.Context, minutes int, mode models.BreathingMode) (models.Session, error)
	AllSessions(ctx context.Context) ([]models.Session, error)
	ExportJSON(ctx context.Context) ([]byte, error)
}

var _ Store = (*database.Database)(nil)
