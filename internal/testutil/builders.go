// Package testutil provides fluent builders for test data.
package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/venalora/stillpoint/internal/models"
)

// SessionBuilder provides a fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
			Minutes:   5,
			Mode:      models.ModeRelax,
		},
	}
}

func (b *SessionBuilder) At(t time.Time) *SessionBuilder {
	b.session.CreatedAt = t
	return b
}

func (b *SessionBuilder) WithMinutes(m int) *SessionBuilder {
	b.session.Minutes = m
	return b
}

func (b *SessionBuilder) WithMode(m models.BreathingMode) *SessionBuilder {
	b.session.Mode = m
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
