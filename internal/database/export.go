package database

import (
	"context"
	"encoding/json"
	"time"
)

// ExportSession is the JSON shape of one session record.
type ExportSession struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Minutes   int    `json:"minutes"`
	Mode      string `json:"mode"`
}

// ExportEnvelope wraps an export with versioning metadata.
type ExportEnvelope struct {
	Version    int             `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Sessions   []ExportSession `json:"sessions"`
}

const exportVersion = 1

// ExportJSON renders the full session log as indented JSON. This is
// a one-way report; there is no import path.
func (d *Database) ExportJSON(ctx context.Context) ([]byte, error) {
	sessions, err := d.AllSessions(ctx)
	if err != nil {
		return nil, err
	}
	env := ExportEnvelope{
		Version:    exportVersion,
		ExportedAt: time.Now().Format(time.RFC3339),
		Sessions:   make([]ExportSession, 0, len(sessions)),
	}
	for _, s := range sessions {
		env.Sessions = append(env.Sessions, ExportSession{
			ID:        s.ID,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
			Minutes:   s.Minutes,
			Mode:      string(s.Mode),
		})
	}
	return json.MarshalIndent(env, "", "  ")
}
