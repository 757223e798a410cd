package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/venalora/stillpoint/internal/models"
)

// AddSession appends a completed session stamped with the current
// time and persists it synchronously before returning.
func (d *Database) AddSession(ctx context.Context, minutes int, mode models.BreathingMode) (models.Session, error) {
	s := models.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Minutes:   minutes,
		Mode:      mode,
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO sessions (id, created_at, minutes, mode) VALUES (?, ?, ?, ?)",
		s.ID, s.CreatedAt, s.Minutes, string(s.Mode))
	if err != nil {
		return models.Session{}, wrapSessionErr("add", err)
	}
	return s, nil
}

// AllSessions returns every recorded session in insertion order,
// which is also chronological order since rows are only appended.
// Rows that fail to scan are skipped rather than aborting the load;
// a malformed log degrades to whatever is readable.
func (d *Database) AllSessions(ctx context.Context) ([]models.Session, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, created_at, minutes, mode FROM sessions ORDER BY rowid ASC")
	if err != nil {
		return nil, wrapSessionErr("list", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		var mode string
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Minutes, &mode); err != nil {
			continue
		}
		s.Mode = models.BreathingMode(mode)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return sessions, wrapSessionErr("list", err)
	}
	return sessions, nil
}

// SessionCount reports the number of recorded sessions.
func (d *Database) SessionCount(ctx context.Context) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n)
	if err != nil {
		return 0, wrapSessionErr("count", err)
	}
	return n, nil
}
