package notify

import (
	"time"

	"github.com/venalora/stillpoint/internal/config"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/stats"
	"github.com/venalora/stillpoint/internal/util"
)

// Scheduler owns the single pending daily reminder. All requests go
// out under one fixed identifier, so Schedule replaces any prior
// request and Cancel leaves nothing pending. The scheduler holds no
// timer of its own: the owner calls Tick from its second-resolution
// loop.
type Scheduler struct {
	notifier  Notifier
	at        *models.ClockTime
	lastFired time.Time
}

func NewScheduler(n Notifier) *Scheduler {
	return &Scheduler{notifier: n}
}

// Schedule arms (or re-arms) the daily reminder for the given time
// of day, replacing any previously scheduled one.
func (s *Scheduler) Schedule(at models.ClockTime) {
	t := at
	s.at = &t
}

// Cancel clears the pending reminder. Idempotent.
func (s *Scheduler) Cancel() {
	s.at = nil
}

// Scheduled returns the armed time of day, or nil.
func (s *Scheduler) Scheduled() *models.ClockTime {
	return s.at
}

// Tick fires the reminder when the scheduled time of day has been
// reached, at most once per calendar day. Delivery failures are
// logged and ignored.
func (s *Scheduler) Tick(now time.Time) {
	if s.at == nil {
		return
	}
	due := time.Date(now.Year(), now.Month(), now.Day(), s.at.Hour, s.at.Minute, 0, 0, now.Location())
	if now.Before(due) {
		return
	}
	if !s.lastFired.IsZero() && stats.DayKey(s.lastFired).Equal(stats.DayKey(now)) {
		return
	}
	s.lastFired = now
	util.LogError("reminder notification",
		s.notifier.Notify(config.ReminderID, config.ReminderTitle, config.ReminderBody))
}
