// Package stats derives read-side projections from the session log.
// Every function recomputes from scratch on each call; nothing here
// caches, so nothing here needs invalidating.
package stats

import (
	"time"

	"github.com/venalora/stillpoint/internal/models"
)

// WeeklySummary holds the trailing-seven-day totals.
type WeeklySummary struct {
	Count        int
	TotalMinutes int
}

// Weekly sums sessions whose timestamp is at or after now minus seven
// days. The lower bound is inclusive: a session exactly seven days old
// counts, one a second older does not.
func Weekly(sessions []models.Session, now time.Time) WeeklySummary {
	cutoff := now.AddDate(0, 0, -7)
	var sum WeeklySummary
	for _, s := range sessions {
		if s.CreatedAt.Before(cutoff) {
			continue
		}
		sum.Count++
		sum.TotalMinutes += s.Minutes
	}
	return sum
}

// DayKey normalizes t to local midnight, the grouping key for
// calendar-day aggregation.
func DayKey(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// ByDay groups sessions by calendar day (local time), summing minutes
// per day. Days without sessions are absent from the map.
func ByDay(sessions []models.Session) map[time.Time]int {
	totals := make(map[time.Time]int)
	for _, s := range sessions {
		totals[DayKey(s.CreatedAt)] += s.Minutes
	}
	return totals
}

// CurrentStreak counts consecutive practiced days ending today or
// yesterday. A streak broken today is still alive if yesterday was
// practiced.
func CurrentStreak(byDay map[time.Time]int, now time.Time) int {
	day := DayKey(now)
	if _, ok := byDay[day]; !ok {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for {
		if _, ok := byDay[day]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak finds the longest run of consecutive practiced days
// anywhere in the log.
func LongestStreak(byDay map[time.Time]int) int {
	longest := 0
	for day := range byDay {
		// Only count from the start of a run.
		if _, ok := byDay[day.AddDate(0, 0, -1)]; ok {
			continue
		}
		length := 0
		for d := day; ; d = d.AddDate(0, 0, 1) {
			if _, ok := byDay[d]; !ok {
				break
			}
			length++
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}
