package stats

import (
	"testing"
	"time"

	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/testutil"
)

func TestWeeklyEmptyLog(t *testing.T) {
	sum := Weekly(nil, time.Now())
	if sum.Count != 0 || sum.TotalMinutes != 0 {
		t.Fatalf("empty log: got %+v, want zero summary", sum)
	}
}

func TestWeeklyBoundary(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.Local)
	sessions := []models.Session{
		testutil.NewSession().At(now.AddDate(0, 0, -6)).WithMinutes(5).Build(),
		testutil.NewSession().At(now.AddDate(0, 0, -7)).WithMinutes(10).Build(),
		testutil.NewSession().At(now.AddDate(0, 0, -7).Add(-time.Second)).WithMinutes(20).Build(),
	}
	sum := Weekly(sessions, now)
	if sum.Count != 2 {
		t.Errorf("count = %d, want 2 (exactly-7d-old session is inclusive)", sum.Count)
	}
	if sum.TotalMinutes != 15 {
		t.Errorf("total = %d, want 15", sum.TotalMinutes)
	}
}

func TestByDaySumsSameCalendarDay(t *testing.T) {
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	sessions := []models.Session{
		testutil.NewSession().At(day.Add(8 * time.Hour)).WithMinutes(5).Build(),
		testutil.NewSession().At(day.Add(21 * time.Hour)).WithMinutes(10).Build(),
	}
	totals := ByDay(sessions)
	if len(totals) != 1 {
		t.Fatalf("expected 1 day, got %d", len(totals))
	}
	if got := totals[day]; got != 15 {
		t.Errorf("day total = %d, want 15", got)
	}
}

func TestByDayAbsentDaysAreAbsent(t *testing.T) {
	totals := ByDay(nil)
	if len(totals) != 0 {
		t.Fatalf("expected empty map, got %v", totals)
	}
	s := testutil.NewSession().At(time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)).Build()
	totals = ByDay([]models.Session{s})
	if _, ok := totals[time.Date(2026, 8, 21, 0, 0, 0, 0, time.Local)]; ok {
		t.Error("unpracticed day must not be present with value 0")
	}
}

func TestByDayCrossesMidnightBoundary(t *testing.T) {
	beforeMidnight := time.Date(2026, 8, 20, 23, 59, 0, 0, time.Local)
	afterMidnight := time.Date(2026, 8, 21, 0, 1, 0, 0, time.Local)
	totals := ByDay([]models.Session{
		testutil.NewSession().At(beforeMidnight).WithMinutes(3).Build(),
		testutil.NewSession().At(afterMidnight).WithMinutes(4).Build(),
	})
	if len(totals) != 2 {
		t.Fatalf("expected sessions on both sides of midnight to split, got %v", totals)
	}
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 0, 0, 0, time.Local)
	today := DayKey(now)
	byDay := map[time.Time]int{
		today:                5,
		today.AddDate(0, 0, -1): 5,
		today.AddDate(0, 0, -2): 5,
		// gap at -3
		today.AddDate(0, 0, -4): 5,
	}
	if got := CurrentStreak(byDay, now); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
}

func TestCurrentStreakAliveWithoutToday(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)
	yesterday := DayKey(now).AddDate(0, 0, -1)
	byDay := map[time.Time]int{
		yesterday:                10,
		yesterday.AddDate(0, 0, -1): 10,
	}
	if got := CurrentStreak(byDay, now); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2 (yesterday keeps it alive)", got)
	}
}

func TestCurrentStreakEmpty(t *testing.T) {
	if got := CurrentStreak(map[time.Time]int{}, time.Now()); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
}

func TestLongestStreak(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	byDay := map[time.Time]int{}
	// Run of 2.
	byDay[base] = 1
	byDay[base.AddDate(0, 0, 1)] = 1
	// Run of 4.
	for i := 5; i < 9; i++ {
		byDay[base.AddDate(0, 0, i)] = 1
	}
	if got := LongestStreak(byDay); got != 4 {
		t.Errorf("LongestStreak = %d, want 4", got)
	}
	if got := LongestStreak(map[time.Time]int{}); got != 0 {
		t.Errorf("LongestStreak on empty = %d, want 0", got)
	}
}

func TestDayKeyNormalizesToLocalMidnight(t *testing.T) {
	ts := time.Date(2026, 8, 20, 17, 45, 12, 0, time.Local)
	key := DayKey(ts)
	if key.Hour() != 0 || key.Minute() != 0 || key.Second() != 0 {
		t.Errorf("DayKey not at midnight: %v", key)
	}
	if key.Day() != 20 {
		t.Errorf("DayKey moved the date: %v", key)
	}
}
