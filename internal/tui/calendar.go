package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/stats"
	"github.com/venalora/stillpoint/internal/util"
)

// CalendarModel renders a month grid with practiced days
// highlighted. It reads the session log passively.
type CalendarModel struct {
	ctx      Context
	month    time.Time // first day of the displayed month
	sessions []models.Session
	width    int
}

func NewCalendarModel(ctx Context) CalendarModel {
	now := time.Now()
	m := CalendarModel{
		ctx:   ctx,
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
	}
	m.refresh()
	return m
}

func (m *CalendarModel) refresh() {
	sessions, err := m.ctx.Store.AllSessions(m.ctx.Ctx)
	if err != nil {
		util.LogError("load sessions", err)
		sessions = nil
	}
	m.sessions = sessions
}

func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.month = m.month.AddDate(0, -1, 0)
	case "right", "l":
		m.month = m.month.AddDate(0, 1, 0)
	case "t":
		now := time.Now()
		m.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	}
	return m, nil
}

func (m CalendarModel) View() string {
	theme := CurrentTheme
	byDay := stats.ByDay(m.sessions)
	today := stats.DayKey(time.Now())

	var b strings.Builder
	b.WriteString(theme.Title.Render(m.month.Format("January 2006")))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	// Leading blanks up to the month's first weekday.
	b.WriteString(strings.Repeat("    ", int(m.month.Weekday())))

	monthMinutes := 0
	practicedDays := 0
	daysInMonth := m.month.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := m.month.AddDate(0, 0, day-1)
		cell := fmt.Sprintf("%3d", day)
		if minutes, ok := byDay[date]; ok {
			monthMinutes += minutes
			practicedDays++
			cell = theme.Highlight.Render(cell)
		} else if date.Equal(today) {
			cell = theme.Value.Render(cell)
		} else {
			cell = theme.Dim.Render(cell)
		}
		b.WriteString(cell)
		b.WriteString(" ")
		if date.Weekday() == time.Saturday {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("This month  "))
	b.WriteString(theme.Value.Render(fmt.Sprintf("%d days · %s",
		practicedDays, FormatMinutes(monthMinutes))))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("←/→: month · t: today"))
	return b.String()
}
