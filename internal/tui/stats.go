package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/venalora/stillpoint/internal/config"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/stats"
	"github.com/venalora/stillpoint/internal/util"
)

const barWidth = 24

// StatsModel is the read-side screen: weekly summary, streaks, a
// seven-day bar chart, and the report exports.
type StatsModel struct {
	ctx      Context
	sessions []models.Session
	message  string
	width    int

	// reportsDir is overridable for tests.
	reportsDir string
}

func NewStatsModel(ctx Context) StatsModel {
	m := StatsModel{ctx: ctx, reportsDir: util.ReportsDir(config.AppName)}
	m.refresh()
	return m
}

// refresh reloads the session log. A failed load degrades to an
// empty collection; statistics views never surface storage errors.
func (m *StatsModel) refresh() {
	sessions, err := m.ctx.Store.AllSessions(m.ctx.Ctx)
	if err != nil {
		util.LogError("load sessions", err)
		sessions = nil
	}
	m.sessions = sessions
}

func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "r":
		m.refresh()
		m.message = ""
	case "e":
		m.message = m.exportPDF()
	case "j":
		m.message = m.exportJSON()
	}
	return m, nil
}

func (m *StatsModel) exportPDF() string {
	if err := os.MkdirAll(m.reportsDir, 0o755); err != nil {
		util.LogError("create reports dir", err)
		return "Export failed."
	}
	path := filepath.Join(m.reportsDir,
		fmt.Sprintf("sessions_%s.pdf", time.Now().Format("2006-01-02")))
	if err := GeneratePDFReport(m.sessions, path); err != nil {
		util.LogError("pdf export", err)
		return "Export failed."
	}
	return "Exported " + path
}

func (m *StatsModel) exportJSON() string {
	data, err := m.ctx.Store.ExportJSON(m.ctx.Ctx)
	if err != nil {
		util.LogError("json export", err)
		return "Export failed."
	}
	if err := os.MkdirAll(m.reportsDir, 0o755); err != nil {
		util.LogError("create reports dir", err)
		return "Export failed."
	}
	path := filepath.Join(m.reportsDir,
		fmt.Sprintf("sessions_%s.json", time.Now().Format("2006-01-02")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		util.LogError("json export", err)
		return "Export failed."
	}
	return "Exported " + path
}

func (m StatsModel) View() string {
	theme := CurrentTheme
	now := time.Now()
	weekly := stats.Weekly(m.sessions, now)
	byDay := stats.ByDay(m.sessions)

	var b strings.Builder
	b.WriteString(theme.Label.Render("This week  "))
	b.WriteString(theme.Value.Render(fmt.Sprintf("%d sessions · %s",
		weekly.Count, FormatMinutes(weekly.TotalMinutes))))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render("Streak     "))
	b.WriteString(theme.Value.Render(fmt.Sprintf("%d days (best %d)",
		stats.CurrentStreak(byDay, now), stats.LongestStreak(byDay))))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render("All time   "))
	b.WriteString(theme.Value.Render(fmt.Sprintf("%d sessions", len(m.sessions))))
	b.WriteString("\n\n")
	b.WriteString(m.renderWeekChart(theme, byDay, now))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("e: PDF report · j: JSON export · r: refresh"))
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(theme.Message.Render(truncate(m.message, max(m.width-4, 16))))
	}
	return b.String()
}

// renderWeekChart draws one bar per day for the trailing seven days,
// scaled against the busiest day.
func (m StatsModel) renderWeekChart(theme Theme, byDay map[time.Time]int, now time.Time) string {
	today := stats.DayKey(now)
	peak := 0
	for i := 6; i >= 0; i-- {
		if v := byDay[today.AddDate(0, 0, -i)]; v > peak {
			peak = v
		}
	}

	var b strings.Builder
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		minutes := byDay[day]
		length := 0
		if peak > 0 {
			length = minutes * barWidth / peak
		}
		if minutes > 0 && length == 0 {
			length = 1
		}
		bar := theme.Bar.Render(strings.Repeat("█", length)) +
			theme.Dim.Render(strings.Repeat("·", barWidth-length))
		label := day.Format("Mon")
		if i == 0 {
			label = theme.Highlight.Render(label)
		} else {
			label = theme.Label.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", label, bar,
			theme.Dim.Render(FormatMinutes(minutes))))
	}
	return b.String()
}
