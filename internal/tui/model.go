package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/venalora/stillpoint/internal/audio"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/notify"
	"github.com/venalora/stillpoint/internal/settings"
)

// Tab identifies the active screen.
type Tab int

const (
	TabBreathe Tab = iota
	TabStats
	TabCalendar
	TabSettings
)

var tabTitles = []string{"Breathe", "Stats", "Calendar", "Settings"}

// --- Messages ---

// TickMsg is the one-second heartbeat. It drives the session
// countdown and the reminder scheduler.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// FrameMsg redraws the breathing animation between phase boundaries.
// Scheduled only while a cycle is active.
type FrameMsg time.Time

const frameInterval = time.Second / 10

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// PhaseMsg advances the breathing cycle. It carries the controller
// generation it was scheduled under; the controller discards it if a
// deactivation happened in between.
type PhaseMsg struct {
	Generation int
}

func phaseCmd(generation int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return PhaseMsg{Generation: generation} })
}

// --- Model ---

// MainModel is the root bubbletea model that routes between tabs.
type MainModel struct {
	ctx       Context
	tab       Tab
	breathe   BreatheModel
	stats     StatsModel
	calendar  CalendarModel
	prefs     PrefsModel
	scheduler *notify.Scheduler
	width     int
	height    int
}

// Context bundles the collaborators the tabs share. Explicit rather
// than ambient so tests can swap any of them.
type Context struct {
	Ctx      context.Context
	Store    Store
	Settings *settings.Store
	Player   *audio.Player
}

func NewMainModel(ctx Context, scheduler *notify.Scheduler) MainModel {
	ctx.Settings.Load(ctx.Ctx)
	applyPreferences(scheduler, ctx.Settings.Current())
	ctx.Settings.Subscribe(func(s models.Settings) {
		applyPreferences(scheduler, s)
	})

	m := MainModel{
		ctx:       ctx,
		scheduler: scheduler,
		breathe:   NewBreatheModel(ctx),
		stats:     NewStatsModel(ctx),
		calendar:  NewCalendarModel(ctx),
		prefs:     NewPrefsModel(ctx),
	}
	return m
}

// applyPreferences pushes a settings change into the theme registry
// and the reminder scheduler. The settings store itself never touches
// either; it only announces the change.
func applyPreferences(scheduler *notify.Scheduler, s models.Settings) {
	SetTheme(s.Theme)
	if s.Reminder == nil {
		scheduler.Cancel()
	} else {
		scheduler.Schedule(*s.Reminder)
	}
}

func (m MainModel) Init() tea.Cmd {
	return tickCmd()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.breathe.width, m.breathe.height = msg.Width, msg.Height
		m.stats.width = msg.Width
		m.calendar.width = msg.Width
		m.prefs.width = msg.Width
		return m, nil

	case TickMsg:
		m.scheduler.Tick(time.Time(msg))
		var cmd tea.Cmd
		m.breathe, cmd = m.breathe.handleTick()
		return m, tea.Batch(tickCmd(), cmd)

	case FrameMsg, PhaseMsg:
		var cmd tea.Cmd
		m.breathe, cmd = m.breathe.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if handled, next, cmd := m.handleTabKey(msg); handled {
			return next, cmd
		}
	}

	return m.updateActiveTab(msg)
}

// handleTabKey handles global navigation. Keys are not global while
// the settings tab is capturing text.
func (m MainModel) handleTabKey(msg tea.KeyMsg) (bool, MainModel, tea.Cmd) {
	if m.tab == TabSettings && m.prefs.editing {
		return false, m, nil
	}
	switch msg.String() {
	case "q":
		return true, m, tea.Quit
	case "tab":
		return true, m.switchTab((m.tab + 1) % Tab(len(tabTitles))), nil
	case "shift+tab":
		return true, m.switchTab((m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))), nil
	case "1":
		return true, m.switchTab(TabBreathe), nil
	case "2":
		return true, m.switchTab(TabStats), nil
	case "3":
		return true, m.switchTab(TabCalendar), nil
	case "4":
		return true, m.switchTab(TabSettings), nil
	}
	return false, m, nil
}

func (m MainModel) switchTab(tab Tab) MainModel {
	m.tab = tab
	// Stats views read the session log passively; refresh on entry.
	switch tab {
	case TabStats:
		m.stats.refresh()
	case TabCalendar:
		m.calendar.refresh()
	}
	return m
}

func (m MainModel) updateActiveTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case TabBreathe:
		m.breathe, cmd = m.breathe.Update(msg)
	case TabStats:
		m.stats, cmd = m.stats.Update(msg)
	case TabCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	case TabSettings:
		m.prefs, cmd = m.prefs.Update(msg)
	}
	return m, cmd
}

func (m MainModel) View() string {
	theme := CurrentTheme

	var tabs []string
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			tabs = append(tabs, theme.TabActive.Render(title))
		} else {
			tabs = append(tabs, theme.Tab.Render(title))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Title.Render("stillpoint"), "  ", strings.Join(tabs, " "))

	var body string
	switch m.tab {
	case TabBreathe:
		body = m.breathe.View()
	case TabStats:
		body = m.stats.View()
	case TabCalendar:
		body = m.calendar.View()
	case TabSettings:
		body = m.prefs.View()
	}

	footer := theme.Dim.Render("tab: switch · q: quit · v" + versionLabel())

	return theme.Base.Render(header + "\n\n" + body + "\n\n" + footer)
}
