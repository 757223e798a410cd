package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/venalora/stillpoint/internal/models"
)

const (
	rowTheme = iota
	rowSound
	rowReminder
	rowCount
)

// PrefsModel is the settings screen. Every change goes through the
// settings store, which persists it and announces it to the rest of
// the app.
type PrefsModel struct {
	ctx     Context
	row     int
	editing bool
	input   textinput.Model
	message string
	width   int
}

func NewPrefsModel(ctx Context) PrefsModel {
	ti := textinput.New()
	ti.Placeholder = "HH:MM"
	ti.CharLimit = 5
	ti.Width = 8
	return PrefsModel{ctx: ctx, input: ti}
}

func (m PrefsModel) Update(msg tea.Msg) (PrefsModel, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < rowCount-1 {
			m.row++
		}
	case "left", "h":
		m.cycle(-1)
	case "right", "l":
		m.cycle(1)
	case "enter":
		if m.row == rowReminder {
			m.editing = true
			m.message = ""
			if r := m.ctx.Settings.Current().Reminder; r != nil {
				m.input.SetValue(r.String())
			} else {
				m.input.SetValue("")
			}
			m.input.Focus()
			return m, textinput.Blink
		}
	case "c", "x":
		if m.row == rowReminder {
			m.ctx.Settings.SetReminder(m.ctx.Ctx, nil)
			m.message = "Reminder cleared."
		}
	}
	return m, nil
}

// cycle steps the value of the focused row. The reminder row is
// edited as text, not cycled.
func (m *PrefsModel) cycle(dir int) {
	current := m.ctx.Settings.Current()
	switch m.row {
	case rowTheme:
		idx := indexOfTheme(current.Theme)
		idx = (idx + dir + len(models.ThemeNames)) % len(models.ThemeNames)
		m.ctx.Settings.SetTheme(m.ctx.Ctx, models.ThemeNames[idx])
	case rowSound:
		idx := indexOfSound(current.Sound)
		idx = (idx + dir + len(models.Sounds)) % len(models.Sounds)
		m.ctx.Settings.SetSound(m.ctx.Ctx, models.Sounds[idx])
	}
}

func (m PrefsModel) updateEditing(msg tea.Msg) (PrefsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			t, err := models.ParseClockTime(m.input.Value())
			if err != nil {
				m.message = "Enter a time as HH:MM (24h)."
				return m, nil
			}
			m.ctx.Settings.SetReminder(m.ctx.Ctx, &t)
			m.editing = false
			m.input.Blur()
			m.message = "Daily reminder set for " + t.String() + "."
			return m, nil
		case "esc":
			m.editing = false
			m.input.Blur()
			m.message = ""
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PrefsModel) View() string {
	theme := CurrentTheme
	current := m.ctx.Settings.Current()

	reminder := "Off"
	if current.Reminder != nil {
		reminder = "Daily at " + current.Reminder.String()
	}
	if m.editing {
		reminder = m.input.View()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Theme", Themes[current.Theme].Name},
		{"Sound", current.Sound.Title()},
		{"Reminder", reminder},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		label := theme.Label.Render(row.label)
		value := theme.Value.Render(row.value)
		if i == m.row {
			marker = theme.Highlight.Render("> ")
			label = theme.Highlight.Render(row.label)
		}
		b.WriteString(marker + label + strings.Repeat(" ", 10-len(row.label)) + value + "\n")
	}
	b.WriteString("\n")
	if m.editing {
		b.WriteString(theme.Dim.Render("enter: save · esc: cancel"))
	} else {
		b.WriteString(theme.Dim.Render("←/→: change · enter: edit reminder · c: clear reminder"))
	}
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(theme.Message.Render(m.message))
	}
	return b.String()
}

func indexOfTheme(t models.ThemeName) int {
	for i, name := range models.ThemeNames {
		if name == t {
			return i
		}
	}
	return 0
}

func indexOfSound(s models.Sound) int {
	for i, sound := range models.Sounds {
		if sound == s {
			return i
		}
	}
	return 0
}
