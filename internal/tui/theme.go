package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/venalora/stillpoint/internal/models"
)

// Theme bundles the styles one color scheme renders with.
type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Title     lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Sphere    lipgloss.Style
	SphereDim lipgloss.Style
	Phase     lipgloss.Style
	Value     lipgloss.Style
	Label     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Bar       lipgloss.Style
	Message   lipgloss.Style
}

var Themes = map[models.ThemeName]Theme{
	models.ThemePink: {
		Name:      "Pink",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("205"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true).Padding(0, 1),
		Sphere:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		SphereDim: lipgloss.NewStyle().Foreground(lipgloss.Color("132")),
		Phase:     lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("176")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Italic(true),
	},
	models.ThemeBlue: {
		Name:      "Blue",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("39"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Underline(true).Padding(0, 1),
		Sphere:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		SphereDim: lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
		Phase:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Italic(true),
	},
	models.ThemeGreen: {
		Name:      "Green",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("42"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Underline(true).Padding(0, 1),
		Sphere:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		SphereDim: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		Phase:     lipgloss.NewStyle().Foreground(lipgloss.Color("157")).Bold(true),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("157")).Italic(true),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to the default to avoid nil pointer dereferences.
var CurrentTheme = Themes[models.ThemePink]

func SetTheme(name models.ThemeName) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
