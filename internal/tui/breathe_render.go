package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/venalora/stillpoint/internal/breath"
	"github.com/venalora/stillpoint/internal/models"
)

const sphereMaxRadius = 7

var sphereGlyphs = []rune{'░', '▒', '▓', '█'}

func (m BreatheModel) View() string {
	theme := CurrentTheme

	picker := m.renderPicker(theme)
	sphere := renderSphere(m.controller.Visuals(time.Now()), theme)
	status := m.renderStatus(theme)

	width := m.width
	if width <= 0 {
		width = 64
	}
	sphere = lipgloss.PlaceHorizontal(width-4, lipgloss.Center, sphere)

	return picker + "\n" + sphere + "\n" + status
}

func (m BreatheModel) renderPicker(theme Theme) string {
	var modes []string
	for i, mode := range models.Modes {
		label := mode.Title()
		if i == m.modeIdx {
			label = theme.Highlight.Render("[" + label + "]")
		} else {
			label = theme.Dim.Render(" " + label + " ")
		}
		modes = append(modes, label)
	}
	duration := theme.Value.Render(fmt.Sprintf("%d min", m.minutes()))
	if m.running {
		return theme.Label.Render("Mode ") + strings.Join(modes, " ")
	}
	return theme.Label.Render("Mode ") + strings.Join(modes, " ") +
		theme.Label.Render("   Length ") + duration +
		theme.Dim.Render("  (←/→ mode, ↑/↓ length)")
}

func (m BreatheModel) renderStatus(theme Theme) string {
	label := m.controller.Label()
	if m.paused {
		label = "Paused"
	}
	phase := theme.Phase.Render(label)

	var line string
	switch {
	case m.running:
		line = fmt.Sprintf("%s   %s remaining", phase,
			theme.Value.Render(FormatTimeRemaining(m.countdown.Remaining())))
		if m.paused {
			line += theme.Dim.Render("   enter: resume · s: stop")
		} else {
			line += theme.Dim.Render("   p: pause · s: stop")
		}
	case m.message != "":
		line = theme.Message.Render(m.message) + theme.Dim.Render("   enter: begin again")
	default:
		line = theme.Dim.Render("enter: begin")
	}
	return lipgloss.PlaceHorizontal(max(m.width-4, 1), lipgloss.Center, line)
}

// renderSphere draws the breathing sphere onto a fixed-size canvas so
// the layout never jumps between phases. Scale sets the radius, glow
// picks the fill glyph, and rotation sweeps a highlight around the
// rim.
func renderSphere(v breath.Visuals, theme Theme) string {
	radius := v.Scale * sphereMaxRadius
	if radius < 1 {
		radius = 1
	}
	glyph := sphereGlyphs[glowIndex(v.Glow)]

	var b strings.Builder
	for y := -sphereMaxRadius; y <= sphereMaxRadius; y++ {
		for x := -2 * sphereMaxRadius; x <= 2*sphereMaxRadius; x++ {
			// Terminal cells are roughly twice as tall as wide.
			fx := float64(x) / 2
			fy := float64(y)
			dist := math.Sqrt(fx*fx + fy*fy)
			switch {
			case dist > radius:
				b.WriteByte(' ')
			case dist > radius-1.2 && onHighlightArc(fx, fy, v.Rotation):
				b.WriteString(theme.Highlight.Render(string(glyph)))
			case dist > radius-1.2:
				b.WriteString(theme.SphereDim.Render(string(glyph)))
			default:
				b.WriteString(theme.Sphere.Render(string(glyph)))
			}
		}
		if y < sphereMaxRadius {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func glowIndex(glow float64) int {
	idx := int(glow * float64(len(sphereGlyphs)))
	if idx < 0 {
		return 0
	}
	if idx >= len(sphereGlyphs) {
		return len(sphereGlyphs) - 1
	}
	return idx
}

// onHighlightArc reports whether the rim cell at (x, y) falls inside
// the rotating highlight wedge.
func onHighlightArc(x, y, rotation float64) bool {
	angle := math.Atan2(y, x)
	diff := math.Abs(math.Mod(angle-rotation+3*math.Pi, 2*math.Pi) - math.Pi)
	return diff < 0.5
}
