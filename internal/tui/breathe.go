package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/venalora/stillpoint/internal/breath"
	"github.com/venalora/stillpoint/internal/config"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/util"
)

// BreatheModel is the practice screen: mode and duration pickers, the
// animated sphere, and the session countdown.
type BreatheModel struct {
	ctx        Context
	controller *breath.Controller
	countdown  breath.Countdown
	modeIdx    int
	durIdx     int
	running    bool
	paused     bool
	message    string
	width      int
	height     int
}

func NewBreatheModel(ctx Context) BreatheModel {
	return BreatheModel{
		ctx:        ctx,
		controller: breath.NewController(),
		durIdx:     2, // 5 minutes
	}
}

func (m BreatheModel) mode() models.BreathingMode {
	return models.Modes[m.modeIdx]
}

func (m BreatheModel) minutes() int {
	return config.DurationChoices[m.durIdx]
}

func (m BreatheModel) Update(msg tea.Msg) (BreatheModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case PhaseMsg:
		if next, ok := m.controller.Advance(msg.Generation, time.Now()); ok {
			return m, phaseCmd(msg.Generation, next)
		}
		return m, nil

	case FrameMsg:
		if m.controller.Active() {
			return m, frameCmd()
		}
		return m, nil
	}
	return m, nil
}

func (m BreatheModel) handleKey(msg tea.KeyMsg) (BreatheModel, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if !m.running {
			m.modeIdx = (m.modeIdx + len(models.Modes) - 1) % len(models.Modes)
		}
	case "right", "l":
		if !m.running {
			m.modeIdx = (m.modeIdx + 1) % len(models.Modes)
		}
	case "down", "j":
		if !m.running && m.durIdx > 0 {
			m.durIdx--
		}
	case "up", "k":
		if !m.running && m.durIdx < len(config.DurationChoices)-1 {
			m.durIdx++
		}
	case "enter", " ":
		if !m.running {
			return m.start()
		}
		if m.paused {
			return m.resume()
		}
	case "p":
		if m.running && !m.paused {
			m.paused = true
			m.countdown.Pause()
		}
	case "s", "esc":
		if m.running {
			return m.stop()
		}
	}
	return m, nil
}

// start begins a fresh session: activates the cycle, starts the
// countdown, and begins looping the configured background sound.
func (m BreatheModel) start() (BreatheModel, tea.Cmd) {
	pattern := config.Patterns[m.mode()]
	generation, first := m.controller.Activate(pattern, time.Now())
	m.countdown.Start(m.minutes() * 60)
	m.running = true
	m.paused = false
	m.message = ""
	m.ctx.Player.Play(m.ctx.Settings.Current().Sound)
	return m, tea.Batch(phaseCmd(generation, first), frameCmd())
}

// resume continues a paused countdown. The breathing cycle never
// paused; only the timer did.
func (m BreatheModel) resume() (BreatheModel, tea.Cmd) {
	m.countdown.Start(m.minutes() * 60)
	m.paused = false
	return m, nil
}

// stop abandons the session without recording it. Every scheduled
// continuation dies here: the generation bump kills phase ticks, the
// frame chain sees an inactive controller, and the countdown stops
// consuming ticks.
func (m BreatheModel) stop() (BreatheModel, tea.Cmd) {
	m.countdown.Stop()
	m.controller.Deactivate()
	m.ctx.Player.Stop()
	m.running = false
	m.paused = false
	m.message = "Session stopped."
	return m, nil
}

// handleTick consumes one second of countdown. On expiry the session
// is logged and both loops halt.
func (m BreatheModel) handleTick() (BreatheModel, tea.Cmd) {
	if !m.running {
		return m, nil
	}
	if !m.countdown.Tick() {
		return m, nil
	}
	return m.complete()
}

func (m BreatheModel) complete() (BreatheModel, tea.Cmd) {
	minutes := m.minutes()
	mode := m.mode()
	if _, err := m.ctx.Store.AddSession(m.ctx.Ctx, minutes, mode); err != nil {
		util.LogError("record session", err)
		m.message = "Session finished (could not be saved)."
	} else {
		m.message = fmt.Sprintf("Session complete: %d min %s logged.", minutes, mode.Title())
	}
	m.controller.Deactivate()
	m.ctx.Player.Stop()
	m.running = false
	m.paused = false
	return m, nil
}
