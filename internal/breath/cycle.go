// Package breath holds the breathing-cycle state machine and the
// session countdown. Both are pure state advanced by the caller's
// tick loop; neither schedules anything itself, so stopping the loop
// stops them.
package breath

import (
	"math"
	"time"

	"github.com/venalora/stillpoint/internal/models"
)

// Phase is the current stage of a breathing cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInhale
	PhaseHoldIn
	PhaseExhale
	PhaseHoldOut
)

// Label returns the user-facing phase name. Both holds read "Hold";
// idle reads empty.
func (p Phase) Label() string {
	switch p {
	case PhaseInhale:
		return "Inhale"
	case PhaseHoldIn, PhaseHoldOut:
		return "Hold"
	case PhaseExhale:
		return "Exhale"
	}
	return ""
}

// Visuals are the animation parameters the view renders from.
type Visuals struct {
	Scale    float64 // sphere size factor, restScale..expanded
	Glow     float64 // brightness, 0..1
	Rotation float64 // radians, accumulates while active
}

const (
	restScale = 0.60
	fullScale = 1.00
	restGlow  = 0.25
	fullGlow  = 0.85

	// Hold phases superimpose a half-period oscillation; the
	// post-exhale hold swings with smaller amplitude.
	holdInAmplitude  = 0.05
	holdOutAmplitude = 0.02

	rotationRadPerSec = 0.25
)

// Resting returns the neutral parameters an idle sphere renders with.
func Resting() Visuals {
	return Visuals{Scale: restScale, Glow: restGlow}
}

// Controller drives the repeating four-phase cycle. It never runs on
// its own: the owner calls Advance when the current phase's duration
// has elapsed, passing the generation it was given at activation.
// Deactivation bumps the generation, so a tick scheduled before the
// deactivation arrives with a stale generation and is discarded.
type Controller struct {
	pattern    models.CyclePattern
	phase      Phase
	phaseStart time.Time
	startedAt  time.Time
	active     bool
	generation int
}

func NewController() *Controller {
	return &Controller{}
}

// Activate begins the loop at the inhale phase and returns the
// generation for subsequent Advance calls plus the first phase's
// duration.
func (c *Controller) Activate(p models.CyclePattern, now time.Time) (int, time.Duration) {
	c.generation++
	c.pattern = p
	c.phase = PhaseInhale
	c.phaseStart = now
	c.startedAt = now
	c.active = true
	return c.generation, p.Inhale
}

// Deactivate halts the cycle and resets to idle. Idempotent; safe in
// any state. The generation bump invalidates every outstanding tick.
func (c *Controller) Deactivate() {
	c.generation++
	c.active = false
	c.phase = PhaseIdle
}

func (c *Controller) Active() bool    { return c.active }
func (c *Controller) Phase() Phase    { return c.phase }
func (c *Controller) Label() string   { return c.phase.Label() }
func (c *Controller) Generation() int { return c.generation }

// Advance moves to the next phase and returns its duration. It
// returns false when the controller was deactivated (or reactivated)
// since the tick was scheduled; the caller must then drop the chain.
func (c *Controller) Advance(generation int, now time.Time) (time.Duration, bool) {
	if !c.active || generation != c.generation {
		return 0, false
	}
	c.phase = c.next(c.phase)
	c.phaseStart = now
	return c.phaseDuration(c.phase), true
}

// next returns the phase that follows p, skipping zero-duration
// holds entirely.
func (c *Controller) next(p Phase) Phase {
	switch p {
	case PhaseInhale:
		if c.pattern.Hold > 0 {
			return PhaseHoldIn
		}
		return PhaseExhale
	case PhaseHoldIn:
		return PhaseExhale
	case PhaseExhale:
		if c.pattern.HoldAfterExhale > 0 {
			return PhaseHoldOut
		}
		return PhaseInhale
	case PhaseHoldOut:
		return PhaseInhale
	}
	return PhaseInhale
}

func (c *Controller) phaseDuration(p Phase) time.Duration {
	switch p {
	case PhaseInhale:
		return c.pattern.Inhale
	case PhaseHoldIn:
		return c.pattern.Hold
	case PhaseExhale:
		return c.pattern.Exhale
	case PhaseHoldOut:
		return c.pattern.HoldAfterExhale
	}
	return 0
}

// Visuals interpolates the animation parameters for the current
// moment. Idle always yields the resting defaults.
func (c *Controller) Visuals(now time.Time) Visuals {
	if !c.active {
		return Resting()
	}
	progress := c.progress(now)
	v := Visuals{
		Rotation: math.Mod(now.Sub(c.startedAt).Seconds()*rotationRadPerSec, 2*math.Pi),
	}
	switch c.phase {
	case PhaseInhale:
		v.Scale = lerp(restScale, fullScale, progress)
		v.Glow = lerp(restGlow, fullGlow, progress)
	case PhaseHoldIn:
		v.Scale = fullScale + holdInAmplitude*math.Sin(math.Pi*progress)
		v.Glow = fullGlow
	case PhaseExhale:
		v.Scale = lerp(fullScale, restScale, progress)
		v.Glow = lerp(fullGlow, restGlow, progress)
	case PhaseHoldOut:
		v.Scale = restScale + holdOutAmplitude*math.Sin(math.Pi*progress)
		v.Glow = restGlow
	default:
		return Resting()
	}
	return v
}

func (c *Controller) progress(now time.Time) float64 {
	dur := c.phaseDuration(c.phase)
	if dur <= 0 {
		return 1
	}
	p := float64(now.Sub(c.phaseStart)) / float64(dur)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
