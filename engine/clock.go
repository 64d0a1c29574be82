// Package engine implements the frame orchestrator from spec.md §4.1: a
// fixed-timestep accumulator clock, the per-host-frame tick sequence, and
// the bootstrap configuration and day-night ambient resource that make up
// the engine's ambient runtime.
//
// Grounded on the teacher's main.go/game.go Update/Draw split (an
// ebiten.Game already separates a variable-rate host callback from a
// simulation step), generalized into an explicit accumulator instead of
// ebiten's built-in fixed 60Hz Update assumption, since the spec requires
// an observable tick-count/alpha contract independent of any one backend.
package engine

const (
	// FixedStep is the constant simulation step, per spec.md §3.
	FixedStep = 1.0 / 60.0
	// MaxDelta caps a single host-frame's raw delta to guard against the
	// "spiral of death" after a long stall.
	MaxDelta = 0.25
	// MaxTicksPerFrame is the safety ceiling on fixed updates run within
	// one host frame, preserving responsiveness under pathological load.
	MaxTicksPerFrame = 8
)

// Clock converts wall-clock deltas into a deterministic number of fixed
// simulation ticks plus a render interpolation alpha (spec.md §4.1).
type Clock struct {
	accumulator float64
	lastTicks   int
	alpha       float64
	wallTime    float64
}

// NewClock returns a clock with a zeroed accumulator.
func NewClock() *Clock {
	return &Clock{}
}

// Advance clamps dtRaw to MaxDelta (or treats it as zero if negative, per
// the "monotonically non-increasing host time" failure semantics),
// accumulates it, and returns the number of fixed ticks to run this host
// frame. Call Alpha afterward to get the render interpolation factor.
func (c *Clock) Advance(dtRaw float64) int {
	if dtRaw < 0 {
		dtRaw = 0
	}
	if dtRaw > MaxDelta {
		dtRaw = MaxDelta
	}
	c.wallTime += dtRaw
	c.accumulator += dtRaw

	ticks := int(c.accumulator / FixedStep)
	c.accumulator -= float64(ticks) * FixedStep
	if ticks > MaxTicksPerFrame {
		// Whole steps beyond the ceiling are dropped, so only the sub-step
		// remainder is carried and alpha stays below 1.
		ticks = MaxTicksPerFrame
	}
	c.lastTicks = ticks
	c.alpha = c.accumulator / FixedStep
	return ticks
}

// Alpha returns the interpolation factor computed by the most recent
// Advance call, in [0, 1).
func (c *Clock) Alpha() float64 { return c.alpha }

// LastTickCount returns the tick count computed by the most recent
// Advance call.
func (c *Clock) LastTickCount() int { return c.lastTicks }

// WallTime returns total elapsed wall-clock seconds seen by Advance,
// after clamping.
func (c *Clock) WallTime() float64 { return c.wallTime }

// Accumulator exposes the current residual accumulator, mostly for tests.
func (c *Clock) Accumulator() float64 { return c.accumulator }
