package engine

import (
	"github.com/hearthlight/engine2d/ecs"
	"github.com/hearthlight/engine2d/input"
)

// RenderSystem draws read-only world state once per host frame, after all
// fixed-update ticks for that frame have run. alpha is the interpolation
// factor from spec.md §4.1 step 4.
type RenderSystem interface {
	Render(w *ecs.World, alpha float64)
}

// Orchestrator drives the tick sequence documented in spec.md §4.1:
// drain input, advance the clock, run fixed-update systems zero or more
// times, then run render systems once with the interpolation alpha.
//
// Grounded on the teacher's Game.Update/Draw split in game.go, generalized
// so the fixed/variable split is explicit instead of implicit in ebiten's
// callback cadence.
type Orchestrator struct {
	World  *ecs.World
	Clock  *Clock
	Input  *input.Snapshot
	render []RenderSystem
}

// NewOrchestrator wires a world, clock, and input snapshot together. Fixed
// systems are registered on World directly via World.AddSystem; render
// systems are registered here via AddRenderSystem.
func NewOrchestrator(w *ecs.World, in *input.Snapshot) *Orchestrator {
	return &Orchestrator{World: w, Clock: NewClock(), Input: in}
}

// AddRenderSystem appends a render system to the render pass order.
func (o *Orchestrator) AddRenderSystem(s RenderSystem) {
	if s != nil {
		o.render = append(o.render, s)
	}
}

// Step runs exactly one host frame per spec.md §4.1's tick sequence:
//  1. drain input events into the snapshot (the caller does this before
//     calling Step, via Input's Set*/Add* methods, since event drain is
//     backend-specific);
//  2. advance the clock;
//  3. run fixed-update systems once per computed tick;
//  4. run render systems once with the resulting alpha;
//  5. end the input frame, transitioning edge states.
//
// dtRaw is the raw wall-clock delta since the previous Step call.
func (o *Orchestrator) Step(dtRaw float64) {
	ticks := o.Clock.Advance(dtRaw)
	for i := 0; i < ticks; i++ {
		o.World.RunSystems()
	}
	alpha := o.Clock.Alpha()
	for _, rs := range o.render {
		rs.Render(o.World, alpha)
	}
	o.Input.EndFrame()
}
