package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hearthlight/engine2d/engine"
	"github.com/hearthlight/engine2d/input"
)

// DrawFunc renders the current frame; the adapter calls it once per
// ebiten.Game.Draw, after the orchestrator's render systems have already
// run against the frame's interpolation alpha.
type DrawFunc func(screen *ebiten.Image)

// Adapter implements ebiten.Game, translating raw host events into an
// input.Snapshot and driving an engine.Orchestrator's Step once per host
// frame, per spec.md §4.1's tick sequence and §4.2's edge-detected input
// contract.
//
// Grounded on the teacher's obj/input.go (direct ebiten/inpututil
// polling) and main.go/game.go's ebiten.Game wiring, generalized behind
// the input and engine packages' backend-neutral contracts.
type Adapter struct {
	orch   *engine.Orchestrator
	Width  int
	Height int

	keyMap    map[ebiten.Key]input.Key
	buttonMap map[ebiten.MouseButton]input.Button

	lastUpdate time.Time
	started    bool

	draw DrawFunc
}

// NewAdapter wraps an engine.Orchestrator for an ebiten host, with a
// window size and a draw callback.
func NewAdapter(o *engine.Orchestrator, width, height int, draw DrawFunc) *Adapter {
	return &Adapter{
		orch:      o,
		Width:     width,
		Height:    height,
		keyMap:    defaultKeyMap(),
		buttonMap: defaultButtonMap(),
		draw:      draw,
	}
}

// RegisterKey adds or overrides a raw ebiten key's mapping onto a logical
// input.Key.
func (a *Adapter) RegisterKey(raw ebiten.Key, mapped input.Key) {
	a.keyMap[raw] = mapped
}

// drainInput polls ebiten's current pressed/released state for every
// mapped key and button and forwards it as press/release events into the
// orchestrator's input snapshot, which derives the edge states itself.
// Polling (rather than an ebiten input callback, which doesn't exist)
// mirrors the teacher's obj/input.go convention of reading ebiten state at
// the top of Update.
func (a *Adapter) drainInput() {
	snap := a.orch.Input
	for raw, mapped := range a.keyMap {
		if ebiten.IsKeyPressed(raw) {
			snap.KeyDown(mapped)
		} else {
			snap.KeyUp(mapped)
		}
	}
	for raw, mapped := range a.buttonMap {
		if ebiten.IsMouseButtonPressed(raw) {
			snap.ButtonDown(mapped)
		} else {
			snap.ButtonUp(mapped)
		}
	}
	mx, my := ebiten.CursorPosition()
	snap.SetMousePos(float64(mx), float64(my))

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		snap.AddScroll(0, wheelY)
	}
}

// Update implements ebiten.Game. It drains input, computes the raw
// wall-clock delta since the previous call, and steps the orchestrator.
func (a *Adapter) Update() error {
	now := time.Now()
	var dt float64
	if a.started {
		dt = now.Sub(a.lastUpdate).Seconds()
	}
	a.lastUpdate = now
	a.started = true

	a.drainInput()
	a.orch.Step(dt)
	return nil
}

// Draw implements ebiten.Game.
func (a *Adapter) Draw(screen *ebiten.Image) {
	if a.draw != nil {
		a.draw(screen)
	}
}

// LayoutF implements ebiten.Game's floating-point layout hook, per the
// teacher's convention of preferring LayoutF over the deprecated integer
// Layout.
func (a *Adapter) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(a.Width), float64(a.Height)
}

// Layout exists to satisfy ebiten.Game; LayoutF takes precedence whenever
// the host supports it.
func (a *Adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.Width, a.Height
}
