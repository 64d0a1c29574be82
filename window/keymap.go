// Package window adapts an Ebitengine host into the engine's backend-
// agnostic input.Snapshot and drives the engine.Orchestrator's tick
// sequence from ebiten's Update/Draw callbacks.
//
// Grounded on the teacher's obj/input.go (direct ebiten/inpututil
// polling) and main.go/game.go's ebiten.Game wiring, generalized behind
// the input and engine packages' backend-neutral contracts.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hearthlight/engine2d/input"
)

// Common key codes the adapter maps by default. Hosts may extend the
// mapping with RegisterKey for additional bindings.
const (
	KeyUp input.Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyShift
	KeyEscape
	KeyEnter
	KeyInteract
)

// Common mouse buttons.
const (
	ButtonLeft input.Button = iota + 1
	ButtonRight
	ButtonMiddle
)

func defaultKeyMap() map[ebiten.Key]input.Key {
	return map[ebiten.Key]input.Key{
		ebiten.KeyW:          KeyUp,
		ebiten.KeyArrowUp:    KeyUp,
		ebiten.KeyS:          KeyDown,
		ebiten.KeyArrowDown:  KeyDown,
		ebiten.KeyA:          KeyLeft,
		ebiten.KeyArrowLeft:  KeyLeft,
		ebiten.KeyD:          KeyRight,
		ebiten.KeyArrowRight: KeyRight,
		ebiten.KeySpace:      KeySpace,
		ebiten.KeyShiftLeft:  KeyShift,
		ebiten.KeyShiftRight: KeyShift,
		ebiten.KeyEscape:     KeyEscape,
		ebiten.KeyEnter:      KeyEnter,
		ebiten.KeyE:          KeyInteract,
	}
}

func defaultButtonMap() map[ebiten.MouseButton]input.Button {
	return map[ebiten.MouseButton]input.Button{
		ebiten.MouseButtonLeft:   ButtonLeft,
		ebiten.MouseButtonRight:  ButtonRight,
		ebiten.MouseButtonMiddle: ButtonMiddle,
	}
}
