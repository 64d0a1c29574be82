// Package input tracks per-frame keyboard/mouse state with edge detection,
// decoupled from any specific backend. The windowing adapter (see the
// window package) drains raw events into a Snapshot each host frame.
package input

// KeyState is one of the four observable states of a key or button.
type KeyState int

const (
	Released KeyState = iota
	JustPressed
	Held
	JustReleased
)

// Key and Button are opaque codes supplied by the windowing collaborator.
// The window package maps ebiten key/mouse-button constants onto these.
type Key int
type Button int

// Modifier flags, combined with bitwise OR.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Snapshot holds the current input state for one host frame.
//
// Contract (spec.md §4.2): each key and button holds one of the four
// KeyState values in a single map. Host events during the frame change it
// via KeyDown/KeyUp/etc.; EndFrame() transitions JustPressed->Held and
// JustReleased->Released. No separate previous-frame key set is kept.
type Snapshot struct {
	keys    map[Key]KeyState
	buttons map[Button]KeyState

	MousePos   Vec2
	prevMouse  Vec2
	mouseSeen  bool
	MouseDelta Vec2
	ScrollDX   float64
	ScrollDY   float64
	Mods       Modifier
}

// Vec2 mirrors math2d.Vec2 without importing it, to keep this package
// dependency-free for the windowing backend to consume directly.
type Vec2 struct{ X, Y float64 }

// NewSnapshot creates an empty input snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		keys:    make(map[Key]KeyState),
		buttons: make(map[Button]KeyState),
	}
}

func (s *Snapshot) stateOf(m map[Key]KeyState, k Key) KeyState {
	return m[k]
}

// KeyDown records a key-press event arriving during this host frame.
func (s *Snapshot) KeyDown(k Key) {
	switch s.keys[k] {
	case Released, JustReleased:
		s.keys[k] = JustPressed
	default:
		// already pressed or already just-pressed this frame; edge case in
		// §4.2: a key pressed and released within the same frame collapses
		// to whichever event landed last, which is what this switch yields.
	}
}

// KeyUp records a key-release event arriving during this host frame.
func (s *Snapshot) KeyUp(k Key) {
	switch s.keys[k] {
	case Held, JustPressed:
		s.keys[k] = JustReleased
	default:
	}
}

// ButtonDown/ButtonUp mirror KeyDown/KeyUp for mouse buttons.
func (s *Snapshot) ButtonDown(b Button) {
	switch s.buttons[b] {
	case Released, JustReleased:
		s.buttons[b] = JustPressed
	default:
	}
}

func (s *Snapshot) ButtonUp(b Button) {
	switch s.buttons[b] {
	case Held, JustPressed:
		s.buttons[b] = JustReleased
	default:
	}
}

// Key returns the current state of k (Released if never observed).
func (s *Snapshot) Key(k Key) KeyState { return s.keys[k] }

// ButtonState returns the current state of b (Released if never observed).
func (s *Snapshot) ButtonState(b Button) KeyState { return s.buttons[b] }

func (s *Snapshot) KeyIsDown(k Key) bool {
	st := s.keys[k]
	return st == JustPressed || st == Held
}

func (s *Snapshot) ButtonIsDown(b Button) bool {
	st := s.buttons[b]
	return st == JustPressed || st == Held
}

// SetMousePos updates the mouse position. The per-frame delta is computed
// by EndFrame() relative to the position at the previous EndFrame() call;
// the first position ever set is also the baseline, so the first frame's
// delta is zero.
func (s *Snapshot) SetMousePos(x, y float64) {
	s.MousePos = Vec2{X: x, Y: y}
	if !s.mouseSeen {
		s.prevMouse = s.MousePos
		s.mouseSeen = true
	}
}

// AddScroll accumulates wheel delta observed during this host frame.
func (s *Snapshot) AddScroll(dx, dy float64) {
	s.ScrollDX += dx
	s.ScrollDY += dy
}

// EndFrame advances edge states and must be called exactly once per host
// frame after event drain and before the next frame's event drain.
func (s *Snapshot) EndFrame() {
	for k, st := range s.keys {
		switch st {
		case JustPressed:
			s.keys[k] = Held
		case JustReleased:
			s.keys[k] = Released
		}
	}
	for b, st := range s.buttons {
		switch st {
		case JustPressed:
			s.buttons[b] = Held
		case JustReleased:
			s.buttons[b] = Released
		}
	}
	s.MouseDelta = Vec2{X: s.MousePos.X - s.prevMouse.X, Y: s.MousePos.Y - s.prevMouse.Y}
	s.prevMouse = s.MousePos
	s.ScrollDX = 0
	s.ScrollDY = 0
}
