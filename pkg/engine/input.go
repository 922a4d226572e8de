package engine

// EventKind discriminates the window and input events delivered by the
// event loop.
type EventKind int

const (
	// EventCursorMoved carries a pointer position in device coordinates.
	EventCursorMoved EventKind = iota

	// EventKey carries a logical key and its pressed/released state.
	EventKey

	// EventResized carries a new physical window size.
	EventResized

	// EventCloseRequested signals that the user asked to close the window.
	EventCloseRequested
)

// Key identifies a logical key, independent of the windowing backend.
// Only the keys the engine reacts to are named; everything else maps to
// KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEscape
	KeyF
	KeyB
	KeyM
	KeyD
	KeyX
	KeyZ
	KeyI
	KeyA
)

// Event is one window or input event.
type Event struct {
	Kind    EventKind
	X, Y    float64 // cursor position for EventCursorMoved
	Key     Key     // logical key for EventKey
	Pressed bool    // key state for EventKey
	Width   int     // new physical width for EventResized
	Height  int     // new physical height for EventResized
}

// InputRouter maps raw events onto render-state mutations. Events it does
// not consume stay with the window-level dispatch.
type InputRouter struct {
	state *RenderState
}

// NewInputRouter returns a router mutating the given render state.
func NewInputRouter(state *RenderState) *InputRouter {
	return &InputRouter{state: state}
}

// Handle applies the first matching rule and reports whether the event
// was consumed.
//
// The cursor rule stores raw device coordinates in the red and green
// channels, which for most positions lie far outside [0,1]. The original
// program behaves this way, so it is kept rather than normalized.
func (ir *InputRouter) Handle(ev Event) bool {
	switch ev.Kind {
	case EventCursorMoved:
		ir.state.Clear = ClearColor{R: ev.X, G: ev.Y, B: 1, A: 1}
		return true

	case EventKey:
		if ev.Key != KeySpace {
			return false
		}
		// Selector follows the key state: released selects the color
		// pipeline, pressed selects the challenge variant.
		if ev.Pressed {
			ir.state.Active = PipelineChallenge
		} else {
			ir.state.Active = PipelineColor
		}
		return true
	}
	return false
}
