package engine

// ClearColor is the RGBA clear value applied by the frame's render pass.
// Channels are conventionally in [0,1], but the pointer mapping stores raw
// device coordinates (see InputRouter.Handle).
type ClearColor struct {
	R, G, B, A float64
}

// WindowSize is a physical window size in pixels.
type WindowSize struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero. Minimized windows
// report a zero-area size.
func (s WindowSize) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// PipelineKind selects one of the precompiled draw pipelines.
type PipelineKind int

const (
	// PipelineChallenge draws the position-derived challenge pattern.
	// This is the startup selection.
	PipelineChallenge PipelineKind = iota

	// PipelineColor draws the fixed-color triangle.
	PipelineColor
)

// String returns a readable name for log lines
func (k PipelineKind) String() string {
	if k == PipelineColor {
		return "color"
	}
	return "challenge"
}

// RenderState is the per-session mutable state read by the frame renderer:
// the current clear color, the active pipeline, and the last size observed
// from a resize event (used to recover a lost surface).
type RenderState struct {
	Clear  ClearColor
	Active PipelineKind
	Size   WindowSize
}

// NewRenderState returns the startup render state: black clear color and
// the challenge pipeline selected.
func NewRenderState(size WindowSize) *RenderState {
	return &RenderState{
		Clear:  ClearColor{A: 1},
		Active: PipelineChallenge,
		Size:   size,
	}
}
