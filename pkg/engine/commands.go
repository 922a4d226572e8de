package engine

import (
	"github.com/stevenjmoe/learning-wgpu/internal/logger"
)

// Toggled inner-size limits, in physical pixels.
const (
	minInnerWidth  = 100
	minInnerHeight = 100
	maxInnerWidth  = 200
	maxInnerHeight = 200
)

// unconstrained marks a size-limit dimension as unbounded.
const unconstrained = -1

// Action tells the event loop what to do after handling an event.
type Action int

const (
	ActionNone Action = iota
	ActionExit
)

// WindowCommander is the window-mutation surface driven by the command
// dispatcher. glfwWindow implements it over a live window.
type WindowCommander interface {
	// IsFullscreen reports whether the window currently covers a monitor.
	IsFullscreen() bool

	// SetExclusive enters exclusive fullscreen using the indexed video mode.
	SetExclusive(modeIndex int)

	// SetBorderless enters borderless fullscreen on the current monitor.
	SetBorderless()

	// SetWindowed restores the windowed geometry.
	SetWindowed()

	// VideoModeCount returns how many video modes the monitor offers.
	VideoModeCount() int

	SetDecorated(on bool)
	SetMaximized(on bool)
	SetMinimized(on bool)

	// SetSizeLimits constrains the inner size; unconstrained dimensions
	// are passed as -1.
	SetSizeLimits(minW, minH, maxW, maxH int)
}

// WindowCommandState carries the toggle flags for window-level commands.
// The original program kept these as mutable locals captured by the
// event-loop closure; holding them in a struct keeps dispatch a plain
// function of its inputs.
type WindowCommandState struct {
	Decorations bool
	Maximized   bool
	Minimized   bool
	WithMinSize bool
	WithMaxSize bool
	ModeIndex   int
}

// NewWindowCommandState returns the startup command state: decorated,
// windowed, no size limits.
func NewWindowCommandState() *WindowCommandState {
	return &WindowCommandState{Decorations: true}
}

// Dispatch applies the window command bound to a pressed key and returns
// the resulting loop action. Keys without a binding are ignored.
func (s *WindowCommandState) Dispatch(key Key, win WindowCommander, log *logger.Logger) Action {
	switch key {
	case KeyEscape:
		return ActionExit

	case KeyF, KeyB:
		if win.IsFullscreen() {
			win.SetWindowed()
			log.Info("Fullscreen off")
		} else if key == KeyF {
			log.Infof("Entering exclusive fullscreen with video mode %d", s.ModeIndex)
			win.SetExclusive(s.ModeIndex)
		} else {
			log.Info("Entering borderless fullscreen")
			win.SetBorderless()
		}

	case KeyM:
		s.ModeIndex++
		if s.ModeIndex >= win.VideoModeCount() {
			s.ModeIndex = 0
		}
		log.Infof("Video mode %d selected", s.ModeIndex)

	case KeyD:
		s.Decorations = !s.Decorations
		win.SetDecorated(s.Decorations)
		log.Debugf("Decorations: %v", s.Decorations)

	case KeyX:
		s.Maximized = !s.Maximized
		win.SetMaximized(s.Maximized)

	case KeyZ:
		s.Minimized = !s.Minimized
		win.SetMinimized(s.Minimized)

	case KeyI:
		s.WithMinSize = !s.WithMinSize
		s.applySizeLimits(win)
		log.Debugf("Min size limit: %v", s.WithMinSize)

	case KeyA:
		s.WithMaxSize = !s.WithMaxSize
		s.applySizeLimits(win)
		log.Debugf("Max size limit: %v", s.WithMaxSize)
	}
	return ActionNone
}

// applySizeLimits pushes the combined min/max constraints to the window.
// The limits are set together because the windowing layer takes them as
// one call.
func (s *WindowCommandState) applySizeLimits(win WindowCommander) {
	minW, minH := unconstrained, unconstrained
	if s.WithMinSize {
		minW, minH = minInnerWidth, minInnerHeight
	}
	maxW, maxH := unconstrained, unconstrained
	if s.WithMaxSize {
		maxW, maxH = maxInnerWidth, maxInnerHeight
	}
	win.SetSizeLimits(minW, minH, maxW, maxH)
}
