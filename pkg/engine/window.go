package engine

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stevenjmoe/learning-wgpu/internal/logger"
	"github.com/stevenjmoe/learning-wgpu/pkg/config"
)

// windowHost is the event-loop collaborator: it owns the OS window, pumps
// events, and applies window-level commands.
type windowHost interface {
	WindowCommander

	// Poll pumps the OS message queue and returns the events gathered
	// since the last call.
	Poll() []Event

	// ShouldClose reports whether the window was asked to close.
	ShouldClose() bool

	// Destroy tears the window and the windowing system down.
	Destroy()
}

// glfwWindow wraps a glfw window together with the monitor and video
// modes the fullscreen commands cycle through. Callbacks queue events;
// Poll drains the queue.
type glfwWindow struct {
	win     *glfw.Window
	monitor *glfw.Monitor
	modes   []*glfw.VidMode
	events  []Event
	log     *logger.Logger

	// windowed geometry, restored when leaving fullscreen
	restoreX, restoreY int
	restoreW, restoreH int
}

// newGLFWWindow initializes glfw, creates the window, and enumerates the
// primary monitor's video modes. The window is created without a client
// API context; wgpu attaches to the native handle.
func newGLFWWindow(cfg config.WindowConfig, log *logger.Logger) (*glfwWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("no monitor found")
	}
	modes := monitor.GetVideoModes()
	if len(modes) == 0 {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("no fullscreen video mode found")
	}
	log.Infof("Monitor: %s, %d video modes, first %dx%d@%dHz",
		monitor.GetName(), len(modes), modes[0].Width, modes[0].Height, modes[0].RefreshRate)

	w := &glfwWindow{win: win, monitor: monitor, modes: modes, log: log}
	w.installCallbacks()
	return w, nil
}

// installCallbacks queues window and input events for the loop to drain.
func (w *glfwWindow) installCallbacks() {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, Event{Kind: EventCursorMoved, X: x, Y: y})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		w.events = append(w.events, Event{
			Kind:    EventKey,
			Key:     mapKey(key),
			Pressed: action == glfw.Press,
		})
	})
	// Framebuffer size is the surface's physical size
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, Event{Kind: EventResized, Width: width, Height: height})
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, Event{Kind: EventCloseRequested})
	})
}

// mapKey converts a glfw key to the engine's logical key identity.
func mapKey(key glfw.Key) Key {
	switch key {
	case glfw.KeySpace:
		return KeySpace
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyF:
		return KeyF
	case glfw.KeyB:
		return KeyB
	case glfw.KeyM:
		return KeyM
	case glfw.KeyD:
		return KeyD
	case glfw.KeyX:
		return KeyX
	case glfw.KeyZ:
		return KeyZ
	case glfw.KeyI:
		return KeyI
	case glfw.KeyA:
		return KeyA
	default:
		return KeyUnknown
	}
}

// FramebufferSize returns the current physical size of the window.
func (w *glfwWindow) FramebufferSize() WindowSize {
	width, height := w.win.GetFramebufferSize()
	return WindowSize{Width: uint32(width), Height: uint32(height)}
}

func (w *glfwWindow) Poll() []Event {
	glfw.PollEvents()
	evs := w.events
	w.events = nil
	return evs
}

func (w *glfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *glfwWindow) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *glfwWindow) IsFullscreen() bool {
	return w.win.GetMonitor() != nil
}

// saveGeometry records the windowed position and size so SetWindowed can
// restore them.
func (w *glfwWindow) saveGeometry() {
	w.restoreX, w.restoreY = w.win.GetPos()
	w.restoreW, w.restoreH = w.win.GetSize()
}

func (w *glfwWindow) SetExclusive(modeIndex int) {
	if modeIndex < 0 || modeIndex >= len(w.modes) {
		modeIndex = 0
	}
	mode := w.modes[modeIndex]
	w.saveGeometry()
	w.win.SetMonitor(w.monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

func (w *glfwWindow) SetBorderless() {
	mode := w.monitor.GetVideoMode()
	w.saveGeometry()
	w.win.SetMonitor(w.monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

func (w *glfwWindow) SetWindowed() {
	w.win.SetMonitor(nil, w.restoreX, w.restoreY, w.restoreW, w.restoreH, 0)
}

func (w *glfwWindow) VideoModeCount() int {
	return len(w.modes)
}

func (w *glfwWindow) SetDecorated(on bool) {
	if on {
		w.win.SetAttrib(glfw.Decorated, glfw.True)
	} else {
		w.win.SetAttrib(glfw.Decorated, glfw.False)
	}
}

func (w *glfwWindow) SetMaximized(on bool) {
	if on {
		w.win.Maximize()
	} else {
		w.win.Restore()
	}
}

func (w *glfwWindow) SetMinimized(on bool) {
	if on {
		w.win.Iconify()
	} else {
		w.win.Restore()
	}
}

func (w *glfwWindow) SetSizeLimits(minW, minH, maxW, maxH int) {
	w.win.SetSizeLimits(limit(minW), limit(minH), limit(maxW), limit(maxH))
}

// limit converts the dispatcher's -1 convention to glfw.DontCare.
func limit(v int) int {
	if v < 0 {
		return glfw.DontCare
	}
	return v
}
