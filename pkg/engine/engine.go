package engine

import (
	"fmt"
	"time"

	"github.com/stevenjmoe/learning-wgpu/internal/logger"
	"github.com/stevenjmoe/learning-wgpu/pkg/config"
)

// Engine owns the window, graphics context, pipelines and render state,
// and runs the event/redraw loop. Everything here runs on the one thread
// that owns the device and surface; nothing is shared across goroutines.
type Engine struct {
	cfg      *config.Config
	log      *logger.Logger
	window   windowHost
	surface  frameSource
	state    *RenderState
	input    *InputRouter
	commands *WindowCommandState
	renderer *FrameRenderer
	stats    *frameStats
	running  bool
}

// NewEngine creates the window, acquires the graphics device, and builds
// the draw pipelines. Any error here is fatal to the session.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	window, err := newGLFWWindow(cfg.Window, log)
	if err != nil {
		return nil, err
	}

	size := window.FramebufferSize()
	ctx, err := NewGraphicsContext(window.win, size)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to initialize graphics: %v", err)
	}
	log.Infof("Surface format: %s, %dx%d", ctx.SurfaceFormat(), size.Width, size.Height)

	if _, err := NewPipelineSet(ctx); err != nil {
		ctx.Release()
		window.Destroy()
		return nil, fmt.Errorf("failed to build pipelines: %v", err)
	}

	state := NewRenderState(size)
	return &Engine{
		cfg:      cfg,
		log:      log,
		window:   window,
		surface:  ctx,
		state:    state,
		input:    NewInputRouter(state),
		commands: NewWindowCommandState(),
		renderer: NewFrameRenderer(log),
		stats:    newFrameStats(log),
	}, nil
}

// Run drives the loop until the window closes, Escape is pressed, or the
// surface runs out of memory. One frame is rendered per iteration.
func (e *Engine) Run() {
	e.running = true

	for e.running && !e.window.ShouldClose() {
		start := time.Now()

		for _, ev := range e.window.Poll() {
			if e.tick(ev) == ActionExit {
				e.running = false
			}
		}
		if !e.running {
			break
		}

		e.redraw()
		e.stats.record(time.Since(start))
		e.capFrameRate(start)
	}

	e.cleanup()
}

// tick routes one event: the input router gets first refusal, then the
// window-level handling applies.
func (e *Engine) tick(ev Event) Action {
	if e.input.Handle(ev) {
		return ActionNone
	}

	switch ev.Kind {
	case EventCloseRequested:
		return ActionExit

	case EventResized:
		e.resize(WindowSize{Width: uint32(ev.Width), Height: uint32(ev.Height)})

	case EventKey:
		if ev.Pressed {
			return e.commands.Dispatch(ev.Key, e.window, e.log)
		}
	}
	return ActionNone
}

// resize records the new physical size and reconfigures the surface.
// Zero-area sizes are dropped so a minimized window keeps the last valid
// size for lost-surface recovery.
func (e *Engine) resize(size WindowSize) {
	if size.IsZero() {
		e.log.Debug("ignoring zero-area resize")
		return
	}
	e.state.Size = size
	e.surface.Resize(size)
	e.log.Infof("Resized to %dx%d", size.Width, size.Height)
}

// redraw runs one frame and applies the recovery policy for its outcome.
func (e *Engine) redraw() {
	switch e.renderer.RenderFrame(e.surface, e.state) {
	case FrameLostSurface:
		e.log.Warn("surface lost, reapplying last known size")
		e.surface.Resize(e.state.Size)
	case FrameFatal:
		e.log.Error("unrecoverable render error, shutting down")
		e.running = false
	}
}

// capFrameRate sleeps off the remainder of the frame budget, if a cap is
// configured.
func (e *Engine) capFrameRate(start time.Time) {
	if e.cfg.Window.FrameRate <= 0 {
		return
	}
	target := time.Second / time.Duration(e.cfg.Window.FrameRate)
	if elapsed := time.Since(start); elapsed < target {
		time.Sleep(target - elapsed)
	}
}

// cleanup releases GPU resources and tears the window down.
func (e *Engine) cleanup() {
	e.log.Info("Shutting down")
	e.surface.Release()
	e.window.Destroy()
}
