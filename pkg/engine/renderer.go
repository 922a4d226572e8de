package engine

import (
	"errors"

	"github.com/stevenjmoe/learning-wgpu/internal/logger"
)

// FrameOutcome reports how a single redraw tick ended.
type FrameOutcome int

const (
	// FramePresented means one frame was submitted and presented.
	FramePresented FrameOutcome = iota

	// FrameSkipped means a transient error was logged and no frame was
	// presented this tick.
	FrameSkipped

	// FrameLostSurface means the caller must reapply the last known
	// window size to the surface before the next tick. No frame was
	// presented.
	FrameLostSurface

	// FrameFatal means the surface is out of memory and the session must
	// terminate.
	FrameFatal
)

// FrameRenderer executes the per-frame protocol: acquire the next surface
// texture, record a single clear+draw pass, submit once, present once.
// No state is carried between frames.
type FrameRenderer struct {
	log *logger.Logger
}

// NewFrameRenderer returns a renderer logging through the given logger.
func NewFrameRenderer(log *logger.Logger) *FrameRenderer {
	return &FrameRenderer{log: log}
}

// RenderFrame produces at most one presented frame from the source. The
// acquired target is always either presented or discarded before this
// returns, so a new acquisition never overlaps an outstanding one.
func (r *FrameRenderer) RenderFrame(src frameSource, state *RenderState) FrameOutcome {
	frame, err := src.AcquireFrame()
	if err != nil {
		var ae *AcquireError
		if errors.As(err, &ae) {
			switch ae.Kind {
			case SurfaceErrorLost, SurfaceErrorOutdated:
				return FrameLostSurface
			case SurfaceErrorOutOfMemory:
				r.log.Errorf("surface out of memory: %v", err)
				return FrameFatal
			}
		}
		r.log.Errorf("skipping frame: %v", err)
		return FrameSkipped
	}

	pass, err := frame.BeginPass(state.Clear)
	if err != nil {
		frame.Discard()
		r.log.Errorf("failed to begin render pass: %v", err)
		return FrameSkipped
	}
	pass.BindPipeline(state.Active)
	pass.Draw(3, 1)
	pass.End()

	if err := frame.Submit(); err != nil {
		frame.Discard()
		r.log.Errorf("frame submission failed: %v", err)
		return FrameSkipped
	}
	frame.Present()
	return FramePresented
}
