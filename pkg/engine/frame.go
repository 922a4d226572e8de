package engine

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// frameSource is the presentable surface as the frame renderer sees it:
// it hands out one frame per redraw tick and is reconfigured after a
// resize or a lost surface. *GraphicsContext is the live implementation;
// tests use a fake.
type frameSource interface {
	// AcquireFrame returns the next presentable frame. Failures carry an
	// *AcquireError classifying the recovery path.
	AcquireFrame() (Frame, error)

	// Resize reapplies the surface configuration for a new physical size.
	// Zero-area sizes are dropped.
	Resize(size WindowSize)

	// Release frees the underlying device and surface resources.
	Release()
}

// Frame is one acquired presentable target. It lives for a single
// renderer invocation and must end in exactly one Present or Discard.
type Frame interface {
	// BeginPass opens the frame's single render pass, clearing the target
	// to the given color. Results are stored for presentation.
	BeginPass(clear ClearColor) (RenderPass, error)

	// Submit hands the finished command sequence to the queue. The pass
	// must be ended first.
	Submit() error

	// Present shows the submitted frame. Must follow Submit and may be
	// called at most once.
	Present()

	// Discard releases the target without presenting it.
	Discard()
}

// RenderPass records draw commands into the frame's single pass.
type RenderPass interface {
	// BindPipeline selects the pipeline used by subsequent draws.
	BindPipeline(kind PipelineKind)

	// Draw issues one draw call with a synthetic vertex range.
	Draw(vertexCount, instanceCount uint32)

	// End closes the pass. No draws may follow.
	End()
}

// SurfaceErrorKind classifies a failed frame acquisition per its
// recovery path.
type SurfaceErrorKind int

const (
	// SurfaceErrorOther covers transient errors: log and skip the frame.
	SurfaceErrorOther SurfaceErrorKind = iota

	// SurfaceErrorLost means the surface must be reconfigured with the
	// last known window size before the next frame.
	SurfaceErrorLost

	// SurfaceErrorOutdated means the configuration no longer matches the
	// window; recovered the same way as a lost surface.
	SurfaceErrorOutdated

	// SurfaceErrorOutOfMemory is unrecoverable; the session must end.
	SurfaceErrorOutOfMemory
)

// AcquireError wraps a failed surface acquisition with its recovery class.
type AcquireError struct {
	Kind  SurfaceErrorKind
	cause error
}

func (e *AcquireError) Error() string {
	return fmt.Sprintf("surface acquisition failed: %v", e.cause)
}

func (e *AcquireError) Unwrap() error {
	return e.cause
}

// classifySurfaceError maps the error text reported by the surface onto a
// SurfaceErrorKind. wgpu reports the acquisition status by name.
func classifySurfaceError(err error) SurfaceErrorKind {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outofmemory") || strings.Contains(msg, "out of memory"):
		return SurfaceErrorOutOfMemory
	case strings.Contains(msg, "outdated"):
		return SurfaceErrorOutdated
	case strings.Contains(msg, "lost"):
		return SurfaceErrorLost
	default:
		return SurfaceErrorOther
	}
}

// wgpuFrame is the live Frame implementation over an acquired surface
// texture. Only the view is held: the surface keeps ownership of the
// texture itself, so the frame must never release it.
type wgpuFrame struct {
	ctx     *GraphicsContext
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
}

func (f *wgpuFrame) BeginPass(clear ClearColor) (RenderPass, error) {
	encoder, err := f.ctx.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create command encoder: %v", err)
	}
	f.encoder = encoder

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "frame pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       f.view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: clear.R, G: clear.G, B: clear.B, A: clear.A},
		}},
	})
	return &wgpuPass{frame: f, pass: pass}, nil
}

func (f *wgpuFrame) Submit() error {
	cmd, err := f.encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("failed to finish command encoder: %v", err)
	}
	f.ctx.queue.Submit(cmd)
	cmd.Release()
	f.releaseEncoder()
	return nil
}

func (f *wgpuFrame) Present() {
	f.ctx.surface.Present()
	f.releaseTarget()
}

func (f *wgpuFrame) Discard() {
	f.releaseEncoder()
	f.releaseTarget()
}

func (f *wgpuFrame) releaseEncoder() {
	if f.encoder != nil {
		f.encoder.Release()
		f.encoder = nil
	}
}

func (f *wgpuFrame) releaseTarget() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
}

// wgpuPass records into the frame's render pass encoder.
type wgpuPass struct {
	frame *wgpuFrame
	pass  *wgpu.RenderPassEncoder
}

func (p *wgpuPass) BindPipeline(kind PipelineKind) {
	p.pass.SetPipeline(p.frame.ctx.pipes.pipeline(kind))
}

func (p *wgpuPass) Draw(vertexCount, instanceCount uint32) {
	p.pass.Draw(vertexCount, instanceCount, 0, 0)
}

func (p *wgpuPass) End() {
	p.pass.End()
	p.pass.Release()
}
