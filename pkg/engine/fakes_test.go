package engine

import (
	"fmt"
	"io"

	"github.com/stevenjmoe/learning-wgpu/internal/logger"
)

func testLogger() *logger.Logger {
	lg := logger.NewLogger("debug")
	lg.SetOutput(io.Discard)
	lg.EnableColors(false)
	return lg
}

// fakeSource stands in for the GPU surface. Acquisition errors are
// consumed one per call, in order; nil means success.
type fakeSource struct {
	acquireErrs []error
	frames      []*fakeFrame
	resizes     []WindowSize
	cfg         SurfaceConfig
	released    bool
}

func (s *fakeSource) AcquireFrame() (Frame, error) {
	if len(s.acquireErrs) > 0 {
		err := s.acquireErrs[0]
		s.acquireErrs = s.acquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	f := &fakeFrame{}
	s.frames = append(s.frames, f)
	return f, nil
}

func (s *fakeSource) Resize(size WindowSize) {
	s.cfg.Apply(size)
	s.resizes = append(s.resizes, size)
}

func (s *fakeSource) Release() {
	s.released = true
}

// fakeFrame records the frame protocol steps in order.
type fakeFrame struct {
	steps     []string
	clear     ClearColor
	beginErr  error
	submitErr error
}

func (f *fakeFrame) BeginPass(clear ClearColor) (RenderPass, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.clear = clear
	f.steps = append(f.steps, "begin")
	return &fakePass{frame: f}, nil
}

func (f *fakeFrame) Submit() error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.steps = append(f.steps, "submit")
	return nil
}

func (f *fakeFrame) Present() {
	f.steps = append(f.steps, "present")
}

func (f *fakeFrame) Discard() {
	f.steps = append(f.steps, "discard")
}

type fakePass struct {
	frame *fakeFrame
}

func (p *fakePass) BindPipeline(kind PipelineKind) {
	p.frame.steps = append(p.frame.steps, "bind:"+kind.String())
}

func (p *fakePass) Draw(vertexCount, instanceCount uint32) {
	p.frame.steps = append(p.frame.steps, fmt.Sprintf("draw:%d:%d", vertexCount, instanceCount))
}

func (p *fakePass) End() {
	p.frame.steps = append(p.frame.steps, "end")
}

// fakeCommander records window commands for the dispatcher tests.
type fakeCommander struct {
	fullscreen bool
	modeCount  int
	calls      []string
}

func (c *fakeCommander) IsFullscreen() bool { return c.fullscreen }

func (c *fakeCommander) SetExclusive(modeIndex int) {
	c.fullscreen = true
	c.calls = append(c.calls, fmt.Sprintf("exclusive:%d", modeIndex))
}

func (c *fakeCommander) SetBorderless() {
	c.fullscreen = true
	c.calls = append(c.calls, "borderless")
}

func (c *fakeCommander) SetWindowed() {
	c.fullscreen = false
	c.calls = append(c.calls, "windowed")
}

func (c *fakeCommander) VideoModeCount() int { return c.modeCount }

func (c *fakeCommander) SetDecorated(on bool) {
	c.calls = append(c.calls, fmt.Sprintf("decorated:%v", on))
}

func (c *fakeCommander) SetMaximized(on bool) {
	c.calls = append(c.calls, fmt.Sprintf("maximized:%v", on))
}

func (c *fakeCommander) SetMinimized(on bool) {
	c.calls = append(c.calls, fmt.Sprintf("minimized:%v", on))
}

func (c *fakeCommander) SetSizeLimits(minW, minH, maxW, maxH int) {
	c.calls = append(c.calls, fmt.Sprintf("limits:%d:%d:%d:%d", minW, minH, maxW, maxH))
}

// fakeWindow is a windowHost whose Poll returns scripted event batches
// and reports closure once the script runs out.
type fakeWindow struct {
	fakeCommander
	batches   [][]Event
	polls     int
	maxPolls  int
	destroyed bool
}

func (w *fakeWindow) Poll() []Event {
	w.polls++
	if len(w.batches) == 0 {
		return nil
	}
	batch := w.batches[0]
	w.batches = w.batches[1:]
	return batch
}

func (w *fakeWindow) ShouldClose() bool {
	return w.maxPolls > 0 && w.polls >= w.maxPolls
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
}
