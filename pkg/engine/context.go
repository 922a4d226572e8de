package engine

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SurfaceConfig is the mutable configuration bound to the presentable
// surface. Width and height track the window's physical size; format and
// modes are negotiated once at startup and never change afterwards.
type SurfaceConfig struct {
	Width       uint32
	Height      uint32
	Format      wgpu.TextureFormat
	PresentMode wgpu.PresentMode
	AlphaMode   wgpu.CompositeAlphaMode
}

// Apply updates the config for a new physical size and reports whether
// the surface must be reconfigured. Zero-area sizes leave the config
// untouched, so a minimized window never produces an invalid surface.
func (c *SurfaceConfig) Apply(size WindowSize) bool {
	if size.IsZero() {
		return false
	}
	c.Width = size.Width
	c.Height = size.Height
	return true
}

// GraphicsContext owns the wgpu device, submission queue and presentable
// surface for one window. It is created once per session and must only be
// used from the thread running the event loop.
type GraphicsContext struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	caps     wgpu.SurfaceCapabilities
	config   SurfaceConfig
	pipes    *PipelineSet
}

// NewGraphicsContext performs the one-time adapter and device acquisition
// for the given window and configures the surface at the initial size.
// Any failure here is fatal: the session cannot continue without a
// compatible adapter, device, and surface format.
func NewGraphicsContext(window *glfw.Window, size WindowSize) (*GraphicsContext, error) {
	instance := wgpu.CreateInstance(nil)
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface,
		PowerPreference:      wgpu.PowerPreferenceUndefined,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		return nil, fmt.Errorf("no compatible adapter: %v", err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire device: %v", err)
	}

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.PresentModes) == 0 || len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("surface reports no usable capabilities")
	}

	ctx := &GraphicsContext{
		instance: instance,
		surface:  surface,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
		caps:     caps,
		config: SurfaceConfig{
			Format:      preferredFormat(caps.Formats),
			PresentMode: caps.PresentModes[0],
			AlphaMode:   caps.AlphaModes[0],
		},
	}

	if !ctx.config.Apply(size) {
		return nil, fmt.Errorf("initial window size %dx%d is zero-area", size.Width, size.Height)
	}
	ctx.configure()
	return ctx, nil
}

// preferredFormat picks the first sRGB-capable format, falling back to
// the first reported format. Order-preserving, so the choice is
// deterministic for a given capability list.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if strings.HasSuffix(f.String(), "Srgb") {
			return f
		}
	}
	return formats[0]
}

// SurfaceFormat returns the negotiated surface format.
func (c *GraphicsContext) SurfaceFormat() wgpu.TextureFormat {
	return c.config.Format
}

// Config returns the current surface configuration.
func (c *GraphicsContext) Config() SurfaceConfig {
	return c.config
}

// configure binds the current config to the surface.
func (c *GraphicsContext) configure() {
	c.surface.Configure(c.adapter, c.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      c.config.Format,
		Width:       c.config.Width,
		Height:      c.config.Height,
		PresentMode: c.config.PresentMode,
		AlphaMode:   c.config.AlphaMode,
	})
}

// Resize reapplies the surface configuration for a new physical size.
// A zero-area request is a no-op. Reapplying the same size is allowed.
// Must be called from the thread owning the device and surface.
func (c *GraphicsContext) Resize(size WindowSize) {
	if !c.config.Apply(size) {
		return
	}
	c.configure()
}

// AcquireFrame returns the next presentable frame from the surface.
// The surface texture stays owned by the surface; only views created
// from it are released by the frame.
func (c *GraphicsContext) AcquireFrame() (Frame, error) {
	texture, err := c.surface.GetCurrentTexture()
	if err != nil {
		return nil, &AcquireError{Kind: classifySurfaceError(err), cause: err}
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, &AcquireError{Kind: SurfaceErrorOther, cause: err}
	}
	return &wgpuFrame{ctx: c, view: view}, nil
}

// Release frees the pipelines, device, and surface. The context must not
// be used afterwards.
func (c *GraphicsContext) Release() {
	if c.pipes != nil {
		c.pipes.Release()
		c.pipes = nil
	}
	c.queue.Release()
	c.device.Release()
	c.adapter.Release()
	c.surface.Release()
	c.instance.Release()
}
