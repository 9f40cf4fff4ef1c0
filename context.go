package prism

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window abstracts the OS window the renderer draws into. The demo
// satisfies it with a thin GLFW wrapper; tests use fakes. The renderer
// never creates or destroys the window.
type Window interface {
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	// SurfaceDescriptor returns the platform surface descriptor used
	// to create the WebGPU surface.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// Context owns the GPU handle chain: instance, surface, adapter,
// device, and queue, plus the surface format negotiated from the
// surface's capabilities.
type Context struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	format   wgpu.TextureFormat
}

// newContext negotiates the full adapter/device chain against the
// window's surface. The surface is created before adapter selection so
// the adapter is guaranteed to be able to present to it.
func newContext(win Window, opts options) (*Context, error) {
	instance := wgpu.CreateInstance(nil)

	surface := instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface,
		PowerPreference:      opts.powerPref,
		ForceFallbackAdapter: opts.forceFallback,
	})
	if err != nil {
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: opts.label,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		adapter.Release()
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	caps := surface.GetCapabilities(adapter)
	format := pickSurfaceFormat(caps.Formats)

	Logger().Info("graphics context created",
		"format", format.String(),
		"power_preference", opts.powerPref)

	return &Context{
		instance: instance,
		surface:  surface,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
		format:   format,
	}, nil
}

// Format returns the negotiated surface texture format.
func (c *Context) Format() wgpu.TextureFormat { return c.format }

// Device returns the logical device.
func (c *Context) Device() *wgpu.Device { return c.device }

// Queue returns the device's submission queue.
func (c *Context) Queue() *wgpu.Queue { return c.queue }

// pickSurfaceFormat chooses the swapchain format: the first sRGB
// format the surface supports, or the first supported format when no
// sRGB variant is available. Supported is never empty for a surface
// the adapter was selected against.
func pickSurfaceFormat(supported []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range supported {
		if strings.Contains(strings.ToLower(f.String()), "srgb") {
			return f
		}
	}
	if len(supported) > 0 {
		return supported[0]
	}
	return wgpu.TextureFormatBGRA8UnormSrgb
}

// release tears down the handle chain in reverse acquisition order.
// The surface is released here, strictly before the caller destroys
// the OS window.
func (c *Context) release() {
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}
