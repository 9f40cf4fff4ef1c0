package prism

import "github.com/cogentcore/webgpu/wgpu"

// surfaceConfigurer is the slice of *wgpu.Surface the swapchain needs,
// kept as an interface so the resize state machine is testable without
// a device.
type surfaceConfigurer interface {
	Configure(adapter *wgpu.Adapter, device *wgpu.Device, config *wgpu.SurfaceConfiguration)
}

var _ surfaceConfigurer = (*wgpu.Surface)(nil)

// Swapchain tracks the surface configuration and applies resizes.
// A resize where either dimension is zero (minimized window) is a
// complete no-op: no reconfiguration, no state change. Any valid
// resize reconfigures the surface, even when the size is unchanged,
// so that a resize issued to recover a lost or outdated surface
// always results in a fresh configuration.
type Swapchain struct {
	surface surfaceConfigurer
	adapter *wgpu.Adapter
	device  *wgpu.Device
	config  wgpu.SurfaceConfiguration
}

// newSwapchain builds a swapchain around the context's surface and
// applies the initial configuration.
func newSwapchain(ctx *Context, width, height int, opts options) *Swapchain {
	caps := ctx.surface.GetCapabilities(ctx.adapter)
	sc := &Swapchain{
		surface: ctx.surface,
		adapter: ctx.adapter,
		device:  ctx.device,
		config: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      ctx.format,
			PresentMode: opts.presentMode,
			AlphaMode:   pickAlphaMode(caps.AlphaModes),
		},
	}
	sc.Resize(width, height)
	return sc
}

// pickAlphaMode chooses the composite alpha mode: the first mode the
// surface reports, or automatic selection when the driver reports
// none.
func pickAlphaMode(supported []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(supported) > 0 {
		return supported[0]
	}
	return wgpu.CompositeAlphaModeAuto
}

// Resize applies a new surface size. It returns false without touching
// anything when either dimension is zero, and true after the surface
// has been reconfigured otherwise.
func (s *Swapchain) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	s.config.Width = uint32(width)
	s.config.Height = uint32(height)
	s.surface.Configure(s.adapter, s.device, &s.config)
	Logger().Info("swapchain configured",
		"width", width,
		"height", height,
		"present_mode", s.config.PresentMode)
	return true
}

// Size returns the dimensions of the current configuration.
func (s *Swapchain) Size() (width, height int) {
	return int(s.config.Width), int(s.config.Height)
}

// AspectRatio returns width over height of the current configuration,
// or 1 before any valid configuration has been applied.
func (s *Swapchain) AspectRatio() float32 {
	if s.config.Height == 0 {
		return 1
	}
	return float32(s.config.Width) / float32(s.config.Height)
}
