package prism

import "github.com/cogentcore/webgpu/wgpu"

// options holds renderer configuration assembled from Option values.
type options struct {
	label         string
	powerPref     wgpu.PowerPreference
	presentMode   wgpu.PresentMode
	clearColor    wgpu.Color
	toggleKey     Key
	forceFallback bool
}

// defaultOptions returns the baseline configuration: high-performance
// adapter, FIFO presentation, the tutorial's dark blue clear color, and
// Space as the variant toggle key.
func defaultOptions() options {
	return options{
		label:       "prism",
		powerPref:   wgpu.PowerPreferenceHighPerformance,
		presentMode: wgpu.PresentModeFifo,
		clearColor:  wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
		toggleKey:   KeySpace,
	}
}

// Option configures a Renderer at construction time.
type Option func(*options)

// WithLabel sets the debug label attached to the device and the
// resources the renderer creates.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithPowerPreference selects which adapter class to request.
// The default is [wgpu.PowerPreferenceHighPerformance].
func WithPowerPreference(p wgpu.PowerPreference) Option {
	return func(o *options) { o.powerPref = p }
}

// WithPresentMode sets the surface present mode. The default is
// [wgpu.PresentModeFifo], which is universally supported.
func WithPresentMode(m wgpu.PresentMode) Option {
	return func(o *options) { o.presentMode = m }
}

// WithClearColor sets the color the render pass clears to each frame.
// The default is (0.1, 0.2, 0.3, 1.0).
func WithClearColor(c wgpu.Color) Option {
	return func(o *options) { o.clearColor = c }
}

// WithToggleKey sets the key whose release flips the pipeline variant.
// The default is [KeySpace].
func WithToggleKey(k Key) Option {
	return func(o *options) { o.toggleKey = k }
}

// WithForceFallbackAdapter requests a software fallback adapter, which
// is useful in CI environments without a GPU.
func WithForceFallbackAdapter() Option {
	return func(o *options) { o.forceFallback = true }
}
