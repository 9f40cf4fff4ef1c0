package prism

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.powerPref != wgpu.PowerPreferenceHighPerformance {
		t.Errorf("powerPref = %v, want high performance", o.powerPref)
	}
	if o.presentMode != wgpu.PresentModeFifo {
		t.Errorf("presentMode = %v, want fifo", o.presentMode)
	}
	want := wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
	if o.clearColor != want {
		t.Errorf("clearColor = %v, want %v", o.clearColor, want)
	}
	if o.toggleKey != KeySpace {
		t.Errorf("toggleKey = %v, want KeySpace", o.toggleKey)
	}
	if o.forceFallback {
		t.Error("forceFallback = true, want false")
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithLabel("test"),
		WithPowerPreference(wgpu.PowerPreferenceLowPower),
		WithPresentMode(wgpu.PresentModeMailbox),
		WithClearColor(wgpu.Color{R: 1, A: 1}),
		WithToggleKey(Key(84)),
		WithForceFallbackAdapter(),
	} {
		opt(&o)
	}
	if o.label != "test" {
		t.Errorf("label = %q, want %q", o.label, "test")
	}
	if o.powerPref != wgpu.PowerPreferenceLowPower {
		t.Errorf("powerPref = %v, want low power", o.powerPref)
	}
	if o.presentMode != wgpu.PresentModeMailbox {
		t.Errorf("presentMode = %v, want mailbox", o.presentMode)
	}
	if o.clearColor != (wgpu.Color{R: 1, A: 1}) {
		t.Errorf("clearColor = %v, want red", o.clearColor)
	}
	if o.toggleKey != Key(84) {
		t.Errorf("toggleKey = %v, want 84", o.toggleKey)
	}
	if !o.forceFallback {
		t.Error("forceFallback = false, want true")
	}
}
