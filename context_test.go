package prism

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestPickSurfaceFormat(t *testing.T) {
	tests := []struct {
		name      string
		supported []wgpu.TextureFormat
		want      wgpu.TextureFormat
	}{
		{
			name:      "srgb first",
			supported: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm},
			want:      wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			name:      "srgb later",
			supported: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb},
			want:      wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			name:      "no srgb falls back to first",
			supported: []wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm},
			want:      wgpu.TextureFormatRGBA8Unorm,
		},
		{
			name:      "empty falls back to bgra srgb",
			supported: nil,
			want:      wgpu.TextureFormatBGRA8UnormSrgb,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickSurfaceFormat(tt.supported); got != tt.want {
				t.Errorf("pickSurfaceFormat(%v) = %v, want %v", tt.supported, got, tt.want)
			}
		})
	}
}
