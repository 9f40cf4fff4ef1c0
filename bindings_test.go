package prism

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraUniformSize(t *testing.T) {
	if got := unsafe.Sizeof(mgl32.Mat4{}); got != cameraUniformSize {
		t.Errorf("mat4 uniform is %d bytes, want %d", got, cameraUniformSize)
	}
}

func TestLayoutKindsOrder(t *testing.T) {
	kinds := (&Bindings{}).layoutKinds()
	want := []bindingKind{bindingTexture, bindingCamera}
	if len(kinds) != len(want) {
		t.Fatalf("len(layoutKinds) = %d, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("layoutKinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}
