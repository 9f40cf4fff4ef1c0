package prism

import "github.com/go-gl/mathgl/mgl32"

// glToWGPU remaps clip-space depth from OpenGL's [-1, 1] range, which
// mgl32's projection produces, to WebGPU's [0, 1].
var glToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is a simple perspective look-at camera. It exists to feed the
// vertex shader's uniform; the scene itself is a single static mesh.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewCamera returns the default camera: one unit up and two units back
// from the origin, looking at the origin, with a 45 degree field of
// view at the given aspect ratio.
func NewCamera(aspect float32) *Camera {
	return &Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   45,
		Aspect: aspect,
		Near:   0.1,
		Far:    100,
	}
}

// SetAspect updates the aspect ratio after a resize.
func (c *Camera) SetAspect(aspect float32) { c.Aspect = aspect }

// ViewProjection returns the combined view-projection matrix in
// column-major order, ready for a WGSL mat4x4<f32> uniform.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye, c.Center, c.Up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
	return glToWGPU.Mul4(proj).Mul4(view)
}
