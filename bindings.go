package prism

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// bindingKind classifies a bind group layout by what it exposes, so a
// pipeline variant can declare which group kinds it expects and the
// registry can check compatibility before pipeline creation.
type bindingKind int

const (
	// bindingTexture is a sampled 2D texture at binding 0 plus a
	// filtering sampler at binding 1, fragment-visible.
	bindingTexture bindingKind = iota
	// bindingCamera is a uniform buffer at binding 0, vertex-visible.
	bindingCamera
)

func (k bindingKind) String() string {
	switch k {
	case bindingTexture:
		return "texture+sampler"
	case bindingCamera:
		return "camera uniform"
	default:
		return "unknown"
	}
}

// cameraUniformSize is the byte size of the camera uniform: one
// mat4x4<f32>.
const cameraUniformSize = 64

// Bindings owns the two binding sets the textured variant consumes:
// group 0 exposes the diffuse texture and its sampler to the fragment
// stage, group 1 exposes the camera view-projection matrix to the
// vertex stage.
type Bindings struct {
	queue *wgpu.Queue

	textureLayout *wgpu.BindGroupLayout
	textureGroup  *wgpu.BindGroup

	cameraLayout *wgpu.BindGroupLayout
	cameraGroup  *wgpu.BindGroup
	cameraBuf    *wgpu.Buffer
}

// newBindings creates both binding sets against tex and an initial
// camera matrix.
func newBindings(device *wgpu.Device, queue *wgpu.Queue, tex *Texture, vp mgl32.Mat4) (*Bindings, error) {
	b := &Bindings{queue: queue}

	var err error
	b.textureLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "prism texture bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	b.textureGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "prism texture bind group",
		Layout: b.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: tex.view},
			{Binding: 1, Sampler: tex.sampler},
		},
	})
	if err != nil {
		b.Release()
		return nil, err
	}

	b.cameraLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "prism camera bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
	if err != nil {
		b.Release()
		return nil, err
	}

	b.cameraBuf, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "prism camera uniform buffer",
		Contents: wgpu.ToBytes(vp[:]),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		b.Release()
		return nil, err
	}

	b.cameraGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "prism camera bind group",
		Layout: b.cameraLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.cameraBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		b.Release()
		return nil, err
	}

	return b, nil
}

// WriteCamera updates the camera uniform in place with WriteBuffer.
// The buffer is never recreated, so the bind group stays valid across
// resizes.
func (b *Bindings) WriteCamera(vp mgl32.Mat4) error {
	return b.queue.WriteBuffer(b.cameraBuf, 0, wgpu.ToBytes(vp[:]))
}

// layoutKinds returns the kinds of the binding sets in group order,
// matching how the textured pipeline lays them out.
func (b *Bindings) layoutKinds() []bindingKind {
	return []bindingKind{bindingTexture, bindingCamera}
}

// Release frees the binding sets and the camera buffer.
func (b *Bindings) Release() {
	if b.cameraGroup != nil {
		b.cameraGroup.Release()
		b.cameraGroup = nil
	}
	if b.cameraBuf != nil {
		b.cameraBuf.Release()
		b.cameraBuf = nil
	}
	if b.cameraLayout != nil {
		b.cameraLayout.Release()
		b.cameraLayout = nil
	}
	if b.textureGroup != nil {
		b.textureGroup.Release()
		b.textureGroup = nil
	}
	if b.textureLayout != nil {
		b.textureLayout.Release()
		b.textureLayout = nil
	}
}
