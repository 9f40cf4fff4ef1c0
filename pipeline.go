package prism

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// variantSpec describes one pipeline variant of the closed two-entry
// table. Adding a variant means adding a row here, a shader under
// shaders/, and nothing else.
type variantSpec struct {
	mode       Mode
	shaderName string
	shaderSrc  string
	// groups are the binding-set kinds the variant's shaders declare,
	// in group order. Must match the layouts the pipeline is built
	// against.
	groups []bindingKind
	// usesVertexBuffer selects between the indexed mesh draw and the
	// buffer-less procedural draw.
	usesVertexBuffer bool
}

// variantTable enumerates every pipeline the renderer can draw with.
func variantTable() []variantSpec {
	return []variantSpec{
		{
			mode:             ModeTextured,
			shaderName:       "textured",
			shaderSrc:        texturedWGSL,
			groups:           []bindingKind{bindingTexture, bindingCamera},
			usesVertexBuffer: true,
		},
		{
			mode:             ModeProcedural,
			shaderName:       "procedural",
			shaderSrc:        proceduralWGSL,
			groups:           nil,
			usesVertexBuffer: false,
		},
	}
}

// validateLayoutKinds checks that the binding-set kinds a variant
// declares are a prefix-exact match of the kinds available, group by
// group. A mismatch is a programming error surfaced at construction
// rather than a validation failure at first draw.
func validateLayoutKinds(spec variantSpec, available []bindingKind) error {
	if len(spec.groups) > len(available) {
		return fmt.Errorf("%w: variant %q declares %d binding sets, only %d available",
			ErrIncompatibleLayout, spec.shaderName, len(spec.groups), len(available))
	}
	for i, want := range spec.groups {
		if available[i] != want {
			return fmt.Errorf("%w: variant %q group %d is %v, want %v",
				ErrIncompatibleLayout, spec.shaderName, i, available[i], want)
		}
	}
	return nil
}

// Registry holds the compiled pipeline for each variant. All variants
// share the same fixed-function state: triangle list, counter-clockwise
// front faces, back-face culling, replace blending, no depth testing,
// single-sample.
type Registry struct {
	pipelines map[Mode]*wgpu.RenderPipeline
	variants  map[Mode]variantSpec
}

// newRegistry validates and compiles every entry of the variant table
// against the binding-set layouts and the surface format.
func newRegistry(device *wgpu.Device, format wgpu.TextureFormat, bindings *Bindings) (*Registry, error) {
	available := bindings.layoutKinds()
	layouts := []*wgpu.BindGroupLayout{bindings.textureLayout, bindings.cameraLayout}

	r := &Registry{
		pipelines: make(map[Mode]*wgpu.RenderPipeline),
		variants:  make(map[Mode]variantSpec),
	}
	for _, spec := range variantTable() {
		if err := validateLayoutKinds(spec, available); err != nil {
			r.Release()
			return nil, err
		}
		p, err := buildPipeline(device, format, spec, layouts[:len(spec.groups)])
		if err != nil {
			r.Release()
			return nil, fmt.Errorf("prism: build %s pipeline: %w", spec.shaderName, err)
		}
		r.pipelines[spec.mode] = p
		r.variants[spec.mode] = spec
	}
	return r, nil
}

func buildPipeline(device *wgpu.Device, format wgpu.TextureFormat, spec variantSpec, layouts []*wgpu.BindGroupLayout) (*wgpu.RenderPipeline, error) {
	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          spec.shaderName,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: spec.shaderSrc},
	})
	if err != nil {
		return nil, err
	}
	defer shader.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            spec.shaderName + " pipeline layout",
		BindGroupLayouts: layouts,
	})
	if err != nil {
		return nil, err
	}
	defer layout.Release()

	var buffers []wgpu.VertexBufferLayout
	if spec.usesVertexBuffer {
		buffers = []wgpu.VertexBufferLayout{vertexLayout()}
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  spec.shaderName + " pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("pipeline compiled",
		"variant", spec.shaderName,
		"binding_sets", len(spec.groups),
		"vertex_buffer", spec.usesVertexBuffer)
	return pipeline, nil
}

// Pipeline returns the compiled pipeline and its variant description
// for mode.
func (r *Registry) Pipeline(mode Mode) (*wgpu.RenderPipeline, variantSpec) {
	return r.pipelines[mode], r.variants[mode]
}

// Release frees every compiled pipeline.
func (r *Registry) Release() {
	for mode, p := range r.pipelines {
		p.Release()
		delete(r.pipelines, mode)
	}
}
