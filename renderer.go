package prism

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// renderPass is the slice of *wgpu.RenderPassEncoder the per-frame
// draw encoding uses, kept as an interface so the variant dispatch is
// testable without a device.
type renderPass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64)
	SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
}

var _ renderPass = (*wgpu.RenderPassEncoder)(nil)

// frameSource is the slice of *wgpu.Surface the per-frame acquire and
// present path uses, kept as an interface so the skip-frame error
// handling is testable without a device.
type frameSource interface {
	GetCurrentTexture() (*wgpu.Texture, error)
	Present()
}

var _ frameSource = (*wgpu.Surface)(nil)

// Renderer ties the GPU context, swapchain, geometry, bindings, and
// pipeline registry together and drives the per-frame state machine.
//
// A Renderer is single-threaded: construct it and call Resize,
// HandleInput, Render, and Close from the thread that runs the window
// event loop.
type Renderer struct {
	win       Window
	ctx       *Context
	frames    frameSource
	swapchain *Swapchain
	mesh      *Mesh
	texture   *Texture
	bindings  *Bindings
	registry  *Registry
	camera    *Camera
	toggle    *Toggle

	clearColor wgpu.Color
	closed     bool
}

// New creates a renderer drawing into win, with img as the diffuse
// texture for the textured variant. Construction performs the full
// startup sequence: context negotiation, initial swapchain
// configuration, geometry and texture upload, binding-set creation,
// and compilation of both pipeline variants. Any failure is fatal and
// leaves nothing allocated.
func New(win Window, img *Image, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, err := newContext(win, o)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		win:        win,
		ctx:        ctx,
		frames:     ctx.surface,
		clearColor: o.clearColor,
		toggle:     NewToggle(o.toggleKey),
	}

	width, height := win.FramebufferSize()
	r.swapchain = newSwapchain(ctx, width, height, o)

	r.mesh, err = NewMesh(ctx.device)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("prism: upload mesh: %w", err)
	}

	r.texture, err = NewTexture(ctx.device, ctx.queue, img)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("prism: upload texture: %w", err)
	}

	r.camera = NewCamera(r.swapchain.AspectRatio())
	r.bindings, err = newBindings(ctx.device, ctx.queue, r.texture, r.camera.ViewProjection())
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("prism: create bindings: %w", err)
	}

	r.registry, err = newRegistry(ctx.device, ctx.format, r.bindings)
	if err != nil {
		r.Close()
		return nil, err
	}

	Logger().Info("renderer ready",
		"width", width,
		"height", height,
		"mode", r.toggle.Mode())
	return r, nil
}

// Mode returns the pipeline variant the next frame will draw with.
func (r *Renderer) Mode() Mode { return r.toggle.Mode() }

// Window returns the window the renderer was created against.
func (r *Renderer) Window() Window { return r.win }

// HandleInput feeds one key event to the variant toggle. It returns
// true if the event was consumed. Only the release edge of the toggle
// key flips the variant; presses and repeats are consumed silently.
func (r *Renderer) HandleInput(ev KeyEvent) bool {
	before := r.toggle.Mode()
	handled := r.toggle.Handle(ev)
	if after := r.toggle.Mode(); after != before {
		Logger().Info("variant toggled", "mode", after)
	}
	return handled
}

// Resize applies a new framebuffer size. A zero dimension (minimized
// window) leaves everything untouched, including the camera. A valid
// size reconfigures the surface and refreshes the camera uniform for
// the new aspect ratio.
func (r *Renderer) Resize(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	if !r.swapchain.Resize(width, height) {
		return nil
	}
	r.camera.SetAspect(r.swapchain.AspectRatio())
	if err := r.bindings.WriteCamera(r.camera.ViewProjection()); err != nil {
		return fmt.Errorf("prism: update camera uniform: %w", err)
	}
	return nil
}

// Render draws one frame: acquire the surface texture, clear, draw the
// current variant, submit, present. Acquire failures are classified
// before any encoding happens; a recoverable error
// (RecoverableSurfaceError returns true) means the frame was skipped
// and the caller should Resize to the current framebuffer size and
// continue. ErrOutOfMemory and unclassified errors are fatal.
func (r *Renderer) Render() error {
	if r.closed {
		return ErrClosed
	}

	frame, err := r.frames.GetCurrentTexture()
	if err != nil {
		return classifySurfaceError(err)
	}
	defer frame.Release()

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("prism: create frame view: %w", err)
	}
	defer view.Release()

	encoder, err := r.ctx.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("prism: create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "prism frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: r.clearColor,
		}},
	})

	r.encodeDraw(pass, r.toggle.Mode())

	if err := pass.End(); err != nil {
		pass.Release()
		return fmt.Errorf("prism: end render pass: %w", err)
	}
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("prism: finish encoder: %w", err)
	}
	defer cmd.Release()

	r.ctx.queue.Submit(cmd)
	r.frames.Present()
	return nil
}

// encodeDraw records the variant-specific portion of the render pass:
// pipeline, binding sets, geometry, and exactly one draw call.
func (r *Renderer) encodeDraw(pass renderPass, mode Mode) {
	pipeline, spec := r.registry.Pipeline(mode)
	pass.SetPipeline(pipeline)
	for i, kind := range spec.groups {
		switch kind {
		case bindingTexture:
			pass.SetBindGroup(uint32(i), r.bindings.textureGroup, nil)
		case bindingCamera:
			pass.SetBindGroup(uint32(i), r.bindings.cameraGroup, nil)
		}
	}
	if spec.usesVertexBuffer {
		pass.SetVertexBuffer(0, r.mesh.vertexBuf, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(r.mesh.indexBuf, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		pass.DrawIndexed(r.mesh.IndexCount(), 1, 0, 0, 0)
	} else {
		pass.Draw(ProceduralVertexCount, 1, 0, 0)
	}
}

// Close releases every GPU resource in reverse creation order. The
// surface is released before Close returns, so the caller may destroy
// the OS window immediately afterwards. Close is idempotent.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.registry != nil {
		r.registry.Release()
		r.registry = nil
	}
	if r.bindings != nil {
		r.bindings.Release()
		r.bindings = nil
	}
	if r.texture != nil {
		r.texture.Release()
		r.texture = nil
	}
	if r.mesh != nil {
		r.mesh.Release()
		r.mesh = nil
	}
	if r.ctx != nil {
		r.ctx.release()
		r.ctx = nil
	}
	Logger().Info("renderer closed")
}
