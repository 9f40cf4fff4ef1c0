// Package prism is a minimal real-time WebGPU rasterizer.
//
// # Overview
//
// prism renders one static 2D mesh to a window surface and lets the
// user flip between two pipeline variants at runtime: a textured
// variant that samples a diffuse texture across a pentagon mesh, and
// a procedural variant that derives a colored triangle entirely from
// the vertex index inside the shader. The library owns the GPU side
// only: device and surface negotiation, swapchain configuration,
// static geometry upload, resource binding, pipeline compilation, and
// the per-frame acquire/encode/submit/present sequence. The OS window
// and its event loop belong to the caller.
//
// # Quick Start
//
//	r, err := prism.New(window, prism.Checkerboard(256, 256))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	// driven by the caller's event loop:
//	r.Resize(width, height)      // on window resize
//	r.HandleInput(keyEvent)      // Space release toggles the variant
//	if err := r.Render(); err != nil {
//	    if prism.RecoverableSurfaceError(err) {
//	        r.Resize(width, height) // reconfigure, skip this frame
//	    } else {
//	        log.Fatal(err)
//	    }
//	}
//
// See cmd/prismdemo for a complete GLFW-driven program.
//
// # Architecture
//
// One file per concern in a flat package:
//   - Context: adapter/device/queue/surface negotiation (context.go)
//   - Swapchain: surface configuration and resize (swapchain.go)
//   - Mesh and vertex tables: static geometry (geometry.go)
//   - Bindings: texture/sampler and camera binding sets (bindings.go)
//   - Registry: the closed two-variant pipeline table (pipeline.go)
//   - Toggle: release-edge keyboard state machine (input.go)
//   - Renderer: per-frame orchestration (renderer.go)
//
// # Concurrency
//
// prism is single-threaded by design: Resize, HandleInput, and Render
// must all be called from the one thread driving the event loop. The
// device queue is owned exclusively by the Renderer's Context and no
// more than one frame is ever in flight on the CPU side.
//
// # Error Handling
//
// Startup failures (no adapter, no device, incompatible binding-set
// layout) are fatal: New returns an error and there is no degraded
// render path. Render distinguishes recoverable surface conditions
// (lost, outdated, acquire timeout), reported via sentinel errors and
// the RecoverableSurfaceError predicate with the frame skipped and no
// work submitted, from fatal device loss and out-of-memory.
package prism

// Version is the current version of the library.
const Version = "0.1.0"
