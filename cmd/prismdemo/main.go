// Command prismdemo opens a window and drives the prism renderer:
// a textured pentagon by default, toggled to a procedural triangle and
// back with the space bar. Escape closes the window.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/prismgl/prism"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

var (
	width    = flag.Int("width", 800, "window width in screen coordinates")
	height   = flag.Int("height", 600, "window height in screen coordinates")
	title    = flag.String("title", "prism", "window title")
	texture  = flag.String("texture", "", "PNG or JPEG to use as the diffuse texture (default: checkerboard)")
	fallback = flag.Bool("fallback", false, "force the software fallback adapter")
	verbose  = flag.Bool("verbose", false, "enable debug logging")
)

// window adapts a GLFW window to the renderer's window abstraction.
type window struct {
	*glfw.Window
}

func (w window) FramebufferSize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.Window)
}

func main() {
	flag.Parse()

	if *verbose {
		prism.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(*width, *height, *title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	img, err := loadTexture(*texture)
	if err != nil {
		return err
	}

	opts := []prism.Option{prism.WithLabel(*title)}
	if *fallback {
		opts = append(opts, prism.WithForceFallbackAdapter())
	}
	r, err := prism.New(window{win}, img, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if err := r.Resize(w, h); err != nil {
			log.Fatal(err)
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Release {
			win.SetShouldClose(true)
			return
		}
		r.HandleInput(prism.KeyEvent{
			Key:   prism.Key(key),
			State: keyState(action),
		})
	})

	for !win.ShouldClose() {
		glfw.PollEvents()

		err := r.Render()
		switch {
		case err == nil:
		case prism.RecoverableSurfaceError(err):
			// Reconfigure to the current framebuffer size and skip
			// this frame.
			w, h := win.GetFramebufferSize()
			if err := r.Resize(w, h); err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

func keyState(action glfw.Action) prism.KeyState {
	switch action {
	case glfw.Release:
		return prism.KeyReleased
	case glfw.Repeat:
		return prism.KeyRepeat
	default:
		return prism.KeyPressed
	}
}

func loadTexture(path string) (*prism.Image, error) {
	if path == "" {
		return prism.Checkerboard(256, 256), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()
	return prism.DecodeRGBA(f)
}
