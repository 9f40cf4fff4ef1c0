package prism

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal initialization and device errors. Any of these returned from
// New means the renderer could not be constructed and there is no
// degraded path to fall back to.
var (
	// ErrNoAdapter indicates no GPU adapter compatible with the surface
	// could be found.
	ErrNoAdapter = errors.New("prism: no compatible adapter")

	// ErrNoDevice indicates the adapter refused to provide a logical
	// device with the requested limits.
	ErrNoDevice = errors.New("prism: device request failed")

	// ErrIncompatibleLayout indicates a pipeline variant declared
	// binding-set kinds that do not match the layouts it was built
	// against. This is a programming error caught at pipeline creation.
	ErrIncompatibleLayout = errors.New("prism: pipeline binding layout mismatch")

	// ErrOutOfMemory indicates the GPU ran out of memory while
	// acquiring a surface texture. Unlike the other surface conditions
	// it is not recoverable by reconfiguring.
	ErrOutOfMemory = errors.New("prism: out of memory")

	// ErrClosed is returned by operations on a renderer after Close.
	ErrClosed = errors.New("prism: renderer closed")
)

// Recoverable per-frame surface errors. The frame that observes one of
// these is skipped with no GPU work submitted; the caller should
// reconfigure the swapchain (typically by calling Resize with the
// current framebuffer size) and continue.
var (
	// ErrSurfaceLost indicates the surface was lost and must be
	// reconfigured before the next acquire.
	ErrSurfaceLost = errors.New("prism: surface lost")

	// ErrSurfaceOutdated indicates the surface no longer matches the
	// window, usually after a resize raced the acquire.
	ErrSurfaceOutdated = errors.New("prism: surface outdated")

	// ErrAcquireTimeout indicates the acquire did not complete in time.
	ErrAcquireTimeout = errors.New("prism: surface acquire timed out")
)

// RecoverableSurfaceError reports whether err is a per-frame surface
// condition the caller can recover from by reconfiguring the
// swapchain. Out-of-memory and device loss are not recoverable.
func RecoverableSurfaceError(err error) bool {
	return errors.Is(err, ErrSurfaceLost) ||
		errors.Is(err, ErrSurfaceOutdated) ||
		errors.Is(err, ErrAcquireTimeout)
}

// classifySurfaceError maps an acquire failure onto the package's
// error taxonomy, keeping the driver's message in the wrapped error.
// The underlying binding reports surface status as error text, so
// classification matches on the status keywords.
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %v", ErrAcquireTimeout, err)
	}
	return err
}
