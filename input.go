package prism

// Mode identifies which pipeline variant the renderer draws with.
type Mode int

const (
	// ModeTextured draws the pentagon mesh sampling the diffuse texture.
	ModeTextured Mode = iota
	// ModeProcedural draws a triangle whose position and color are
	// derived from the vertex index in the shader.
	ModeProcedural
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeTextured:
		return "textured"
	case ModeProcedural:
		return "procedural"
	default:
		return "unknown"
	}
}

// Key is a platform-independent keyboard key code. The values match
// GLFW key codes so demo callbacks can pass them through directly, but
// the library only ever compares them for equality.
type Key int32

// KeySpace is the default variant toggle key.
const KeySpace Key = 32

// KeyState is the transition reported by a key event.
type KeyState int

const (
	// KeyPressed is the initial press transition.
	KeyPressed KeyState = iota
	// KeyReleased is the release transition.
	KeyReleased
	// KeyRepeat is an auto-repeat while the key is held.
	KeyRepeat
)

// KeyEvent is one keyboard transition delivered by the event loop.
type KeyEvent struct {
	Key   Key
	State KeyState
}

// Toggle flips between the two pipeline variants on the release edge
// of its configured key. Press and repeat events for the key are
// consumed without flipping, so holding the key switches the variant
// exactly once, on release. Events for other keys are not handled.
//
// Toggle is not safe for concurrent use; drive it from the event-loop
// thread like the rest of the renderer.
type Toggle struct {
	key  Key
	mode Mode
}

// NewToggle returns a toggle for key, starting in [ModeTextured].
func NewToggle(key Key) *Toggle {
	return &Toggle{key: key, mode: ModeTextured}
}

// Mode returns the currently selected variant.
func (t *Toggle) Mode() Mode { return t.mode }

// Handle processes one key event. It returns true if the event was
// consumed, meaning it targeted the toggle key, whether or not the
// mode changed. Only a release transition flips the mode.
func (t *Toggle) Handle(ev KeyEvent) bool {
	if ev.Key != t.key {
		return false
	}
	if ev.State == KeyReleased {
		if t.mode == ModeTextured {
			t.mode = ModeProcedural
		} else {
			t.mode = ModeTextured
		}
	}
	return true
}
