// Package input polls SDL2 events and forwards them to the scene handlers.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cornellbox/internal/scene"
)

// EventType identifies an event the frame loop handles itself.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event is a window-level event returned to the frame loop.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Handler receives input in scene terms.
type Handler interface {
	OnKey(key scene.Key, pressed bool)
	OnMouseButton(button scene.MouseButton, pressed bool)
	OnMouseMove(dx, dy float32)
	OnScroll(dy float32)
	OnToggleRequest(target string, kind scene.ToggleKind)
}

// Picker finds the solid under a screen position, or "".
type Picker func(x, y float32) string

var scancodes = map[sdl.Scancode]scene.Key{
	sdl.SCANCODE_ESCAPE:   scene.KeyEscape,
	sdl.SCANCODE_U:        scene.KeyU,
	sdl.SCANCODE_R:        scene.KeyR,
	sdl.SCANCODE_C:        scene.KeyC,
	sdl.SCANCODE_M:        scene.KeyM,
	sdl.SCANCODE_V:        scene.KeyV,
	sdl.SCANCODE_TAB:      scene.KeyTab,
	sdl.SCANCODE_W:        scene.KeyW,
	sdl.SCANCODE_A:        scene.KeyA,
	sdl.SCANCODE_S:        scene.KeyS,
	sdl.SCANCODE_D:        scene.KeyD,
	sdl.SCANCODE_Q:        scene.KeyQ,
	sdl.SCANCODE_E:        scene.KeyE,
	sdl.SCANCODE_UP:       scene.KeyUp,
	sdl.SCANCODE_DOWN:     scene.KeyDown,
	sdl.SCANCODE_LEFT:     scene.KeyLeft,
	sdl.SCANCODE_RIGHT:    scene.KeyRight,
	sdl.SCANCODE_PAGEUP:   scene.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: scene.KeyPageDown,
	sdl.SCANCODE_EQUALS:   scene.KeyPlus,
	sdl.SCANCODE_KP_PLUS:  scene.KeyPlus,
	sdl.SCANCODE_MINUS:    scene.KeyMinus,
	sdl.SCANCODE_KP_MINUS: scene.KeyMinus,
	sdl.SCANCODE_1:        scene.Key1,
	sdl.SCANCODE_2:        scene.Key2,
	sdl.SCANCODE_F12:      scene.KeyF12,
}

// TranslateKey maps an SDL scancode to a scene key.
func TranslateKey(code sdl.Scancode) scene.Key {
	if k, ok := scancodes[code]; ok {
		return k
	}
	return scene.KeyUnknown
}

// TranslateButton maps an SDL mouse button to a scene button.
func TranslateButton(button uint8) (scene.MouseButton, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return scene.ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return scene.ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return scene.ButtonRight, true
	}
	return 0, false
}

// Input handles all input processing.
type Input struct {
	events []Event
	pick   Picker
}

// New creates a new input handler. pick may be nil to disable click
// selection.
func New(pick Picker) *Input {
	return &Input{
		events: make([]Event, 0, 4),
		pick:   pick,
	}
}

// Update polls SDL events and forwards them to h.
// Returns true if the application should quit.
func (i *Input) Update(h Handler) bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			key := TranslateKey(e.Keysym.Scancode)
			if key == scene.KeyUnknown {
				continue
			}
			h.OnKey(key, e.Type == sdl.KEYDOWN)

		case *sdl.MouseMotionEvent:
			h.OnMouseMove(float32(e.XRel), float32(e.YRel))

		case *sdl.MouseButtonEvent:
			button, ok := TranslateButton(e.Button)
			if !ok {
				continue
			}
			pressed := e.Type == sdl.MOUSEBUTTONDOWN
			h.OnMouseButton(button, pressed)
			if button == scene.ButtonMiddle && pressed {
				i.click(h, float32(e.X), float32(e.Y))
			}

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			h.OnScroll(dy)
		}
	}

	return false
}

// click toggles the mirror flag of the solid under the cursor, or its
// transparency when shift is held.
func (i *Input) click(h Handler, x, y float32) {
	if i.pick == nil {
		return
	}
	target := i.pick(x, y)
	if target == "" {
		return
	}
	kind := scene.ToggleMirror
	if sdl.GetModState()&sdl.KMOD_SHIFT != 0 {
		kind = scene.ToggleTransparent
	}
	h.OnToggleRequest(target, kind)
}

// Events returns the window events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
