// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize // query the window for the new drawable size
	EventKeyDown
	EventDrag
	EventZoom
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	DX, DY float32 // drag delta in pixels, or wheel delta in DY
}

// Input tracks drag state across SDL events.
type Input struct {
	events   []Event
	dragging bool
}

// New creates an input handler.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Update polls pending SDL events. It returns true when the viewer
// should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := i.translate(event); ok {
			i.events = append(i.events, e)
			quit = quit || e.Type == EventQuit
		}
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func (i *Input) translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return Event{Type: EventQuit}, true
			}
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
		}

	case *sdl.MouseMotionEvent:
		if i.dragging {
			return Event{Type: EventDrag, DX: float32(e.XRel), DY: float32(e.YRel)}, true
		}

	case *sdl.MouseWheelEvent:
		return Event{Type: EventZoom, DY: float32(e.Y)}, true
	}
	return Event{}, false
}
