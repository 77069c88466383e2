package kbdctl

import (
	"github.com/fosdem/glhello/lib/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Action int

const (
	None Action = iota
	Close
)

// Closer is told when a key binding asks the program to end.
type Closer interface {
	RequestClose(reason string)
}

func SetupShortcutKeys(w *window.Window, closer Closer) {
	w.Window.SetKeyCallback(keyCallback(closer))
}

// Lookup maps a key event to its bound action. Escape closes on press,
// Ctrl+Shift+Q closes on release.
func Lookup(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) Action {
	if action == glfw.Press && key == glfw.KeyEscape {
		return Close
	}
	if action == glfw.Release &&
		key == glfw.KeyQ &&
		mods&glfw.ModControl != 0 &&
		mods&glfw.ModShift != 0 {
		return Close
	}
	return None
}

func keyCallback(closer Closer) glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch Lookup(key, action, mods) {
		case Close:
			closer.RequestClose("told to quit by key binding")
		}
	}
}
