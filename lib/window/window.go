package window

import (
	"fmt"
	"sync"
	"time"

	"github.com/fosdem/glhello/lib/config"
	"github.com/fosdem/glhello/lib/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the single GLFW window and its GL context.
type Window struct {
	Window *glfw.Window
}

// Hint is one glfw.WindowHint call.
type Hint struct {
	Target glfw.Hint
	Value  int
}

var (
	// initialised guards PostEmptyEvent against a terminated GLFW
	initialised   bool
	initialisedMu sync.Mutex
)

// Init initialises GLFW. It must be called from the main thread.
func Init() error {
	err := glfw.Init()
	if err != nil {
		return fmt.Errorf("can't initialize GLFW: %w", err)
	}
	initialisedMu.Lock()
	initialised = true
	initialisedMu.Unlock()
	log.Module("window").Debug("GLFW initialised", "version", glfw.GetVersionString())
	return nil
}

// Terminate shuts GLFW down, destroying any remaining windows.
func Terminate() {
	initialisedMu.Lock()
	initialised = false
	initialisedMu.Unlock()
	glfw.Terminate()
	log.Module("window").Debug("GLFW terminated")
}

// Wake makes a blocked Wait return. It may be called from any goroutine
// and does nothing when GLFW is not initialised.
func Wake() {
	initialisedMu.Lock()
	defer initialisedMu.Unlock()
	if initialised {
		glfw.PostEmptyEvent()
	}
}

// Hints derives the window hints for cfg. They have to be applied before
// the window is created to have any effect.
func Hints(win *config.WindowCfg, ctx *config.ContextCfg) []Hint {
	major, minor := ctx.Version()
	hints := []Hint{
		{glfw.ContextVersionMajor, major},
		{glfw.ContextVersionMinor, minor},
	}

	if ctx.ForwardCompat != nil {
		hints = append(hints, Hint{glfw.OpenGLForwardCompatible, boolHint(*ctx.ForwardCompat)})
	}

	switch ctx.Profile {
	case config.ProfileCore:
		hints = append(hints, Hint{glfw.OpenGLProfile, glfw.OpenGLCoreProfile})
	case config.ProfileCompat:
		hints = append(hints, Hint{glfw.OpenGLProfile, glfw.OpenGLCompatProfile})
	default:
		hints = append(hints, Hint{glfw.OpenGLProfile, glfw.OpenGLAnyProfile})
	}

	if win.Resizable != nil {
		hints = append(hints, Hint{glfw.Resizable, boolHint(*win.Resizable)})
	}
	return hints
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// New creates the window and makes its context current on the calling
// thread.
func New(win *config.WindowCfg, ctx *config.ContextCfg) (*Window, error) {
	logger := log.Module("window")
	logger.Debug("Initializing window", "title", win.Title, "width", win.Width, "height", win.Height)

	glfw.DefaultWindowHints()
	for _, h := range Hints(win, ctx) {
		glfw.WindowHint(h.Target, h.Value)
	}

	window, err := glfw.CreateWindow(win.Width, win.Height, win.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("can't create GLFW window: %w", err)
	}

	window.MakeContextCurrent()

	if win.SwapInterval != nil {
		glfw.SwapInterval(*win.SwapInterval)
	}

	return &Window{Window: window}, nil
}

func (w *Window) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Window.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	w.Window.SwapBuffers()
}

// Wait blocks until at least one event arrives, or until timeout passes
// when it is positive.
func (w *Window) Wait(timeout time.Duration) {
	if timeout > 0 {
		glfw.WaitEventsTimeout(timeout.Seconds())
		return
	}
	glfw.WaitEvents()
}

func (w *Window) Destroy() {
	w.Window.Destroy()
}
