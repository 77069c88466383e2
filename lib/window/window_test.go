package window

import (
	"testing"

	"github.com/fosdem/glhello/lib/config"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestHintsForDefaults(t *testing.T) {
	cfg := config.Defaults()

	hints := Hints(&cfg.Window, &cfg.Context)

	assert.Equal(t, []Hint{
		{glfw.ContextVersionMajor, 3},
		{glfw.ContextVersionMinor, 3},
		{glfw.OpenGLForwardCompatible, glfw.True},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.Resizable, glfw.True},
	}, hints)
}

func TestHintsLegacyContext(t *testing.T) {
	resizable := false
	win := config.WindowCfg{Resizable: &resizable}
	ctx := config.ContextCfg{Major: intPtr(2), Minor: intPtr(1), Profile: config.ProfileAny}

	hints := Hints(&win, &ctx)

	assert.Equal(t, []Hint{
		{glfw.ContextVersionMajor, 2},
		{glfw.ContextVersionMinor, 1},
		{glfw.OpenGLProfile, glfw.OpenGLAnyProfile},
		{glfw.Resizable, glfw.False},
	}, hints)
}

func TestHintsCompatProfile(t *testing.T) {
	win := config.WindowCfg{}
	ctx := config.ContextCfg{Major: intPtr(4), Minor: intPtr(6), Profile: config.ProfileCompat}

	hints := Hints(&win, &ctx)
	assert.Contains(t, hints, Hint{glfw.OpenGLProfile, glfw.OpenGLCompatProfile})
}

func TestWakeWithoutInitIsNoop(t *testing.T) {
	assert.NotPanics(t, Wake)
}

func intPtr(v int) *int {
	return &v
}
