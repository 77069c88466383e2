// Package app runs the window: initialise GLFW, create the window and
// context, load GL, build the shader program, then clear and swap until
// the window is closed.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fosdem/glhello/lib/api"
	"github.com/fosdem/glhello/lib/config"
	"github.com/fosdem/glhello/lib/kbdctl"
	"github.com/fosdem/glhello/lib/log"
	"github.com/fosdem/glhello/lib/metrics"
	"github.com/fosdem/glhello/lib/rendering"
	"github.com/fosdem/glhello/lib/rendering/diag"
	"github.com/fosdem/glhello/lib/rendering/shaders"
	"github.com/fosdem/glhello/lib/stats"
	"github.com/fosdem/glhello/lib/utils"
	"github.com/fosdem/glhello/lib/window"
)

const apiShutdownTimeout = 2 * time.Second

type App struct {
	cfg   *config.Config
	log   *slog.Logger
	Stats *stats.Stats

	closeRequested atomic.Bool
	shaderer       *shaders.Shaderer
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:   cfg,
		log:   log.Module("app"),
		Stats: stats.New(),
	}
}

// RequestClose ends the render loop at its next iteration. It is safe to
// call from any goroutine.
func (a *App) RequestClose(reason string) {
	a.log.Info(reason)
	a.closeRequested.Store(true)
	window.Wake()
}

// Run must be called on the main, OS-locked thread. Errors it returns are
// fatal; shader problems are logged and never returned.
func (a *App) Run() error {
	err := window.Init()
	if err != nil {
		return err
	}
	defer window.Terminate()

	win, err := window.New(&a.cfg.Window, &a.cfg.Context)
	if err != nil {
		return err
	}
	defer win.Destroy()

	info, err := rendering.Init()
	if err != nil {
		return fmt.Errorf("can't initialize GL: %w", err)
	}
	a.Stats.SetRenderer(info.Renderer)

	kbdctl.SetupShortcutKeys(win, a)

	a.shaderer, err = shaders.NewShaderer()
	if err != nil {
		return fmt.Errorf("could not parse embedded shaders: %w", err)
	}

	program, _ := a.buildProgram()
	clearColour := utils.ColourVec(utils.ColourParse(a.cfg.ClearColour))
	glvars := rendering.NewGLVars(program, clearColour)
	glvars.Start()
	defer glvars.Delete()

	watcher := a.watchShaders()
	if watcher != nil {
		defer func() {
			_ = watcher.Close()
		}()
	}

	theApi := api.ServeInBackground(a.cfg, a, a.Stats)
	if theApi != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), apiShutdownTimeout)
			defer cancel()
			if err := theApi.Shutdown(ctx); err != nil {
				a.log.Warn(fmt.Sprintf("could not stop web server: %s", err))
			}
		}()
	}

	timeout := time.Duration(a.cfg.Window.WaitTimeoutMs) * time.Millisecond

	var deltaTimer utils.DeltaTimer
	for !win.ShouldClose() {
		if a.closeRequested.Load() {
			win.SetShouldClose(true)
			break
		}
		if watcher != nil && watcher.Changed() {
			a.reloadProgram(glvars)
		}

		glvars.DrawFrame()
		win.SwapBuffers()

		a.Stats.Update(deltaTimer.Next())
		metrics.FramesDrawn.Inc()

		win.Wait(timeout)
		metrics.Wakeups.Inc()
	}

	a.log.Info("window closed")
	return nil
}

// buildProgram compiles the configured shaders. Failures are logged and
// counted but the program handle is kept, so the loop carries on with
// whatever GL made of it.
func (a *App) buildProgram() (uint32, error) {
	logger := log.Module("shaders")

	src, err := a.shaderer.Load(&a.cfg.Shaders)
	if err != nil {
		logger.Error(err.Error())
		a.recordBuild(err)
		return 0, err
	}

	program, err := rendering.BuildProgram(src, logger)
	a.recordBuild(err)
	if err != nil {
		logger.Warn("shader program has errors, continuing anyway")
	}
	return program, err
}

func (a *App) recordBuild(err error) {
	a.Stats.ProgramBuilt(err)
	if err == nil {
		metrics.ProgramBuilds.WithLabelValues("ok").Inc()
		return
	}
	metrics.ProgramBuilds.WithLabelValues("failed").Inc()
	for _, r := range diag.Reports(err) {
		metrics.ShaderFailures.WithLabelValues(r.Where).Inc()
	}
}

// reloadProgram swaps in a rebuilt program, keeping the running one when
// the rebuild fails.
func (a *App) reloadProgram(glvars *rendering.GLVars) {
	program, err := a.buildProgram()
	if err != nil {
		if program != 0 {
			rendering.DeleteProgram(program)
		}
		a.log.Warn("keeping previous shader program")
		return
	}
	glvars.ReplaceProgram(program)
	a.log.Info("shader program reloaded", "program", program)
}

func (a *App) watchShaders() *shaders.Watcher {
	if !a.cfg.Shaders.Watch {
		return nil
	}
	paths := []string{string(a.cfg.Shaders.Vertex), string(a.cfg.Shaders.Fragment)}
	w, err := shaders.Watch(paths, window.Wake, log.Module("watcher"))
	if err != nil {
		a.log.Warn(fmt.Sprintf("shader reloading disabled: %s", err))
		return nil
	}
	return w
}
