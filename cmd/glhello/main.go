package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/glhello/lib/app"
	"github.com/fosdem/glhello/lib/config"
	"github.com/fosdem/glhello/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

//	@title			glhello API
//	@version		1.0
//	@description	Status and control of a running glhello window.
//	@BasePath		/
func main() {
	configPtr := flag.String("config", "", "YAML config file; built-in defaults when empty")
	titlePtr := flag.String("title", "", "Override the window title")
	widthPtr := flag.Int("width", 0, "Override the window width")
	heightPtr := flag.Int("height", 0, "Override the window height")
	levelPtr := flag.String("log-level", "", "Override the log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Parse(*configPtr)
	if err != nil {
		fatal(err)
	}
	if *titlePtr != "" {
		cfg.Window.Title = *titlePtr
	}
	if *widthPtr != 0 {
		cfg.Window.Width = *widthPtr
	}
	if *heightPtr != 0 {
		cfg.Window.Height = *heightPtr
	}
	if *levelPtr != "" {
		cfg.Log.Level = *levelPtr
	}
	err = cfg.Validate()
	if err != nil {
		fatal(err)
	}

	err = setupLogging(&cfg.Log)
	if err != nil {
		fatal(err)
	}

	err = app.New(cfg).Run()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// setupLogging installs the terminal handler as the slog default.
func setupLogging(cfg *config.LogCfg) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(log.NewHandler(&slog.HandlerOptions{Level: level})))
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
