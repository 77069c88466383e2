package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/glhello/lib/log"
	"github.com/fosdem/glhello/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window      WindowCfg  `json:"window"`
	Context     ContextCfg `json:"context"`
	ClearColour string     `yaml:"clear_colour" json:"clear_colour"`
	Shaders     ShadersCfg `json:"shaders"`
	Api         *ApiCfg    `json:"api,omitempty"`
	Log         LogCfg     `json:"log"`
}

type WindowCfg struct {
	Title         string `json:"title"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Resizable     *bool  `json:"resizable"`
	SwapInterval  *int   `yaml:"swap_interval" json:"swap_interval"`
	WaitTimeoutMs int    `yaml:"wait_timeout_ms" json:"wait_timeout_ms"`
}

type ContextCfg struct {
	Major         *int   `json:"major"`
	Minor         *int   `json:"minor"`
	ForwardCompat *bool  `yaml:"forward_compat" json:"forward_compat"`
	Profile       string `json:"profile"`
}

type ShadersCfg struct {
	Vertex      CfgPath `json:"vertex"`
	Fragment    CfgPath `json:"fragment"`
	Watch       bool    `json:"watch"`
	GLSLVersion string  `yaml:"glsl_version" json:"glsl_version"`
	Colour      string  `json:"colour"`
}

type ApiCfg struct {
	Bind           string `json:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler" json:"enable_profiler"`
}

type LogCfg struct {
	Level string `json:"level"`
}

const (
	ProfileCore   = "core"
	ProfileCompat = "compat"
	ProfileAny    = "any"
)

// Defaults returns the configuration used when no file is given: a 640x480
// "Hello!" window on a 3.3 forward-compatible core context, cleared to white.
func Defaults() *Config {
	resizable := true
	swapInterval := 1
	major, minor := 3, 3
	forwardCompat := true
	return &Config{
		Window: WindowCfg{
			Title:        "Hello!",
			Width:        640,
			Height:       480,
			Resizable:    &resizable,
			SwapInterval: &swapInterval,
		},
		Context: ContextCfg{
			Major:         &major,
			Minor:         &minor,
			ForwardCompat: &forwardCompat,
			Profile:       ProfileCore,
		},
		ClearColour: "#ffffff00",
		Shaders: ShadersCfg{
			GLSLVersion: "150 core",
			Colour:      "#ff0000ff",
		},
		Log: LogCfg{
			Level: "info",
		},
	}
}

// Parse reads filename on top of Defaults. An empty filename yields the
// defaults unchanged.
func Parse(filename string) (*Config, error) {
	cfg := Defaults()
	if filename == "" {
		return cfg, cfg.Validate()
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	parsed := &Config{}
	err = yaml.NewDecoder(f).Decode(parsed)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}
	cfg.merge(parsed)

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every field set in o over c.
func (c *Config) merge(o *Config) {
	if o.Window.Title != "" {
		c.Window.Title = o.Window.Title
	}
	if o.Window.Width != 0 {
		c.Window.Width = o.Window.Width
	}
	if o.Window.Height != 0 {
		c.Window.Height = o.Window.Height
	}
	if o.Window.Resizable != nil {
		c.Window.Resizable = o.Window.Resizable
	}
	if o.Window.SwapInterval != nil {
		c.Window.SwapInterval = o.Window.SwapInterval
	}
	if o.Window.WaitTimeoutMs != 0 {
		c.Window.WaitTimeoutMs = o.Window.WaitTimeoutMs
	}

	if o.Context.Major != nil {
		c.Context.Major = o.Context.Major
	}
	if o.Context.Minor != nil {
		c.Context.Minor = o.Context.Minor
	}
	if o.Context.ForwardCompat != nil {
		c.Context.ForwardCompat = o.Context.ForwardCompat
	}
	if o.Context.Profile != "" {
		c.Context.Profile = o.Context.Profile
	}

	if o.ClearColour != "" {
		c.ClearColour = o.ClearColour
	}

	if o.Shaders.Vertex != "" {
		c.Shaders.Vertex = o.Shaders.Vertex
	}
	if o.Shaders.Fragment != "" {
		c.Shaders.Fragment = o.Shaders.Fragment
	}
	c.Shaders.Watch = o.Shaders.Watch
	if o.Shaders.GLSLVersion != "" {
		c.Shaders.GLSLVersion = o.Shaders.GLSLVersion
	}
	if o.Shaders.Colour != "" {
		c.Shaders.Colour = o.Shaders.Colour
	}

	if o.Api != nil {
		c.Api = o.Api
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	err = c.Context.Validate()
	if err != nil {
		return fmt.Errorf("context is invalid: %w", err)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders are invalid: %w", err)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}

	if c.ClearColour == "" {
		return fmt.Errorf("please set clear_colour in the config")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}

	_, err = log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("log is invalid: %w", err)
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.SwapInterval != nil && *w.SwapInterval < 0 {
		return fmt.Errorf("swap_interval must be nonnegative")
	}
	if w.WaitTimeoutMs < 0 {
		return fmt.Errorf("wait_timeout_ms must be nonnegative")
	}
	return nil
}

func (c *ContextCfg) Validate() error {
	if c.Major == nil || c.Minor == nil {
		return fmt.Errorf("major and minor version must be specified")
	}
	major, minor := c.Version()
	if major < 1 || major > 4 || minor < 0 || minor > 6 {
		return fmt.Errorf("no OpenGL version %d.%d", major, minor)
	}

	switch c.Profile {
	case ProfileCore, ProfileCompat:
		if !c.AtLeast(3, 2) {
			return fmt.Errorf("%s profile needs OpenGL 3.2 or later", c.Profile)
		}
	case ProfileAny:
	default:
		return fmt.Errorf("unknown profile %q (want core, compat or any)", c.Profile)
	}

	if c.ForwardCompat != nil && *c.ForwardCompat && !c.AtLeast(3, 0) {
		return fmt.Errorf("forward_compat needs OpenGL 3.0 or later")
	}
	return nil
}

func (c *ContextCfg) AtLeast(major, minor int) bool {
	have, haveMinor := c.Version()
	return have > major || (have == major && haveMinor >= minor)
}

// Version returns the requested context version, with 0 for an unset part.
func (c *ContextCfg) Version() (major, minor int) {
	if c.Major != nil {
		major = *c.Major
	}
	if c.Minor != nil {
		minor = *c.Minor
	}
	return major, minor
}

func (s *ShadersCfg) Validate() error {
	if s.GLSLVersion == "" {
		return fmt.Errorf("glsl_version must be specified")
	}
	if !utils.ColourValidate(s.Colour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", s.Colour)
	}
	if s.Watch && s.Vertex == "" && s.Fragment == "" {
		return fmt.Errorf("cannot watch shaders without a vertex or fragment path")
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind must be specified")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d\n", c.Window.Title, c.Window.Width, c.Window.Height))

	b.WriteString("\nContext:\n")
	major, minor := c.Context.Version()
	b.WriteString(fmt.Sprintf("  OpenGL %d.%d (%s)\n", major, minor, c.Context.Profile))

	b.WriteString("\nShaders:\n")
	b.WriteString(fmt.Sprintf("  vertex: %s\n", c.Shaders.Vertex.OrEmbedded()))
	b.WriteString(fmt.Sprintf("  fragment: %s\n", c.Shaders.Fragment.OrEmbedded()))

	if c.Api != nil {
		b.WriteString("\nApi:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Api.Bind))
	}

	return b.String()
}
