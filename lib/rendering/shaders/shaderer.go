package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/fosdem/glhello/lib/config"
	"github.com/fosdem/glhello/lib/utils"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexTemplate   = "hello.vert"
	FragmentTemplate = "hello.frag"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	GLSLVersion string
	Colour      mgl32.Vec4
}

func NewShaderData(cfg *config.ShadersCfg) *ShaderData {
	return &ShaderData{
		GLSLVersion: cfg.GLSLVersion,
		Colour:      utils.ColourVec(utils.ColourParse(cfg.Colour)),
	}
}

// ColourLiteral renders Colour as the argument list of a GLSL vec4.
func (d *ShaderData) ColourLiteral() string {
	parts := make([]string, 4)
	for i, c := range d.Colour {
		parts[i] = fmt.Sprintf("%.4f", c)
	}
	return strings.Join(parts, ", ")
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// Sources is a vertex/fragment pair ready for compilation. An empty
// stage is left out of the program.
type Sources struct {
	Vertex   string
	Fragment string
}

// Load renders every stage from its file when cfg names one, otherwise
// from the embedded template. Files are templates too and see the same
// ShaderData.
func (s *Shaderer) Load(cfg *config.ShadersCfg) (*Sources, error) {
	data := NewShaderData(cfg)

	vertex, err := s.stage(cfg.Vertex, VertexTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragment, err := s.stage(cfg.Fragment, FragmentTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return &Sources{Vertex: vertex, Fragment: fragment}, nil
}

func (s *Shaderer) stage(path config.CfgPath, fallback string, data *ShaderData) (string, error) {
	if path == "" {
		return s.GetShaderSource(fallback, data)
	}

	raw, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}

	t, err := template.New(string(path)).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse %s: %w", path, err)
	}

	var b bytes.Buffer
	err = t.Execute(&b, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering %s: %w", path, err)
	}
	return b.String(), nil
}
