package rendering

import (
	"fmt"

	"github.com/fosdem/glhello/lib/log"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Info describes the context the function loader was initialised against.
type Info struct {
	Vendor      string `json:"vendor"`
	Renderer    string `json:"renderer"`
	Version     string `json:"version"`
	GLSLVersion string `json:"glsl_version"`
}

// Init loads the GL entry points for the current context. A context must
// be current on the calling thread.
func Init() (Info, error) {
	err := gl.Init()
	if err != nil {
		return Info{}, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	info := Info{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	log.Module("rendering").Info(fmt.Sprintf("OpenGL version %s / %s / %s", info.Vendor, info.Renderer, info.Version), "glsl", info.GLSLVersion)

	return info, nil
}
