package rendering

import (
	"errors"
	"log/slog"

	"github.com/fosdem/glhello/lib/rendering/diag"
	"github.com/fosdem/glhello/lib/rendering/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
)

type shaderQuerier struct{}

func (shaderQuerier) Iv(object uint32, pname uint32, params *int32) {
	gl.GetShaderiv(object, pname, params)
}

func (shaderQuerier) InfoLog(object uint32, bufSize int32, length *int32, infoLog *uint8) {
	gl.GetShaderInfoLog(object, bufSize, length, infoLog)
}

type programQuerier struct{}

func (programQuerier) Iv(object uint32, pname uint32, params *int32) {
	gl.GetProgramiv(object, pname, params)
}

func (programQuerier) InfoLog(object uint32, bufSize int32, length *int32, infoLog *uint8) {
	gl.GetProgramInfoLog(object, bufSize, length, infoLog)
}

// BuildProgram compiles and links src into a new program object. Stages
// with empty source are skipped. The program handle is returned even when
// compilation or linking failed; the error then carries every diagnostic.
func BuildProgram(src *shaders.Sources, logger *slog.Logger) (uint32, error) {
	program := gl.CreateProgram()

	var errs []error
	if src.Vertex != "" {
		errs = append(errs, attachShader(program, src.Vertex, gl.VERTEX_SHADER, "vertex shader", logger))
	}
	if src.Fragment != "" {
		errs = append(errs, attachShader(program, src.Fragment, gl.FRAGMENT_SHADER, "fragment shader", logger))
	}

	gl.BindAttribLocation(program, 0, gl.Str("position\x00"))
	gl.BindFragDataLocation(program, 0, gl.Str("fragment\x00"))
	gl.LinkProgram(program)

	report := diag.ProgramInfoLog(programQuerier{}, logger, program)
	errs = append(errs, report.Err())

	return program, errors.Join(errs...)
}

// attachShader compiles source and attaches it to program. The shader
// object is flagged for deletion straight away; GL keeps it alive for as
// long as it stays attached.
func attachShader(program uint32, source string, shaderType uint32, where string, logger *slog.Logger) error {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	report := diag.ShaderInfoLog(shaderQuerier{}, logger, shader, where)

	gl.AttachShader(program, shader)
	gl.DeleteShader(shader)

	return report.Err()
}
