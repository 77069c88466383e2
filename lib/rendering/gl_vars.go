package rendering

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLVars holds the little GL state the render loop touches.
type GLVars struct {
	Program  uint32
	BGColour mgl32.Vec4
}

func NewGLVars(program uint32, bgColour mgl32.Vec4) *GLVars {
	g := &GLVars{}

	g.Program = program
	g.BGColour = bgColour

	return g
}

func (g *GLVars) Start() {
	gl.ClearColor(g.BGColour[0], g.BGColour[1], g.BGColour[2], g.BGColour[3])
	gl.UseProgram(g.Program)
}

// DrawFrame clears the colour buffer and binds the program. Nothing is
// drawn.
func (g *GLVars) DrawFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(g.Program)
}

// ReplaceProgram swaps in program and deletes the previous one.
func (g *GLVars) ReplaceProgram(program uint32) {
	old := g.Program
	g.Program = program
	gl.UseProgram(g.Program)
	if old != 0 && old != program {
		gl.DeleteProgram(old)
	}
}

func (g *GLVars) Delete() {
	if g.Program != 0 {
		gl.DeleteProgram(g.Program)
		g.Program = 0
	}
}

func DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}
