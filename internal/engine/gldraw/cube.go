// Package gldraw provides OpenGL drawables for scene graph nodes.
package gldraw

import (
	_ "embed"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/Faultbox/scenegraph/internal/engine/shader"
	"github.com/Faultbox/scenegraph/pkg/math"
)

//go:embed cube.vert
var cubeVertexShader string

//go:embed cube.frag
var cubeFragmentShader string

// Program is the shared shader used by every Cube.
type Program struct {
	id           uint32
	locMVP       int32
	locModelView int32
	locNormal    int32
	locModel     int32
	locColor     int32
}

// NewProgram compiles the cube shader and resolves its uniforms.
func NewProgram() (*Program, error) {
	id, err := shader.CompileProgram(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "cube shader")
	}

	p := &Program{id: id}
	for name, loc := range map[string]*int32{
		"uMVP":       &p.locMVP,
		"uModelView": &p.locModelView,
		"uNormal":    &p.locNormal,
		"uModel":     &p.locModel,
		"uColor":     &p.locColor,
	} {
		if *loc, err = shader.Uniform(id, name); err != nil {
			gl.DeleteProgram(id)
			return nil, err
		}
	}
	return p, nil
}

// Release deletes the program.
func (p *Program) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Cube is a unit cube centered on the origin, drawn with a flat color.
type Cube struct {
	program *Program
	color   [3]float32
	vao     uint32
	vbo     uint32
	count   int32
}

// getError is swapped in tests, which run without a GL context.
var getError = gl.GetError

// checkGL reports the pending GL error, if any, as a wrapped error.
func checkGL(what string) error {
	if code := getError(); code != gl.NO_ERROR {
		return errors.Errorf("gldraw: %s failed: gl error 0x%x", what, code)
	}
	return nil
}

// NewCube uploads the cube geometry. Buffers are released if the upload
// leaves a GL error.
func NewCube(program *Program, color [3]float32) (*Cube, error) {
	vertices := CubeVertices()
	c := &Cube{
		program: program,
		color:   color,
		count:   int32(len(vertices) / floatsPerVertex),
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if err := checkGL("cube upload"); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Draw uploads the four matrices and draws the cube.
func (c *Cube) Draw(mvp, modelView, normal, model math.Mat4) error {
	if c.vao == 0 {
		return errors.New("gldraw: cube released")
	}
	p := c.program
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.locMVP, 1, false, mvp.Ptr())
	gl.UniformMatrix4fv(p.locModelView, 1, false, modelView.Ptr())
	gl.UniformMatrix4fv(p.locNormal, 1, false, normal.Ptr())
	gl.UniformMatrix4fv(p.locModel, 1, false, model.Ptr())
	gl.Uniform3f(p.locColor, c.color[0], c.color[1], c.color[2])

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, c.count)
	gl.BindVertexArray(0)

	return checkGL("cube draw")
}

// Release frees the GPU buffers.
func (c *Cube) Release() {
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}
