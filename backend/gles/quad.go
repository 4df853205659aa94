// Copyright 2026 The gl4es Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/gl"

	"github.com/templeblock/gl4es"
)

const quadVertexSrc = `#version 100
uniform vec2 uvMax;
attribute vec2 pos;
varying vec2 uv;
void main() {
	uv = (pos * 0.5 + 0.5) * uvMax;
	gl_Position = vec4(pos, 0, 1);
}
`

const quadFragmentSrc = `#version 100
precision mediump float;
uniform sampler2D sample;
varying vec2 uv;
void main() {
	gl_FragColor = texture2D(sample, uv);
}
`

// quadXYCoords covers clip space as a triangle strip. Clip-space y = -1 is
// framebuffer row 0 and samples texture row 0.
var quadXYCoords = f32Bytes(
	-1, -1,
	+1, -1,
	-1, +1,
	+1, +1,
)

// f32Bytes returns the native-endian byte representation of values.
func f32Bytes(values ...float32) []byte {
	b := make([]byte, 0, 4*len(values))
	for _, v := range values {
		b = binary.NativeEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

// quad is the program and vertex buffer that draw a texture over the whole
// viewport.
type quad struct {
	program gl.Program
	buf     gl.Buffer
	pos     gl.Attrib
	uvMax   gl.Uniform
	sample  gl.Uniform
}

func newQuad(ctx gl.Context) (*quad, error) {
	program, err := compileProgram(ctx, quadVertexSrc, quadFragmentSrc)
	if err != nil {
		return nil, err
	}
	q := &quad{
		program: program,
		buf:     ctx.CreateBuffer(),
		pos:     ctx.GetAttribLocation(program, "pos"),
		uvMax:   ctx.GetUniformLocation(program, "uvMax"),
		sample:  ctx.GetUniformLocation(program, "sample"),
	}
	ctx.BindBuffer(gl.ARRAY_BUFFER, q.buf)
	ctx.BufferData(gl.ARRAY_BUFFER, quadXYCoords, gl.STATIC_DRAW)
	return q, nil
}

func (q *quad) release(ctx gl.Context) {
	ctx.DeleteProgram(q.program)
	ctx.DeleteBuffer(q.buf)
}

func compileProgram(ctx gl.Context, vSrc, fSrc string) (gl.Program, error) {
	program := ctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, ErrNoProgram
	}

	vertexShader, err := compileShader(ctx, gl.VERTEX_SHADER, vSrc)
	if err != nil {
		ctx.DeleteProgram(program)
		return gl.Program{}, err
	}
	fragmentShader, err := compileShader(ctx, gl.FRAGMENT_SHADER, fSrc)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		ctx.DeleteProgram(program)
		return gl.Program{}, err
	}

	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.LinkProgram(program)

	// Flag shaders for deletion when program is unlinked.
	ctx.DeleteShader(vertexShader)
	ctx.DeleteShader(fragmentShader)

	if ctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		defer ctx.DeleteProgram(program)
		return gl.Program{}, fmt.Errorf("%w: %s", ErrProgramLink, ctx.GetProgramInfoLog(program))
	}
	return program, nil
}

func compileShader(ctx gl.Context, shaderType gl.Enum, src string) (gl.Shader, error) {
	shader := ctx.CreateShader(shaderType)
	if shader.Value == 0 {
		return gl.Shader{}, fmt.Errorf("%w: could not create shader (type %v)", ErrShaderCompile, shaderType)
	}
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)
	if ctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		defer ctx.DeleteShader(shader)
		return gl.Shader{}, fmt.Errorf("%w: %s", ErrShaderCompile, ctx.GetShaderInfoLog(shader))
	}
	return shader, nil
}

// DrawTexture implements texture.Offscreen. It renders the texture bound on
// the active unit into the bound framebuffer, then restores the viewport,
// program and array buffer it changed.
func (t *Target) DrawTexture(width, height int, uvMax f32.Vec2) {
	if err := t.Init(); err != nil {
		gl4es.Logger().Warn("gles: cannot build quad program", "err", err)
		return
	}
	ctx, q := t.ctx, t.quad

	var viewport [4]int32
	ctx.GetIntegerv(viewport[:], gl.VIEWPORT)
	prevProgram := ctx.GetInteger(gl.CURRENT_PROGRAM)
	prevBuffer := ctx.GetInteger(gl.ARRAY_BUFFER_BINDING)

	ctx.Viewport(0, 0, width, height)
	ctx.UseProgram(q.program)
	ctx.Uniform1i(q.sample, t.unit)
	ctx.Uniform2f(q.uvMax, uvMax[0], uvMax[1])

	ctx.BindBuffer(gl.ARRAY_BUFFER, q.buf)
	ctx.EnableVertexAttribArray(q.pos)
	ctx.VertexAttribPointer(q.pos, 2, gl.FLOAT, false, 0, 0)
	ctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	ctx.DisableVertexAttribArray(q.pos)

	ctx.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{Value: uint32(prevBuffer)})
	ctx.UseProgram(gl.Program{Init: prevProgram != 0, Value: uint32(prevProgram)})
	ctx.Viewport(int(viewport[0]), int(viewport[1]), int(viewport[2]), int(viewport[3]))
}
