// Copyright 2026 The gl4es Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"golang.org/x/mobile/gl"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/texture"
)

// Target adapts a gl.Context to texture.Target and texture.Offscreen.
// Texture names are passed through unchanged, so they must have been
// created by the same GLES context.
//
// The Target is not safe for concurrent use.
type Target struct {
	ctx  gl.Context
	unit int
	quad *quad
}

var (
	_ texture.Target    = (*Target)(nil)
	_ texture.Offscreen = (*Target)(nil)
)

// New wraps ctx. The quad program used by DrawTexture is built on first
// use; call Init to build it up front.
func New(ctx gl.Context) *Target {
	return &Target{ctx: ctx}
}

// Init builds the program DrawTexture renders with.
func (t *Target) Init() error {
	if t.quad != nil {
		return nil
	}
	q, err := newQuad(t.ctx)
	if err != nil {
		return err
	}
	t.quad = q
	return nil
}

// Release deletes the GLES objects owned by the Target.
func (t *Target) Release() {
	if t.quad != nil {
		t.quad.release(t.ctx)
		t.quad = nil
	}
}

// TexImage2D implements texture.Target. GLES has no proxy targets, so
// proxy uploads are dropped.
func (t *Target) TexImage2D(target gl4es.Enum, level int, internalFormat gl4es.Enum, width, height int, format, typ gl4es.Enum, data []byte) {
	if target.IsProxy() {
		gl4es.Logger().Debug("gles: proxy upload dropped", "target", target, "width", width, "height", height)
		return
	}
	t.ctx.TexImage2D(gl.Enum(target), level, int(internalFormat), width, height, gl.Enum(format), gl.Enum(typ), data)
}

// TexSubImage2D implements texture.Target. A sub-image without pixels has
// nothing to upload.
func (t *Target) TexSubImage2D(target gl4es.Enum, level, x, y, width, height int, format, typ gl4es.Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	t.ctx.TexSubImage2D(gl.Enum(target), level, x, y, width, height, gl.Enum(format), gl.Enum(typ), data)
}

// BindTexture implements texture.Target.
func (t *Target) BindTexture(target gl4es.Enum, name uint32) {
	t.ctx.BindTexture(gl.Enum(target), gl.Texture{Value: name})
}

// DeleteTextures implements texture.Target.
func (t *Target) DeleteTextures(names []uint32) {
	for _, name := range names {
		if name != 0 {
			t.ctx.DeleteTexture(gl.Texture{Value: name})
		}
	}
}

// PixelStorei implements texture.Target.
func (t *Target) PixelStorei(pname gl4es.Enum, param int32) {
	t.ctx.PixelStorei(gl.Enum(pname), param)
}

// TexParameteri implements texture.Target.
func (t *Target) TexParameteri(target, pname gl4es.Enum, param int32) {
	t.ctx.TexParameteri(gl.Enum(target), gl.Enum(pname), int(param))
}

// ActiveTexture implements texture.Target.
func (t *Target) ActiveTexture(unit gl4es.Enum) {
	t.unit = int(unit) - int(gl4es.TEXTURE0)
	t.ctx.ActiveTexture(gl.Enum(unit))
}

// ClientActiveTexture implements texture.Target. GLES 2 has no client
// texture units; the selection only matters to the texture.Context.
func (t *Target) ClientActiveTexture(unit gl4es.Enum) {}

// ReadPixels implements texture.Target.
func (t *Target) ReadPixels(dst []byte, x, y, width, height int, format, typ gl4es.Enum) {
	t.ctx.ReadPixels(dst, x, y, width, height, gl.Enum(format), gl.Enum(typ))
}

// CreateFramebuffer implements texture.Offscreen.
func (t *Target) CreateFramebuffer() uint32 {
	return t.ctx.CreateFramebuffer().Value
}

// BindFramebuffer implements texture.Offscreen.
func (t *Target) BindFramebuffer(fb uint32) {
	t.ctx.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{Value: fb})
}

// DeleteFramebuffer implements texture.Offscreen.
func (t *Target) DeleteFramebuffer(fb uint32) {
	t.ctx.DeleteFramebuffer(gl.Framebuffer{Value: fb})
}

// CreateRenderbuffer implements texture.Offscreen.
func (t *Target) CreateRenderbuffer() uint32 {
	return t.ctx.CreateRenderbuffer().Value
}

// BindRenderbuffer implements texture.Offscreen.
func (t *Target) BindRenderbuffer(rb uint32) {
	t.ctx.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{Value: rb})
}

// DeleteRenderbuffer implements texture.Offscreen.
func (t *Target) DeleteRenderbuffer(rb uint32) {
	t.ctx.DeleteRenderbuffer(gl.Renderbuffer{Value: rb})
}

// RenderbufferStorage implements texture.Offscreen.
func (t *Target) RenderbufferStorage(internalFormat gl4es.Enum, width, height int) {
	t.ctx.RenderbufferStorage(gl.RENDERBUFFER, gl.Enum(internalFormat), width, height)
}

// FramebufferRenderbuffer implements texture.Offscreen.
func (t *Target) FramebufferRenderbuffer(rb uint32) {
	t.ctx.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, gl.Renderbuffer{Value: rb})
}

// CheckFramebufferStatus implements texture.Offscreen.
func (t *Target) CheckFramebufferStatus() gl4es.Enum {
	return gl4es.Enum(t.ctx.CheckFramebufferStatus(gl.FRAMEBUFFER))
}
