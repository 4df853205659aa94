// Copyright 2026 The gl4es Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"golang.org/x/image/math/f32"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/pixel"
)

func (d *Device) newObject() uint32 {
	d.nextObject++
	return d.nextObject
}

// CreateFramebuffer creates a framebuffer with no attachment.
func (d *Device) CreateFramebuffer() uint32 {
	fb := d.newObject()
	d.log(Call{Name: "CreateFramebuffer", Names: []uint32{fb}})
	d.framebuffers[fb] = 0
	return fb
}

// BindFramebuffer binds fb; 0 binds the default framebuffer.
func (d *Device) BindFramebuffer(fb uint32) {
	d.log(Call{Name: "BindFramebuffer", Names: []uint32{fb}})
	d.fb = fb
}

// DeleteFramebuffer deletes fb.
func (d *Device) DeleteFramebuffer(fb uint32) {
	d.log(Call{Name: "DeleteFramebuffer", Names: []uint32{fb}})
	delete(d.framebuffers, fb)
	if d.fb == fb {
		d.fb = 0
	}
}

// CreateRenderbuffer creates an empty renderbuffer.
func (d *Device) CreateRenderbuffer() uint32 {
	rb := d.newObject()
	d.log(Call{Name: "CreateRenderbuffer", Names: []uint32{rb}})
	d.renderbuffers[rb] = nil
	return rb
}

// BindRenderbuffer binds rb; 0 unbinds.
func (d *Device) BindRenderbuffer(rb uint32) {
	d.log(Call{Name: "BindRenderbuffer", Names: []uint32{rb}})
	d.rb = rb
}

// DeleteRenderbuffer deletes rb.
func (d *Device) DeleteRenderbuffer(rb uint32) {
	d.log(Call{Name: "DeleteRenderbuffer", Names: []uint32{rb}})
	delete(d.renderbuffers, rb)
	if d.rb == rb {
		d.rb = 0
	}
}

// RenderbufferStorage allocates storage for the bound renderbuffer. Only
// RGBA8 and RGBA4 are color-renderable.
func (d *Device) RenderbufferStorage(internalFormat gl4es.Enum, width, height int) {
	d.log(Call{Name: "RenderbufferStorage", Format: internalFormat, Width: width, Height: height})
	if _, ok := d.renderbuffers[d.rb]; !ok || d.rb == 0 {
		return
	}
	if internalFormat != gl4es.RGBA8 && internalFormat != gl4es.RGBA4 {
		return
	}
	d.renderbuffers[d.rb] = newImage(width, height)
}

// FramebufferRenderbuffer attaches rb to the bound framebuffer.
func (d *Device) FramebufferRenderbuffer(rb uint32) {
	d.log(Call{Name: "FramebufferRenderbuffer", Names: []uint32{rb}})
	if _, ok := d.framebuffers[d.fb]; ok && d.fb != 0 {
		d.framebuffers[d.fb] = rb
	}
}

// CheckFramebufferStatus reports whether the bound framebuffer has a color
// attachment with storage.
func (d *Device) CheckFramebufferStatus() gl4es.Enum {
	d.log(Call{Name: "CheckFramebufferStatus"})
	if d.FramebufferStatus != 0 {
		return d.FramebufferStatus
	}
	if d.attachment() == nil {
		return gl4es.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	return gl4es.FRAMEBUFFER_COMPLETE
}

func (d *Device) attachment() *Image {
	rb, ok := d.framebuffers[d.fb]
	if !ok || d.fb == 0 {
		return nil
	}
	img := d.renderbuffers[rb]
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil
	}
	return img
}

// DrawTexture fills the top-left width x height pixels of the bound
// framebuffer with level 0 of the texture bound on the active unit, using
// nearest sampling over texture coordinates (0,0)-uvMax.
func (d *Device) DrawTexture(width, height int, uvMax f32.Vec2) {
	d.log(Call{Name: "DrawTexture", Width: width, Height: height})
	dst := d.attachment()
	t := d.bound()
	if dst == nil || t == nil {
		return
	}
	src, ok := t.Levels[0]
	if !ok {
		return
	}
	for y := range min(height, dst.Height) {
		v := (float32(y) + 0.5) / float32(height) * uvMax[1]
		sy := clamp(int(v*float32(src.Height)), src.Height-1)
		for x := range min(width, dst.Width) {
			u := (float32(x) + 0.5) / float32(width) * uvMax[0]
			sx := clamp(int(u*float32(src.Width)), src.Width-1)
			copy(dst.Pix[(y*dst.Width+x)*4:][:4], src.Pix[(sy*src.Width+sx)*4:][:4])
		}
	}
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}

// ReadPixels copies a region of the bound framebuffer into dst, converted
// to format/type. Pixels outside the framebuffer are left untouched.
func (d *Device) ReadPixels(dst []byte, x, y, width, height int, format, typ gl4es.Enum) {
	d.log(Call{Name: "ReadPixels", X: x, Y: y, Width: width, Height: height, Format: format, Type: typ})
	src := d.attachment()
	if src == nil || width <= 0 || height <= 0 {
		return
	}
	region := pixel.GetBuffer(width * height * 4)
	defer pixel.PutBuffer(region)
	for row := range height {
		sy := y + row
		if sy < 0 || sy >= src.Height {
			continue
		}
		for col := range width {
			sx := x + col
			if sx < 0 || sx >= src.Width {
				continue
			}
			copy(region[(row*width+col)*4:][:4], src.Pix[(sy*src.Width+sx)*4:][:4])
		}
	}

	if format == gl4es.RGBA && typ == gl4es.UNSIGNED_BYTE {
		copy(dst, region)
		return
	}
	out, err := pixel.Convert(region, width, height, gl4es.RGBA, gl4es.UNSIGNED_BYTE, format, typ)
	if err != nil {
		gl4es.Logger().Warn("softgl: cannot encode pixels", "format", format, "type", typ, "err", err)
		return
	}
	defer pixel.PutBuffer(out)
	copy(dst, out)
}
