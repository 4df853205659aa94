package texture

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/templeblock/gl4es"
)

// readback renders textures into a temporary framebuffer to read them.
type readback struct {
	off Offscreen
}

// GetTexImage reads level 0 of the texture bound on the active server unit
// into dst as RGBA/UNSIGNED_BYTE rows of the tracked width. dst must hold
// width*height*4 bytes.
//
// Without a bound texture GetTexImage does nothing. Other levels, formats
// and types return ErrUnsupportedReadback.
func (c *Context) GetTexImage(target gl4es.Enum, level int, format, typ gl4es.Enum, dst []byte) error {
	bound := c.Bound()
	if bound == nil {
		return nil
	}
	if level != 0 || format != gl4es.RGBA || typ != gl4es.UNSIGNED_BYTE {
		gl4es.Logger().Warn("texture: unsupported readback",
			"target", target, "level", level, "format", format, "type", typ)
		return fmt.Errorf("%w: level %d %v/%v", ErrUnsupportedReadback, level, format, typ)
	}
	if c.readback == nil {
		return ErrNoOffscreen
	}
	return c.readback.read(c, bound, dst)
}

func (r *readback) read(c *Context, obj *Object, dst []byte) error {
	width, height := obj.Width, obj.Height
	if need := width * height * 4; len(dst) < need {
		return fmt.Errorf("%w: readback needs %d bytes, got %d", ErrShortBuffer, need, len(dst))
	}
	if width == 0 || height == 0 {
		return nil
	}
	prev := obj.Name
	restore := obj.Target
	if rect := c.units.IsRectangle(c.units.Active(AxisServer)); rect != (restore == gl4es.TEXTURE_RECTANGLE) {
		restore = gl4es.TEXTURE_2D
		if rect {
			restore = gl4es.TEXTURE_RECTANGLE
		}
	}

	fb := r.off.CreateFramebuffer()
	r.off.BindFramebuffer(fb)
	rb := r.off.CreateRenderbuffer()
	r.off.BindRenderbuffer(rb)
	r.off.RenderbufferStorage(gl4es.RGBA8, width, height)
	r.off.FramebufferRenderbuffer(rb)

	var err error
	if status := r.off.CheckFramebufferStatus(); status != gl4es.FRAMEBUFFER_COMPLETE {
		gl4es.Logger().Warn("texture: readback framebuffer incomplete", "texture", prev, "status", status)
		err = fmt.Errorf("%w: status %v", ErrIncompleteFramebuffer, status)
	} else {
		uvMax := f32.Vec2{
			float32(width) / float32(obj.NPOTWidth),
			float32(height) / float32(obj.NPOTHeight),
		}
		r.off.DrawTexture(width, height, uvMax)
		c.target.ReadPixels(dst[:width*height*4], 0, 0, width, height, gl4es.RGBA, gl4es.UNSIGNED_BYTE)
	}

	r.off.BindRenderbuffer(0)
	r.off.BindFramebuffer(0)
	c.bindTexture(restore, prev)
	r.off.DeleteRenderbuffer(rb)
	r.off.DeleteFramebuffer(fb)
	return err
}
