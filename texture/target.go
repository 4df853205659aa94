package texture

import (
	"golang.org/x/image/math/f32"

	"github.com/templeblock/gl4es"
)

// Target is the GLES-side API a Context drives. Calls map one to one onto
// the GLES entry points of the same name. Texture names are shared between
// the Context and the target.
type Target interface {
	TexImage2D(target gl4es.Enum, level int, internalFormat gl4es.Enum, width, height int, format, typ gl4es.Enum, data []byte)
	TexSubImage2D(target gl4es.Enum, level, x, y, width, height int, format, typ gl4es.Enum, data []byte)
	BindTexture(target gl4es.Enum, name uint32)
	DeleteTextures(names []uint32)
	PixelStorei(pname gl4es.Enum, param int32)
	TexParameteri(target, pname gl4es.Enum, param int32)
	ActiveTexture(unit gl4es.Enum)
	ClientActiveTexture(unit gl4es.Enum)
	ReadPixels(dst []byte, x, y, width, height int, format, typ gl4es.Enum)
}

// Offscreen is the framebuffer-object capability used to emulate texture
// readback. It is resolved once, when the Context is created.
type Offscreen interface {
	CreateFramebuffer() uint32
	BindFramebuffer(fb uint32)
	DeleteFramebuffer(fb uint32)
	CreateRenderbuffer() uint32
	BindRenderbuffer(rb uint32)
	DeleteRenderbuffer(rb uint32)
	RenderbufferStorage(internalFormat gl4es.Enum, width, height int)

	// FramebufferRenderbuffer attaches rb as the color attachment of the
	// bound framebuffer.
	FramebufferRenderbuffer(rb uint32)
	CheckFramebufferStatus() gl4es.Enum

	// DrawTexture fills the bound framebuffer's width x height pixels with
	// the texture bound on the active unit, sampling texture coordinates
	// from (0,0) to uvMax. Texture row 0 lands on framebuffer row 0.
	DrawTexture(width, height int, uvMax f32.Vec2)
}

// mapTarget returns the target GLES understands for a desktop target.
// 1D, 3D and rectangle textures are all backed by 2D textures.
func mapTarget(target gl4es.Enum) gl4es.Enum {
	switch target {
	case gl4es.TEXTURE_1D, gl4es.TEXTURE_3D, gl4es.TEXTURE_RECTANGLE:
		return gl4es.TEXTURE_2D
	case gl4es.PROXY_TEXTURE_1D, gl4es.PROXY_TEXTURE_3D, gl4es.PROXY_TEXTURE_RECTANGLE:
		return gl4es.PROXY_TEXTURE_2D
	default:
		return target
	}
}
