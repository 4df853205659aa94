package texture

import (
	"fmt"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/pixel"
)

// TexImage2D uploads a full image to level of the texture bound on the
// active server unit.
//
// The source is repacked according to the unpack configuration, converted
// when GLES cannot take format/type, and placed at the origin of
// power-of-two storage when width or height is not a power of two. A level-0
// upload updates the tracked size of the bound texture. internalFormat is
// ignored; GLES storage always follows the uploaded format.
//
// border is coerced to 0. A failed conversion is logged and the storage is
// allocated without data. A nil data allocates storage only.
func (c *Context) TexImage2D(target gl4es.Enum, level int, internalFormat int32, width, height, border int, format, typ gl4es.Enum, data []byte) error {
	if border != 0 {
		gl4es.Logger().Debug("texture: border coerced to 0", "border", border)
	}
	bound := c.Bound()
	pixels := data

	if data != nil {
		up, owned, err := Unpack(data, width, height, format, typ, c.unpack, c.skipMode)
		if err != nil {
			return fmt.Errorf("texture: image upload: %w", err)
		}
		if owned {
			defer pixel.PutBuffer(up)
		}

		// Normalize logs conversion failures; n then describes a
		// shape-only upload.
		n, _ := Normalize(width, height, format, typ, up)
		if n.Owned {
			defer pixel.PutBuffer(n.Data)
		}
		pixels, format, typ = n.Data, n.Format, n.Type

		if pixels != nil && c.shrink && width > 1 && height > 1 {
			scaled, w, h, err := pixel.Scale(pixels, width, height, 0.5, format, typ)
			if err != nil {
				gl4es.Logger().Warn("texture: shrink failed", "width", width, "height", height, "err", err)
			} else {
				defer pixel.PutBuffer(scaled)
				pixels, width, height = scaled, w, h
			}
		}

		if pixels != nil && c.dump && bound != nil {
			c.dumpImage(bound.Name, pixels, width, height, format, typ)
		}
	} else {
		n, _ := Normalize(width, height, format, typ, nil) // shape only, cannot fail
		format, typ = n.Format, n.Type
	}

	c.allocate(target, level, width, height, format, typ, pixels, bound)
	return nil
}

// allocate issues the storage calls of an image upload.
func (c *Context) allocate(target gl4es.Enum, level, width, height int, format, typ gl4es.Enum, pixels []byte, bound *Object) {
	gt := mapTarget(target)
	if target.IsProxy() {
		c.target.TexImage2D(gt, level, format, width, height, format, typ, pixels)
		return
	}

	nw, nh := NextPowerOfTwo(width), NextPowerOfTwo(height)
	if bound != nil {
		if level == 0 {
			bound.Width, bound.Height = width, height
			bound.NPOTWidth, bound.NPOTHeight = nw, nh
			bound.Format = pixel.StorageFormat(format, typ)
		}
		if pixels != nil {
			bound.Uploaded = true
		}
	}

	if nw != width || nh != height {
		c.target.TexImage2D(gt, level, format, nw, nh, format, typ, nil)
		c.target.TexSubImage2D(gt, level, 0, 0, width, height, format, typ, pixels)
		return
	}
	c.target.TexImage2D(gt, level, format, width, height, format, typ, pixels)
}

// TexSubImage2D uploads a region of level of the bound texture. The tracked
// size of the texture does not change.
func (c *Context) TexSubImage2D(target gl4es.Enum, level, x, y, width, height int, format, typ gl4es.Enum, data []byte) error {
	pixels := data
	if data != nil {
		up, owned, err := Unpack(data, width, height, format, typ, c.unpack, SkipPixelsScaled)
		if err != nil {
			return fmt.Errorf("texture: sub-image upload: %w", err)
		}
		if owned {
			defer pixel.PutBuffer(up)
		}
		pixels = up
	}

	// A failed conversion is logged and falls back to a shape-only upload.
	n, _ := Normalize(width, height, format, typ, pixels)
	if n.Owned {
		defer pixel.PutBuffer(n.Data)
	}
	c.target.TexSubImage2D(mapTarget(target), level, x, y, width, height, n.Format, n.Type, n.Data)
	return nil
}

// TexImage1D uploads a one-row image as a 2D texture.
func (c *Context) TexImage1D(target gl4es.Enum, level int, internalFormat int32, width, border int, format, typ gl4es.Enum, data []byte) error {
	return c.TexImage2D(gl4es.TEXTURE_2D, level, internalFormat, width, 1, border, format, typ, data)
}

// TexSubImage1D uploads a span of a one-row image.
func (c *Context) TexSubImage1D(target gl4es.Enum, level, x, width int, format, typ gl4es.Enum, data []byte) error {
	return c.TexSubImage2D(target, level, x, 0, width, 1, format, typ, data)
}

// TexImage3D uploads the first slice of a 3D image as a 2D texture. depth is
// ignored.
func (c *Context) TexImage3D(target gl4es.Enum, level int, internalFormat int32, width, height, depth, border int, format, typ gl4es.Enum, data []byte) error {
	return c.TexImage2D(gl4es.TEXTURE_2D, level, internalFormat, width, height, border, format, typ, data)
}

// TexSubImage3D uploads a region of the first slice. z and depth are ignored.
func (c *Context) TexSubImage3D(target gl4es.Enum, level, x, y, z, width, height, depth int, format, typ gl4es.Enum, data []byte) error {
	return c.TexSubImage2D(target, level, x, y, width, height, format, typ, data)
}

func (c *Context) dumpImage(name uint32, data []byte, width, height int, format, typ gl4es.Enum) {
	path, err := pixel.Dump(c.dumpDir, name, data, width, height, format, typ, c.dumpFormat)
	if err != nil {
		gl4es.Logger().Warn("texture: dump failed", "texture", name, "err", err)
		return
	}
	gl4es.Logger().Info("texture: dumped", "texture", name, "path", path)
}
