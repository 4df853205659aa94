package texture

import (
	"golang.org/x/image/math/f32"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/pixel"
)

// maxTextureSize is reported for proxy targets and unbound units.
const maxTextureSize = 2048

// GetTexLevelParameteriv returns a level parameter of the texture bound on
// the active server unit. Sizes come from the tracked object; the remaining
// parameters report the fixed RGBA8 storage GLES uses. Unknown parameters
// return 0, as does a negative level.
func (c *Context) GetTexLevelParameteriv(target gl4es.Enum, level int, pname gl4es.Enum) int32 {
	if level < 0 {
		gl4es.Logger().Debug("texture: negative level in parameter query",
			"target", target, "level", level, "pname", pname)
		return 0
	}
	bound := c.Bound()
	switch pname {
	case gl4es.TEXTURE_WIDTH:
		if target.IsProxy() || bound == nil {
			return maxTextureSize >> level
		}
		return int32(bound.Width >> level)
	case gl4es.TEXTURE_HEIGHT:
		if target.IsProxy() || bound == nil {
			return maxTextureSize >> level
		}
		return int32(bound.Height >> level)
	case gl4es.TEXTURE_INTERNAL_FORMAT:
		return int32(gl4es.RGBA)
	case gl4es.TEXTURE_DEPTH, gl4es.TEXTURE_DEPTH_SIZE, gl4es.TEXTURE_BORDER:
		return 0
	case gl4es.TEXTURE_RED_TYPE, gl4es.TEXTURE_GREEN_TYPE, gl4es.TEXTURE_BLUE_TYPE,
		gl4es.TEXTURE_ALPHA_TYPE, gl4es.TEXTURE_DEPTH_TYPE:
		return int32(gl4es.FLOAT)
	case gl4es.TEXTURE_RED_SIZE, gl4es.TEXTURE_GREEN_SIZE, gl4es.TEXTURE_BLUE_SIZE, gl4es.TEXTURE_ALPHA_SIZE:
		return 8
	case gl4es.TEXTURE_COMPRESSED:
		return int32(gl4es.FALSE)
	case gl4es.TEXTURE_COMPRESSED_IMAGE_SIZE:
		if bound == nil {
			return 0
		}
		return int32(bound.Width * bound.Height * pixel.StorageBytes(bound.Format))
	default:
		gl4es.Logger().Debug("texture: stubbed level parameter query",
			"target", target, "level", level, "pname", pname)
		return 0
	}
}

// AreTexturesResident reports every texture as resident. residences, when
// long enough, is filled with true for each name.
func (c *Context) AreTexturesResident(names []uint32, residences []bool) bool {
	for i := range min(len(names), len(residences)) {
		residences[i] = true
	}
	return true
}

// RescaleTexCoords adjusts texture coordinates for the texture bound on
// server unit. Rectangle textures get texel coordinates normalized first;
// textures with power-of-two padding then get coordinates shrunk onto the
// logical image. Anything else is left untouched.
func (c *Context) RescaleTexCoords(unit int, coords []f32.Vec2) {
	obj, ok := c.store.Lookup(c.units.BoundAt(AxisServer, unit))
	if !ok {
		return
	}
	if c.units.IsRectangle(unit) {
		RescaleRect(coords, obj.Width, obj.Height)
	}
	if obj.IsNPOT() {
		RescaleNPOT(coords, obj.Width, obj.Height, obj.NPOTWidth, obj.NPOTHeight)
	}
}
