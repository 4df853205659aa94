package pixel

import (
	"github.com/gogpu/gputypes"

	"github.com/templeblock/gl4es"
)

// StorageFormat returns the texel format a GLES implementation allocates for
// an upload of the given format/type pair. Every multi-channel pair lands in
// RGBA8 storage, single-channel ones in R8.
func StorageFormat(format, typ gl4es.Enum) gputypes.TextureFormat {
	if SizeOf(format, typ) == 0 {
		return gputypes.TextureFormatUndefined
	}
	switch format {
	case gl4es.BGRA:
		return gputypes.TextureFormatBGRA8Unorm
	case gl4es.ALPHA, gl4es.LUMINANCE, gl4es.INTENSITY, gl4es.RED:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// StorageBytes returns the bytes per texel of a storage format, or 0 for
// formats the shim never allocates.
func StorageBytes(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4
	case gputypes.TextureFormatR8Unorm:
		return 1
	default:
		return 0
	}
}
