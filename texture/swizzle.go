package texture

import (
	"fmt"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/pixel"
)

// Normalized is the result of Normalize.
type Normalized struct {
	// Data holds the pixels to upload. It is nil for shape-only uploads and
	// after a failed conversion.
	Data []byte

	// Format and Type describe Data.
	Format, Type gl4es.Enum

	// Owned reports that Data was allocated by Normalize. The caller hands
	// it back with pixel.PutBuffer once the upload is done.
	Owned bool
}

// nativeFormat reports whether GLES takes format as is.
func nativeFormat(format gl4es.Enum) bool {
	switch format {
	case gl4es.ALPHA, gl4es.RGB, gl4es.RGBA, gl4es.LUMINANCE, gl4es.LUMINANCE_ALPHA:
		return true
	}
	return false
}

// Normalize rewrites a format/type pair GLES cannot take into
// RGBA/UNSIGNED_BYTE, converting data when present. UNSIGNED_INT_8_8_8_8_REV
// is taken as UNSIGNED_BYTE without conversion.
//
// When conversion fails a warning is logged, the pair is still rewritten and
// the returned Data is nil, so the upload allocates storage only. The error
// wraps ErrConversion.
//
// A pair that needs no conversion returns data itself with Owned false.
func Normalize(width, height int, format, typ gl4es.Enum, data []byte) (Normalized, error) {
	n := Normalized{Data: data, Format: format, Type: typ}
	convert := !nativeFormat(format)
	switch typ {
	case gl4es.UNSIGNED_BYTE, gl4es.UNSIGNED_SHORT_5_6_5,
		gl4es.UNSIGNED_SHORT_4_4_4_4, gl4es.UNSIGNED_SHORT_5_5_5_1:
	case gl4es.UNSIGNED_INT_8_8_8_8_REV:
		n.Type = gl4es.UNSIGNED_BYTE
	default:
		convert = true
	}
	if !convert {
		return n, nil
	}

	if data != nil {
		out, err := pixel.Convert(data, width, height, n.Format, n.Type, gl4es.RGBA, gl4es.UNSIGNED_BYTE)
		if err != nil {
			gl4es.Logger().Warn("texture: swizzle failed",
				"format", n.Format, "type", n.Type, "width", width, "height", height, "err", err)
			n = Normalized{Format: gl4es.RGBA, Type: gl4es.UNSIGNED_BYTE}
			return n, fmt.Errorf("%w: %v/%v: %w", ErrConversion, format, typ, err)
		}
		n.Data = out
		n.Owned = true
	}
	n.Format = gl4es.RGBA
	n.Type = gl4es.UNSIGNED_BYTE
	return n, nil
}
