// Package pixel provides the pixel primitives the texture shim builds on:
// bytes-per-pixel of GL format/type pairs, conversion between pairs,
// resampling, image dumps, and a pool of scratch buffers.
//
// Buffers are raw GL client memory: rows are tightly packed, multi-byte
// components use the host byte order.
package pixel

import (
	"errors"

	"github.com/templeblock/gl4es"
)

// Common errors for pixel operations.
var (
	// ErrUnsupported is returned when a format/type pair cannot be decoded or encoded.
	ErrUnsupported = errors.New("pixel: unsupported format/type pair")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrDataTooSmall is returned when the source buffer is smaller than width*height pixels.
	ErrDataTooSmall = errors.New("pixel: data buffer too small")
)

// Components returns the number of components of a pixel format, or 0 when
// the format is unknown.
func Components(format gl4es.Enum) int {
	switch format {
	case gl4es.ALPHA, gl4es.LUMINANCE, gl4es.INTENSITY,
		gl4es.RED, gl4es.GREEN, gl4es.BLUE, gl4es.DEPTH_COMPONENT:
		return 1
	case gl4es.LUMINANCE_ALPHA, gl4es.RG:
		return 2
	case gl4es.RGB, gl4es.BGR:
		return 3
	case gl4es.RGBA, gl4es.BGRA:
		return 4
	default:
		return 0
	}
}

// componentBytes returns the size of one component of a non-packed type.
func componentBytes(typ gl4es.Enum) int {
	switch typ {
	case gl4es.UNSIGNED_BYTE, gl4es.BYTE:
		return 1
	case gl4es.UNSIGNED_SHORT, gl4es.SHORT, gl4es.HALF_FLOAT:
		return 2
	case gl4es.UNSIGNED_INT, gl4es.INT, gl4es.FLOAT:
		return 4
	default:
		return 0
	}
}

// SizeOf returns the number of bytes one pixel of the given format/type
// pair occupies, or 0 when the pair is unknown. Packed types carry the whole
// pixel in one unit regardless of the format.
func SizeOf(format, typ gl4es.Enum) int {
	if p, ok := packedLayouts[typ]; ok {
		return p.unit
	}
	return Components(format) * componentBytes(typ)
}

// RowBytes returns the number of bytes of a tightly packed row.
func RowBytes(format, typ gl4es.Enum, width int) int {
	return SizeOf(format, typ) * width
}

// ImageBytes returns the number of bytes of a tightly packed image.
func ImageBytes(format, typ gl4es.Enum, width, height int) int {
	return RowBytes(format, typ, width) * height
}
