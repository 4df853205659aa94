package texture

import (
	"fmt"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/pixel"
)

// UnpackConfig is the pixel-store state that shapes source buffers.
// The zero value describes tightly packed rows.
type UnpackConfig struct {
	RowLength  int32
	SkipPixels int32
	SkipRows   int32
	LSBFirst   bool
}

// Needed reports whether a source image of the given width must be repacked.
func (c UnpackConfig) Needed(width int) bool {
	return (c.RowLength != 0 && int(c.RowLength) != width) || c.SkipPixels != 0 || c.SkipRows != 0
}

// SkipMode selects how UNPACK_SKIP_PIXELS offsets the first pixel.
type SkipMode uint8

const (
	// SkipPixelsScaled skips SkipPixels whole pixels.
	SkipPixelsScaled SkipMode = iota

	// SkipPixelsBytes skips SkipPixels bytes. Older builds of the shim
	// applied the offset this way on full image uploads.
	SkipPixelsBytes
)

// Unpack returns a tightly packed copy of the width x height region that
// cfg describes within data. When cfg needs no repacking data is returned as
// is with owned false. An owned buffer comes from the pixel pool.
func Unpack(data []byte, width, height int, format, typ gl4es.Enum, cfg UnpackConfig, mode SkipMode) (out []byte, owned bool, err error) {
	size := pixel.SizeOf(format, typ)
	if !cfg.Needed(width) {
		if size != 0 && len(data) < width*height*size {
			return nil, false, fmt.Errorf("%w: %d bytes for %dx%d %v/%v", ErrShortBuffer, len(data), width, height, format, typ)
		}
		return data, false, nil
	}
	if cfg.RowLength < 0 || cfg.SkipPixels < 0 || cfg.SkipRows < 0 {
		return nil, false, fmt.Errorf("%w: row length %d, skip %d pixels %d rows",
			ErrInvalidUnpack, cfg.RowLength, cfg.SkipPixels, cfg.SkipRows)
	}
	if size == 0 {
		return nil, false, fmt.Errorf("%w: %v/%v", ErrUnknownPixelSize, format, typ)
	}
	if width <= 0 || height <= 0 {
		return data, false, nil
	}

	rowLen := width
	if cfg.RowLength != 0 {
		rowLen = int(cfg.RowLength)
	}
	stride := rowLen * size
	row := width * size

	skip := int(cfg.SkipPixels) * size
	if mode == SkipPixelsBytes {
		skip = int(cfg.SkipPixels)
	}
	start := skip + int(cfg.SkipRows)*stride
	if start < 0 || start+(height-1)*stride+row > len(data) {
		return nil, false, fmt.Errorf("%w: %d bytes, need %d for %dx%d at row length %d",
			ErrShortBuffer, len(data), start+(height-1)*stride+row, width, height, rowLen)
	}

	out = pixel.GetBuffer(row * height)
	src := start
	for y := range height {
		copy(out[y*row:(y+1)*row], data[src:src+row])
		src += stride
	}
	return out, true, nil
}
