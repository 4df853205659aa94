package pixel

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/templeblock/gl4es"
)

// Scale resamples width*height pixels of src by ratio and returns the result
// in the source format/type together with its dimensions. Each dimension is
// at least 1. The returned buffer comes from the default pool.
func Scale(src []byte, width, height int, ratio float64, format, typ gl4es.Enum) ([]byte, int, int, error) {
	if width <= 0 || height <= 0 || ratio <= 0 {
		return nil, 0, 0, ErrInvalidDimensions
	}
	nw := max(int(float64(width)*ratio), 1)
	nh := max(int(float64(height)*ratio), 1)

	rgbaSrc, owned, err := ToRGBA(src, width, height, format, typ)
	if err != nil {
		return nil, 0, 0, err
	}
	if owned {
		defer PutBuffer(rgbaSrc)
	}

	in := &image.NRGBA{Pix: rgbaSrc, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	scaled := GetBuffer(nw * nh * 4)
	out := &image.NRGBA{Pix: scaled, Stride: nw * 4, Rect: image.Rect(0, 0, nw, nh)}
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), in, in.Bounds(), xdraw.Src, nil)

	if format == gl4es.RGBA && typ == gl4es.UNSIGNED_BYTE {
		return scaled, nw, nh, nil
	}
	defer PutBuffer(scaled)
	res, err := Convert(scaled, nw, nh, gl4es.RGBA, gl4es.UNSIGNED_BYTE, format, typ)
	if err != nil {
		return nil, 0, 0, err
	}
	return res, nw, nh, nil
}
