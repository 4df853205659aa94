package pixel

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/templeblock/gl4es"
)

// packedLayout describes a packed pixel type: the unit size in bytes and the
// bit widths of its fields, first component first.
type packedLayout struct {
	unit   int
	widths []uint
	rev    bool // first component in the least significant bits
}

var packedLayouts = map[gl4es.Enum]packedLayout{
	gl4es.UNSIGNED_BYTE_3_3_2:         {unit: 1, widths: []uint{3, 3, 2}},
	gl4es.UNSIGNED_BYTE_2_3_3_REV:     {unit: 1, widths: []uint{3, 3, 2}, rev: true},
	gl4es.UNSIGNED_SHORT_5_6_5:        {unit: 2, widths: []uint{5, 6, 5}},
	gl4es.UNSIGNED_SHORT_5_6_5_REV:    {unit: 2, widths: []uint{5, 6, 5}, rev: true},
	gl4es.UNSIGNED_SHORT_4_4_4_4:      {unit: 2, widths: []uint{4, 4, 4, 4}},
	gl4es.UNSIGNED_SHORT_4_4_4_4_REV:  {unit: 2, widths: []uint{4, 4, 4, 4}, rev: true},
	gl4es.UNSIGNED_SHORT_5_5_5_1:      {unit: 2, widths: []uint{5, 5, 5, 1}},
	gl4es.UNSIGNED_SHORT_1_5_5_5_REV:  {unit: 2, widths: []uint{5, 5, 5, 1}, rev: true},
	gl4es.UNSIGNED_INT_8_8_8_8:        {unit: 4, widths: []uint{8, 8, 8, 8}},
	gl4es.UNSIGNED_INT_8_8_8_8_REV:    {unit: 4, widths: []uint{8, 8, 8, 8}, rev: true},
	gl4es.UNSIGNED_INT_10_10_10_2:     {unit: 4, widths: []uint{10, 10, 10, 2}},
	gl4es.UNSIGNED_INT_2_10_10_10_REV: {unit: 4, widths: []uint{10, 10, 10, 2}, rev: true},
}

// rgba is one decoded pixel, straight alpha, 8 bits per channel.
type rgba [4]uint8

// Convert converts width*height pixels of src from (format, typ) into a new
// buffer encoded as (dstFormat, dstType). The returned buffer comes from the
// default pool; callers hand it back with PutBuffer once consumed.
func Convert(src []byte, width, height int, format, typ, dstFormat, dstType gl4es.Enum) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	srcSize := SizeOf(format, typ)
	dstSize := SizeOf(dstFormat, dstType)
	if srcSize == 0 || !canDecode(format, typ) {
		return nil, fmt.Errorf("%w: source %v/%v", ErrUnsupported, format, typ)
	}
	if dstSize == 0 || !canEncode(dstFormat, dstType) {
		return nil, fmt.Errorf("%w: destination %v/%v", ErrUnsupported, dstFormat, dstType)
	}
	n := width * height
	if len(src) < n*srcSize {
		return nil, ErrDataTooSmall
	}

	dst := GetBuffer(n * dstSize)
	for i := range n {
		p := decode(src[i*srcSize:(i+1)*srcSize], format, typ)
		encode(dst[i*dstSize:(i+1)*dstSize], p, dstFormat, dstType)
	}
	return dst, nil
}

// ToRGBA converts a buffer to tightly packed RGBA/UNSIGNED_BYTE. When the
// buffer already has that encoding it is returned as is with owned=false.
func ToRGBA(src []byte, width, height int, format, typ gl4es.Enum) (out []byte, owned bool, err error) {
	if format == gl4es.RGBA && typ == gl4es.UNSIGNED_BYTE {
		if len(src) < width*height*4 {
			return nil, false, ErrDataTooSmall
		}
		return src[:width*height*4], false, nil
	}
	out, err = Convert(src, width, height, format, typ, gl4es.RGBA, gl4es.UNSIGNED_BYTE)
	return out, err == nil, err
}

func canDecode(format, typ gl4es.Enum) bool {
	if Components(format) == 0 || format == gl4es.DEPTH_COMPONENT {
		return false
	}
	if p, ok := packedLayouts[typ]; ok {
		return len(p.widths) == Components(format)
	}
	return componentBytes(typ) != 0
}

func canEncode(format, typ gl4es.Enum) bool {
	switch format {
	case gl4es.RGBA, gl4es.BGRA, gl4es.RGB, gl4es.BGR,
		gl4es.ALPHA, gl4es.LUMINANCE, gl4es.LUMINANCE_ALPHA:
	default:
		return false
	}
	if p, ok := packedLayouts[typ]; ok {
		return len(p.widths) == Components(format)
	}
	return typ == gl4es.UNSIGNED_BYTE || typ == gl4es.FLOAT
}

// decode reads one pixel.
func decode(b []byte, format, typ gl4es.Enum) rgba {
	var c [4]uint8
	nc := Components(format)
	if p, ok := packedLayouts[typ]; ok {
		v := readUnit(b, p.unit)
		unpackFields(v, p, c[:nc])
	} else {
		cb := componentBytes(typ)
		for i := range nc {
			c[i] = readComponent(b[i*cb:(i+1)*cb], typ)
		}
	}
	return expand(c, format)
}

// expand maps the components of a format onto RGBA the way GL does when it
// fills in missing channels.
func expand(c [4]uint8, format gl4es.Enum) rgba {
	switch format {
	case gl4es.RGBA:
		return rgba{c[0], c[1], c[2], c[3]}
	case gl4es.BGRA:
		return rgba{c[2], c[1], c[0], c[3]}
	case gl4es.RGB:
		return rgba{c[0], c[1], c[2], 255}
	case gl4es.BGR:
		return rgba{c[2], c[1], c[0], 255}
	case gl4es.ALPHA:
		return rgba{0, 0, 0, c[0]}
	case gl4es.LUMINANCE:
		return rgba{c[0], c[0], c[0], 255}
	case gl4es.LUMINANCE_ALPHA:
		return rgba{c[0], c[0], c[0], c[1]}
	case gl4es.INTENSITY:
		return rgba{c[0], c[0], c[0], c[0]}
	case gl4es.RED:
		return rgba{c[0], 0, 0, 255}
	case gl4es.GREEN:
		return rgba{0, c[0], 0, 255}
	case gl4es.BLUE:
		return rgba{0, 0, c[0], 255}
	case gl4es.RG:
		return rgba{c[0], c[1], 0, 255}
	default:
		return rgba{}
	}
}

// encode writes one pixel.
func encode(b []byte, p rgba, format, typ gl4es.Enum) {
	var c [4]uint8
	switch format {
	case gl4es.RGBA:
		c = [4]uint8{p[0], p[1], p[2], p[3]}
	case gl4es.BGRA:
		c = [4]uint8{p[2], p[1], p[0], p[3]}
	case gl4es.RGB:
		c = [4]uint8{p[0], p[1], p[2]}
	case gl4es.BGR:
		c = [4]uint8{p[2], p[1], p[0]}
	case gl4es.ALPHA:
		c = [4]uint8{p[3]}
	case gl4es.LUMINANCE:
		c = [4]uint8{luminance(p)}
	case gl4es.LUMINANCE_ALPHA:
		c = [4]uint8{luminance(p), p[3]}
	}
	nc := Components(format)

	if l, ok := packedLayouts[typ]; ok {
		writeUnit(b, l.unit, packFields(c[:nc], l))
		return
	}
	switch typ {
	case gl4es.UNSIGNED_BYTE:
		copy(b, c[:nc])
	case gl4es.FLOAT:
		for i := range nc {
			binary.NativeEndian.PutUint32(b[i*4:], math.Float32bits(float32(c[i])/255))
		}
	}
}

// luminance uses the standard weights 0.299 R + 0.587 G + 0.114 B.
func luminance(p rgba) uint8 {
	return uint8((int(p[0])*299 + int(p[1])*587 + int(p[2])*114) / 1000)
}

func readUnit(b []byte, unit int) uint32 {
	switch unit {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.NativeEndian.Uint16(b))
	default:
		return binary.NativeEndian.Uint32(b)
	}
}

func writeUnit(b []byte, unit int, v uint32) {
	switch unit {
	case 1:
		b[0] = uint8(v)
	case 2:
		binary.NativeEndian.PutUint16(b, uint16(v))
	default:
		binary.NativeEndian.PutUint32(b, v)
	}
}

func unpackFields(v uint32, l packedLayout, out []uint8) {
	shift := uint(l.unit * 8)
	if l.rev {
		shift = 0
	}
	for i, w := range l.widths {
		mask := uint32(1)<<w - 1
		if !l.rev {
			shift -= w
		}
		f := (v >> shift) & mask
		out[i] = uint8((f*255 + mask/2) / mask)
		if l.rev {
			shift += w
		}
	}
}

func packFields(c []uint8, l packedLayout) uint32 {
	var v uint32
	shift := uint(l.unit * 8)
	if l.rev {
		shift = 0
	}
	for i, w := range l.widths {
		mask := uint32(1)<<w - 1
		f := (uint32(c[i])*mask + 127) / 255
		if !l.rev {
			shift -= w
		}
		v |= f << shift
		if l.rev {
			shift += w
		}
	}
	return v
}

// readComponent normalizes one component of a non-packed type to 8 bits.
func readComponent(b []byte, typ gl4es.Enum) uint8 {
	switch typ {
	case gl4es.UNSIGNED_BYTE:
		return b[0]
	case gl4es.BYTE:
		return unitToByte(float64(int8(b[0])) / 127)
	case gl4es.UNSIGNED_SHORT:
		return uint8(binary.NativeEndian.Uint16(b) >> 8)
	case gl4es.SHORT:
		return unitToByte(float64(int16(binary.NativeEndian.Uint16(b))) / 32767)
	case gl4es.UNSIGNED_INT:
		return uint8(binary.NativeEndian.Uint32(b) >> 24)
	case gl4es.INT:
		return unitToByte(float64(int32(binary.NativeEndian.Uint32(b))) / 2147483647)
	case gl4es.FLOAT:
		return unitToByte(float64(math.Float32frombits(binary.NativeEndian.Uint32(b))))
	case gl4es.HALF_FLOAT:
		return unitToByte(halfToFloat(binary.NativeEndian.Uint16(b)))
	default:
		return 0
	}
}

// unitToByte clamps f to [0,1] and scales it to [0,255] with rounding.
func unitToByte(f float64) uint8 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// halfToFloat decodes an IEEE 754 binary16 value.
func halfToFloat(h uint16) float64 {
	sign := 1.0
	if h&0x8000 != 0 {
		sign = -1
	}
	exp := int(h>>10) & 0x1f
	frac := float64(h & 0x3ff)
	switch exp {
	case 0:
		return sign * math.Ldexp(frac, -24)
	case 0x1f:
		if frac != 0 {
			return math.NaN()
		}
		return math.Inf(int(sign))
	default:
		return sign * math.Ldexp(1+frac/1024, exp-15)
	}
}
