package gl4es

import "fmt"

// Enum is a GL enumerant. Values are the desktop OpenGL ones; the GLES
// subset shares the same numbering.
type Enum uint32

// Pixel formats.
const (
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	GREEN           Enum = 0x1904
	BLUE            Enum = 0x1905
	ALPHA           Enum = 0x1906
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190A
	INTENSITY       Enum = 0x8049
	BGR             Enum = 0x80E0
	BGRA            Enum = 0x80E1
	RG              Enum = 0x8227
)

// Pixel types.
const (
	BYTE                        Enum = 0x1400
	UNSIGNED_BYTE               Enum = 0x1401
	SHORT                       Enum = 0x1402
	UNSIGNED_SHORT              Enum = 0x1403
	INT                         Enum = 0x1404
	UNSIGNED_INT                Enum = 0x1405
	FLOAT                       Enum = 0x1406
	HALF_FLOAT                  Enum = 0x140B
	UNSIGNED_BYTE_3_3_2         Enum = 0x8032
	UNSIGNED_SHORT_4_4_4_4      Enum = 0x8033
	UNSIGNED_SHORT_5_5_5_1      Enum = 0x8034
	UNSIGNED_INT_8_8_8_8        Enum = 0x8035
	UNSIGNED_INT_10_10_10_2     Enum = 0x8036
	UNSIGNED_BYTE_2_3_3_REV     Enum = 0x8362
	UNSIGNED_SHORT_5_6_5        Enum = 0x8363
	UNSIGNED_SHORT_5_6_5_REV    Enum = 0x8364
	UNSIGNED_SHORT_4_4_4_4_REV  Enum = 0x8365
	UNSIGNED_SHORT_1_5_5_5_REV  Enum = 0x8366
	UNSIGNED_INT_8_8_8_8_REV    Enum = 0x8367
	UNSIGNED_INT_2_10_10_10_REV Enum = 0x8368
)

// Texture targets.
const (
	TEXTURE_1D              Enum = 0x0DE0
	TEXTURE_2D              Enum = 0x0DE1
	TEXTURE_3D              Enum = 0x806F
	PROXY_TEXTURE_1D        Enum = 0x8063
	PROXY_TEXTURE_2D        Enum = 0x8064
	PROXY_TEXTURE_3D        Enum = 0x8070
	TEXTURE_RECTANGLE       Enum = 0x84F5
	PROXY_TEXTURE_RECTANGLE Enum = 0x84F7
	TEXTURE_CUBE_MAP        Enum = 0x8513
)

// Pixel store parameters.
const (
	UNPACK_SWAP_BYTES  Enum = 0x0CF0
	UNPACK_LSB_FIRST   Enum = 0x0CF1
	UNPACK_ROW_LENGTH  Enum = 0x0CF2
	UNPACK_SKIP_ROWS   Enum = 0x0CF3
	UNPACK_SKIP_PIXELS Enum = 0x0CF4
	UNPACK_ALIGNMENT   Enum = 0x0CF5
	PACK_ALIGNMENT     Enum = 0x0D05
)

// Texture parameters and values.
const (
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	NEAREST            Enum = 0x2600
	LINEAR             Enum = 0x2601
	CLAMP              Enum = 0x2900
	REPEAT             Enum = 0x2901
	CLAMP_TO_EDGE      Enum = 0x812F
)

// Texture level parameters.
const (
	TEXTURE_WIDTH                 Enum = 0x1000
	TEXTURE_HEIGHT                Enum = 0x1001
	TEXTURE_INTERNAL_FORMAT       Enum = 0x1003
	TEXTURE_BORDER                Enum = 0x1005
	TEXTURE_RED_SIZE              Enum = 0x805C
	TEXTURE_GREEN_SIZE            Enum = 0x805D
	TEXTURE_BLUE_SIZE             Enum = 0x805E
	TEXTURE_ALPHA_SIZE            Enum = 0x805F
	TEXTURE_DEPTH                 Enum = 0x8071
	TEXTURE_COMPRESSED_IMAGE_SIZE Enum = 0x86A0
	TEXTURE_COMPRESSED            Enum = 0x86A1
	TEXTURE_DEPTH_SIZE            Enum = 0x884A
	TEXTURE_RED_TYPE              Enum = 0x8C10
	TEXTURE_GREEN_TYPE            Enum = 0x8C11
	TEXTURE_BLUE_TYPE             Enum = 0x8C12
	TEXTURE_ALPHA_TYPE            Enum = 0x8C13
	TEXTURE_DEPTH_TYPE            Enum = 0x8C16
)

// Texture units. Unit i is TEXTURE0+i.
const TEXTURE0 Enum = 0x84C0

// Framebuffer objects.
const (
	FRAMEBUFFER                       Enum = 0x8D40
	RENDERBUFFER                      Enum = 0x8D41
	COLOR_ATTACHMENT0                 Enum = 0x8CE0
	FRAMEBUFFER_COMPLETE              Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT Enum = 0x8CD6
	FRAMEBUFFER_UNSUPPORTED           Enum = 0x8CDD
	RGBA4                             Enum = 0x8056
	RGBA8                             Enum = 0x8058
)

// Booleans.
const (
	FALSE Enum = 0
	TRUE  Enum = 1
)

var enumNames = map[Enum]string{
	ALPHA:                       "GL_ALPHA",
	RGB:                         "GL_RGB",
	RGBA:                        "GL_RGBA",
	LUMINANCE:                   "GL_LUMINANCE",
	LUMINANCE_ALPHA:             "GL_LUMINANCE_ALPHA",
	BGR:                         "GL_BGR",
	BGRA:                        "GL_BGRA",
	RED:                         "GL_RED",
	RG:                          "GL_RG",
	UNSIGNED_BYTE:               "GL_UNSIGNED_BYTE",
	BYTE:                        "GL_BYTE",
	UNSIGNED_SHORT:              "GL_UNSIGNED_SHORT",
	FLOAT:                       "GL_FLOAT",
	UNSIGNED_SHORT_5_6_5:        "GL_UNSIGNED_SHORT_5_6_5",
	UNSIGNED_SHORT_4_4_4_4:      "GL_UNSIGNED_SHORT_4_4_4_4",
	UNSIGNED_SHORT_5_5_5_1:      "GL_UNSIGNED_SHORT_5_5_5_1",
	UNSIGNED_INT_8_8_8_8:        "GL_UNSIGNED_INT_8_8_8_8",
	UNSIGNED_INT_8_8_8_8_REV:    "GL_UNSIGNED_INT_8_8_8_8_REV",
	UNSIGNED_SHORT_1_5_5_5_REV:  "GL_UNSIGNED_SHORT_1_5_5_5_REV",
	UNSIGNED_SHORT_4_4_4_4_REV:  "GL_UNSIGNED_SHORT_4_4_4_4_REV",
	UNSIGNED_SHORT_5_6_5_REV:    "GL_UNSIGNED_SHORT_5_6_5_REV",
	TEXTURE_1D:                  "GL_TEXTURE_1D",
	TEXTURE_2D:                  "GL_TEXTURE_2D",
	TEXTURE_3D:                  "GL_TEXTURE_3D",
	PROXY_TEXTURE_2D:            "GL_PROXY_TEXTURE_2D",
	TEXTURE_RECTANGLE:           "GL_TEXTURE_RECTANGLE",
	UNPACK_ROW_LENGTH:           "GL_UNPACK_ROW_LENGTH",
	UNPACK_SKIP_PIXELS:          "GL_UNPACK_SKIP_PIXELS",
	UNPACK_SKIP_ROWS:            "GL_UNPACK_SKIP_ROWS",
	UNPACK_LSB_FIRST:            "GL_UNPACK_LSB_FIRST",
	UNPACK_ALIGNMENT:            "GL_UNPACK_ALIGNMENT",
	FRAMEBUFFER_COMPLETE:        "GL_FRAMEBUFFER_COMPLETE",
	UNSIGNED_INT_2_10_10_10_REV: "GL_UNSIGNED_INT_2_10_10_10_REV",
}

// String returns the GL name of well-known enumerants and the hex value
// otherwise.
func (e Enum) String() string {
	if name, ok := enumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint32(e))
}

// IsProxy reports whether e is one of the proxy texture targets, which only
// probe whether a size is supported and never carry storage.
func (e Enum) IsProxy() bool {
	switch e {
	case PROXY_TEXTURE_1D, PROXY_TEXTURE_2D, PROXY_TEXTURE_3D, PROXY_TEXTURE_RECTANGLE:
		return true
	}
	return false
}
