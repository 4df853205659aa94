package pixel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/templeblock/gl4es"
)

func solid(n int, px []byte) []byte {
	return bytes.Repeat(px, n)
}

func TestScale(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		ratio        float64
		format, typ  gl4es.Enum
		px           []byte
		wantW, wantH int
	}{
		{"half rgba", 4, 4, 0.5, gl4es.RGBA, gl4es.UNSIGNED_BYTE, []byte{255, 0, 0, 255}, 2, 2},
		{"half 565", 4, 2, 0.5, gl4es.RGB, gl4es.UNSIGNED_SHORT_5_6_5, u16(0xF800), 2, 1},
		{"half luminance", 8, 6, 0.5, gl4es.LUMINANCE, gl4es.UNSIGNED_BYTE, []byte{200}, 4, 3},
		{"clamped to one", 4, 4, 0.1, gl4es.RGBA, gl4es.UNSIGNED_BYTE, []byte{0, 0, 255, 255}, 1, 1},
		{"double rgb", 2, 1, 2, gl4es.RGB, gl4es.UNSIGNED_BYTE, []byte{10, 20, 30}, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := solid(tt.w*tt.h, tt.px)
			got, w, h, err := Scale(src, tt.w, tt.h, tt.ratio, tt.format, tt.typ)
			if err != nil {
				t.Fatalf("Scale() error = %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Fatalf("Scale() size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if want := solid(w*h, tt.px); !bytes.Equal(got, want) {
				t.Errorf("Scale() = %v, want %v", got, want)
			}
		})
	}
}

func TestScaleErrors(t *testing.T) {
	if _, _, _, err := Scale([]byte{1, 2, 3, 4}, 1, 1, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Scale(ratio 0) error = %v, want ErrInvalidDimensions", err)
	}
	if _, _, _, err := Scale([]byte{1}, 1, 1, 0.5, gl4es.DEPTH_COMPONENT, gl4es.FLOAT); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Scale(depth) error = %v, want ErrUnsupported", err)
	}
}
