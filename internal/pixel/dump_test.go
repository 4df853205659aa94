package pixel

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/templeblock/gl4es"
)

func TestEncoders(t *testing.T) {
	got := Encoders()
	for _, name := range []string{"bmp", "png"} {
		if !slices.Contains(got, name) {
			t.Errorf("Encoders() = %v, missing %q", got, name)
		}
	}
}

func TestRegisterEncoderPanics(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoder
	}{
		{"png", Encoder{Ext: ".png", Encode: png.Encode}},
		{"nil-encode", Encoder{Ext: ".x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("RegisterEncoder(%q) did not panic", tt.name)
				}
			}()
			RegisterEncoder(tt.name, tt.enc)
		})
	}
}

func TestDumpPNG(t *testing.T) {
	dir := t.TempDir()
	data := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 128,
	}
	path, err := Dump(dir, 7, data, 2, 2, gl4es.RGBA, gl4es.UNSIGNED_BYTE, "png")
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if want := filepath.Join(dir, "tex00007.png"); path != want {
		t.Errorf("Dump() path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("decoded bounds = %v, want 2x2", b)
	}
	got := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if want := (color.NRGBA{255, 255, 255, 128}); got != want {
		t.Errorf("pixel (1,1) = %v, want %v", got, want)
	}
}

func TestDumpBMPConverts(t *testing.T) {
	dir := t.TempDir()
	path, err := Dump(dir, 3, u16(0xF800), 1, 1, gl4es.RGB, gl4es.UNSIGNED_SHORT_5_6_5, "bmp")
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if filepath.Base(path) != "tex00003.bmp" {
		t.Errorf("Dump() path = %q, want tex00003.bmp", path)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("dump file missing or empty: %v", err)
	}
}

func TestDumpUnknownEncoder(t *testing.T) {
	if _, err := Dump(t.TempDir(), 1, []byte{0, 0, 0, 0}, 1, 1, gl4es.RGBA, gl4es.UNSIGNED_BYTE, "tga"); err == nil {
		t.Error("Dump(tga) error = nil, want unknown encoder")
	}
}
