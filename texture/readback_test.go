package texture

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/softgl"
)

func TestGetTexImageRoundTrip(t *testing.T) {
	ctx, dev := newTestContext()
	ctx.ActiveTexture(gl4es.TEXTURE0 + 2)
	ctx.BindTexture(gl4es.TEXTURE_2D, 3)
	src := pattern(100, 70)
	if err := ctx.TexImage2D(gl4es.TEXTURE_2D, 0, int32(gl4es.RGBA), 100, 70, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, src); err != nil {
		t.Fatal(err)
	}

	dst := make([]byte, 100*70*4)
	if err := ctx.GetTexImage(gl4es.TEXTURE_2D, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, dst); err != nil {
		t.Fatalf("GetTexImage() error = %v", err)
	}
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("readback mismatch (-want +got):\n%s", diff)
	}

	if got := dev.BoundTexture(2); got != 3 {
		t.Errorf("device unit 2 bound to %d after readback, want 3", got)
	}
	if got := ctx.Units().Current(AxisServer); got != 3 {
		t.Errorf("context unit bound to %d after readback, want 3", got)
	}
	if fbs, rbs := dev.Framebuffers(); fbs != 0 || rbs != 0 {
		t.Errorf("Framebuffers() = %d, %d, want 0, 0", fbs, rbs)
	}
}

func TestGetTexImageCallSequence(t *testing.T) {
	ctx, dev := newTestContext()
	ctx.BindTexture(gl4es.TEXTURE_RECTANGLE, 1)
	if err := ctx.TexImage2D(gl4es.TEXTURE_RECTANGLE, 0, int32(gl4es.RGBA), 4, 4, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, pattern(4, 4)); err != nil {
		t.Fatal(err)
	}
	dev.ResetCalls()

	if err := ctx.GetTexImage(gl4es.TEXTURE_RECTANGLE, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, make([]byte, 64)); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"CreateFramebuffer", "BindFramebuffer", "CreateRenderbuffer", "BindRenderbuffer",
		"RenderbufferStorage", "FramebufferRenderbuffer", "CheckFramebufferStatus",
		"DrawTexture", "ReadPixels",
		"BindRenderbuffer", "BindFramebuffer", "BindTexture",
		"DeleteRenderbuffer", "DeleteFramebuffer",
	}
	if diff := cmp.Diff(want, dev.CallNames()); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
	if !ctx.Units().IsRectangle(0) {
		t.Error("rectangle flag lost after readback")
	}
}

func TestGetTexImageKeepsCurrentTarget(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BindTexture(gl4es.TEXTURE_RECTANGLE, 1)
	if err := ctx.TexImage2D(gl4es.TEXTURE_RECTANGLE, 0, int32(gl4es.RGBA), 4, 4, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, pattern(4, 4)); err != nil {
		t.Fatal(err)
	}
	ctx.BindTexture(gl4es.TEXTURE_2D, 1)

	if err := ctx.GetTexImage(gl4es.TEXTURE_2D, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, make([]byte, 64)); err != nil {
		t.Fatal(err)
	}
	if ctx.Units().IsRectangle(0) {
		t.Error("readback switched the rectangle flag back on")
	}
	if got := ctx.Units().Current(AxisServer); got != 1 {
		t.Errorf("context unit bound to %d after readback, want 1", got)
	}
}

func TestGetTexImageErrors(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		ctx, _ := newTestContext()
		ctx.BindTexture(gl4es.TEXTURE_2D, 1)
		tests := []struct {
			level  int
			format gl4es.Enum
			typ    gl4es.Enum
		}{
			{1, gl4es.RGBA, gl4es.UNSIGNED_BYTE},
			{0, gl4es.BGRA, gl4es.UNSIGNED_BYTE},
			{0, gl4es.RGBA, gl4es.FLOAT},
		}
		for _, tt := range tests {
			err := ctx.GetTexImage(gl4es.TEXTURE_2D, tt.level, tt.format, tt.typ, make([]byte, 64))
			if !errors.Is(err, ErrUnsupportedReadback) {
				t.Errorf("GetTexImage(%d, %v, %v) error = %v, want ErrUnsupportedReadback", tt.level, tt.format, tt.typ, err)
			}
		}
	})

	t.Run("nothing bound", func(t *testing.T) {
		ctx, dev := newTestContext()
		if err := ctx.GetTexImage(gl4es.TEXTURE_2D, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, nil); err != nil {
			t.Errorf("GetTexImage() error = %v, want nil", err)
		}
		if len(dev.Calls()) != 0 {
			t.Errorf("device calls = %v, want none", dev.Calls())
		}
	})

	t.Run("no offscreen", func(t *testing.T) {
		dev := softgl.New(DefaultMaxUnits)
		ctx := NewContext(dev)
		ctx.BindTexture(gl4es.TEXTURE_2D, 1)
		err := ctx.GetTexImage(gl4es.TEXTURE_2D, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, make([]byte, 64))
		if !errors.Is(err, ErrNoOffscreen) {
			t.Errorf("GetTexImage() error = %v, want ErrNoOffscreen", err)
		}
	})

	t.Run("incomplete framebuffer", func(t *testing.T) {
		ctx, dev := newTestContext()
		ctx.BindTexture(gl4es.TEXTURE_2D, 1)
		if err := ctx.TexImage2D(gl4es.TEXTURE_2D, 0, int32(gl4es.RGBA), 2, 2, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, pattern(2, 2)); err != nil {
			t.Fatal(err)
		}
		dev.FramebufferStatus = gl4es.FRAMEBUFFER_UNSUPPORTED
		err := ctx.GetTexImage(gl4es.TEXTURE_2D, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, make([]byte, 16))
		if !errors.Is(err, ErrIncompleteFramebuffer) {
			t.Errorf("GetTexImage() error = %v, want ErrIncompleteFramebuffer", err)
		}
		if fbs, rbs := dev.Framebuffers(); fbs != 0 || rbs != 0 {
			t.Errorf("Framebuffers() = %d, %d after failure, want 0, 0", fbs, rbs)
		}
		if dev.BoundTexture(0) != 1 {
			t.Errorf("binding not restored after failure")
		}
	})

	t.Run("short destination", func(t *testing.T) {
		ctx, dev := newTestContext()
		ctx.BindTexture(gl4es.TEXTURE_2D, 1)
		if err := ctx.TexImage2D(gl4es.TEXTURE_2D, 0, int32(gl4es.RGBA), 2, 2, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, nil); err != nil {
			t.Fatal(err)
		}
		dev.ResetCalls()
		err := ctx.GetTexImage(gl4es.TEXTURE_2D, 0, gl4es.RGBA, gl4es.UNSIGNED_BYTE, make([]byte, 15))
		if !errors.Is(err, ErrShortBuffer) {
			t.Errorf("GetTexImage() error = %v, want ErrShortBuffer", err)
		}
		if len(dev.Calls()) != 0 {
			t.Errorf("device calls = %v, want none", dev.Calls())
		}
	})
}
