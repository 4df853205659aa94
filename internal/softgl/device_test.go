// Copyright 2026 The gl4es Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/texture"
)

var (
	_ texture.Target    = (*Device)(nil)
	_ texture.Offscreen = (*Device)(nil)
)

func checker(w, h int) []byte {
	pix := make([]byte, w*h*4)
	for y := range h {
		for x := range w {
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = byte(x), byte(y), byte(x^y), 255
		}
	}
	return pix
}

func TestTexImageStoresRGBA(t *testing.T) {
	d := New(4)
	d.BindTexture(gl4es.TEXTURE_2D, 5)
	red := binary.NativeEndian.AppendUint16(nil, 0xF800)
	d.TexImage2D(gl4es.TEXTURE_2D, 0, gl4es.RGB, 1, 1, gl4es.RGB, gl4es.UNSIGNED_SHORT_5_6_5, red)

	tex, ok := d.Texture(5)
	if !ok {
		t.Fatal("Texture(5) missing after upload")
	}
	img := tex.Levels[0]
	if img == nil || img.Width != 1 || img.Height != 1 {
		t.Fatalf("level 0 = %+v, want 1x1", img)
	}
	if got, want := img.At(0, 0), [4]byte{255, 0, 0, 255}; got != want {
		t.Errorf("At(0,0) = %v, want %v", got, want)
	}
	if tex.Format != gl4es.RGB {
		t.Errorf("Format = %v, want GL_RGB", tex.Format)
	}
}

func TestTexSubImageClips(t *testing.T) {
	d := New(1)
	d.BindTexture(gl4es.TEXTURE_2D, 1)
	d.TexImage2D(gl4es.TEXTURE_2D, 0, gl4es.RGBA, 2, 2, gl4es.RGBA, gl4es.UNSIGNED_BYTE, nil)
	d.TexSubImage2D(gl4es.TEXTURE_2D, 0, 1, 1, 2, 2, gl4es.RGBA, gl4es.UNSIGNED_BYTE, bytes.Repeat([]byte{9, 9, 9, 9}, 4))

	tex, _ := d.Texture(1)
	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 9, 9, 9, 9,
	}
	if diff := cmp.Diff(want, tex.Levels[0].Pix); diff != "" {
		t.Errorf("level 0 mismatch (-want +got):\n%s", diff)
	}
}

func TestProxyAllocatesNothing(t *testing.T) {
	d := New(1)
	d.BindTexture(gl4es.TEXTURE_2D, 1)
	d.TexImage2D(gl4es.PROXY_TEXTURE_2D, 0, gl4es.RGBA, 64, 64, gl4es.RGBA, gl4es.UNSIGNED_BYTE, nil)
	if _, ok := d.Texture(1); ok {
		t.Error("proxy upload created storage")
	}
}

func TestFramebufferRoundTrip(t *testing.T) {
	d := New(1)
	src := checker(3, 2)
	d.BindTexture(gl4es.TEXTURE_2D, 1)
	d.TexImage2D(gl4es.TEXTURE_2D, 0, gl4es.RGBA, 4, 4, gl4es.RGBA, gl4es.UNSIGNED_BYTE, nil)
	d.TexSubImage2D(gl4es.TEXTURE_2D, 0, 0, 0, 3, 2, gl4es.RGBA, gl4es.UNSIGNED_BYTE, src)

	fb := d.CreateFramebuffer()
	d.BindFramebuffer(fb)
	rb := d.CreateRenderbuffer()
	d.BindRenderbuffer(rb)
	d.RenderbufferStorage(gl4es.RGBA8, 3, 2)
	d.FramebufferRenderbuffer(rb)
	if status := d.CheckFramebufferStatus(); status != gl4es.FRAMEBUFFER_COMPLETE {
		t.Fatalf("CheckFramebufferStatus() = %v, want complete", status)
	}
	d.DrawTexture(3, 2, f32.Vec2{0.75, 0.5})

	got := make([]byte, len(src))
	d.ReadPixels(got, 0, 0, 3, 2, gl4es.RGBA, gl4es.UNSIGNED_BYTE)
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("ReadPixels() mismatch (-want +got):\n%s", diff)
	}

	d.DeleteRenderbuffer(rb)
	d.DeleteFramebuffer(fb)
	if fbs, rbs := d.Framebuffers(); fbs != 0 || rbs != 0 {
		t.Errorf("Framebuffers() = %d, %d, want 0, 0", fbs, rbs)
	}
}

func TestFramebufferIncomplete(t *testing.T) {
	d := New(1)
	fb := d.CreateFramebuffer()
	d.BindFramebuffer(fb)
	if status := d.CheckFramebufferStatus(); status != gl4es.FRAMEBUFFER_INCOMPLETE_ATTACHMENT {
		t.Errorf("CheckFramebufferStatus() = %v, want incomplete attachment", status)
	}

	rb := d.CreateRenderbuffer()
	d.BindRenderbuffer(rb)
	d.RenderbufferStorage(gl4es.RGBA, 2, 2)
	d.FramebufferRenderbuffer(rb)
	if status := d.CheckFramebufferStatus(); status == gl4es.FRAMEBUFFER_COMPLETE {
		t.Error("CheckFramebufferStatus() complete for a non-renderable format")
	}

	d.FramebufferStatus = gl4es.FRAMEBUFFER_UNSUPPORTED
	if status := d.CheckFramebufferStatus(); status != gl4es.FRAMEBUFFER_UNSUPPORTED {
		t.Errorf("CheckFramebufferStatus() = %v, want forced status", status)
	}
}

func TestUnitsAndCallLog(t *testing.T) {
	d := New(2)
	d.ActiveTexture(gl4es.TEXTURE0 + 1)
	d.ClientActiveTexture(gl4es.TEXTURE0 + 1)
	d.BindTexture(gl4es.TEXTURE_2D, 7)
	d.ActiveTexture(gl4es.TEXTURE0 + 5)
	d.DeleteTextures([]uint32{7})

	if d.ActiveUnit() != 1 || d.ClientUnit() != 1 {
		t.Errorf("units = %d/%d, want 1/1", d.ActiveUnit(), d.ClientUnit())
	}
	if d.BoundTexture(1) != 0 {
		t.Errorf("BoundTexture(1) = %d after delete, want 0", d.BoundTexture(1))
	}
	want := []string{"ActiveTexture", "ClientActiveTexture", "BindTexture", "ActiveTexture", "DeleteTextures"}
	if diff := cmp.Diff(want, d.CallNames()); diff != "" {
		t.Errorf("CallNames() mismatch (-want +got):\n%s", diff)
	}
	d.ResetCalls()
	if len(d.Calls()) != 0 {
		t.Errorf("Calls() after reset = %v", d.Calls())
	}
}
