package displaylist

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/softgl"
	"github.com/templeblock/gl4es/texture"
)

func newTestContext() (*Recorder, *texture.Context, *softgl.Device) {
	rec := NewRecorder()
	dev := softgl.New(texture.DefaultMaxUnits)
	return rec, texture.NewContext(dev, texture.WithRecorder(rec)), dev
}

func TestRecorderBeginEnd(t *testing.T) {
	rec := NewRecorder()
	if rec.Composing() {
		t.Error("Composing() = true before Begin")
	}
	if l := rec.End(); l != nil {
		t.Errorf("End() without Begin = %v, want nil", l)
	}

	rec.Begin()
	if !rec.Composing() {
		t.Error("Composing() = false after Begin")
	}
	rec.Begin()
	rec.Record(texture.ActiveTextureCommand{Unit: gl4es.TEXTURE0})
	l := rec.End()
	if l == nil || l.Len() != 1 {
		t.Fatalf("End() = %v, want a list with one command", l)
	}
	if rec.Composing() {
		t.Error("Composing() = true after End")
	}

	rec.Record(texture.ActiveTextureCommand{Unit: gl4es.TEXTURE0})
	if l.Len() != 1 {
		t.Error("Record after End modified the list")
	}
}

func TestSegmentsHoldOneBinding(t *testing.T) {
	rec, ctx, dev := newTestContext()

	rec.Begin()
	ctx.ActiveTexture(gl4es.TEXTURE0)
	ctx.BindTexture(gl4es.TEXTURE_2D, 1)
	ctx.TexParameteri(gl4es.TEXTURE_2D, gl4es.TEXTURE_MIN_FILTER, int32(gl4es.LINEAR))
	ctx.ActiveTexture(gl4es.TEXTURE0 + 1)
	ctx.BindTexture(gl4es.TEXTURE_2D, 2)
	ctx.BindTexture(gl4es.TEXTURE_2D, 3)
	ctx.DeleteTextures([]uint32{1})
	l := rec.End()

	if len(dev.Calls()) != 0 {
		t.Errorf("device calls = %v, want none while composing", dev.Calls())
	}

	segs := l.Segments()
	if len(segs) != 3 {
		t.Fatalf("len(Segments()) = %d, want 3", len(segs))
	}
	want := [][]texture.CommandType{
		{texture.CmdActiveTexture, texture.CmdBindTexture, texture.CmdTexParameter},
		{texture.CmdActiveTexture, texture.CmdBindTexture},
		{texture.CmdBindTexture, texture.CmdDeleteTextures},
	}
	for i, s := range segs {
		var got []texture.CommandType
		for _, cmd := range s.Commands() {
			got = append(got, cmd.Type())
		}
		if diff := cmp.Diff(want[i], got); diff != "" {
			t.Errorf("segment %d mismatch (-want +got):\n%s", i, diff)
		}
		if !s.HasBinding() {
			t.Errorf("segment %d HasBinding() = false", i)
		}
		if n := countBindings(s); n > 1 {
			t.Errorf("segment %d holds %d bindings", i, n)
		}
	}
	if got := l.Count(texture.CmdBindTexture); got != 3 {
		t.Errorf("Count(BindTexture) = %d, want 3", got)
	}
}

func countBindings(s *Segment) int {
	n := 0
	for _, cmd := range s.Commands() {
		if cmd.Type() == texture.CmdBindTexture {
			n++
		}
	}
	return n
}

func TestUnitSelectionWithoutBindingContinues(t *testing.T) {
	rec, ctx, _ := newTestContext()
	rec.Begin()
	ctx.ActiveTexture(gl4es.TEXTURE0 + 1)
	ctx.ClientActiveTexture(gl4es.TEXTURE0 + 1)
	ctx.ActiveTexture(gl4es.TEXTURE0)
	l := rec.End()

	if len(l.Segments()) != 1 {
		t.Errorf("len(Segments()) = %d, want 1", len(l.Segments()))
	}
	if l.Segments()[0].HasBinding() {
		t.Error("HasBinding() = true without a bind")
	}
}

func TestReplayReproducesBindings(t *testing.T) {
	rec, ctx, dev := newTestContext()

	rec.Begin()
	ctx.ActiveTexture(gl4es.TEXTURE0 + 2)
	ctx.BindTexture(gl4es.TEXTURE_RECTANGLE, 7)
	ctx.ClientActiveTexture(gl4es.TEXTURE0 + 1)
	ctx.ActiveTexture(gl4es.TEXTURE0)
	ctx.BindTexture(gl4es.TEXTURE_2D, 8)
	l := rec.End()

	l.Replay(ctx)

	units := ctx.Units()
	if got := units.BoundAt(texture.AxisServer, 2); got != 7 {
		t.Errorf("unit 2 bound to %d, want 7", got)
	}
	if !units.IsRectangle(2) {
		t.Error("IsRectangle(2) = false after replay")
	}
	if got := units.BoundAt(texture.AxisServer, 0); got != 8 {
		t.Errorf("unit 0 bound to %d, want 8", got)
	}
	if units.Active(texture.AxisServer) != 0 || units.Active(texture.AxisClient) != 1 {
		t.Errorf("active units = %d/%d, want 0/1", units.Active(texture.AxisServer), units.Active(texture.AxisClient))
	}
	if dev.BoundTexture(2) != 7 || dev.BoundTexture(0) != 8 {
		t.Error("replay did not reach the device")
	}
	if ctx.Store().Len() != 2 {
		t.Errorf("Store().Len() = %d, want 2", ctx.Store().Len())
	}

	want := []string{"ActiveTexture", "BindTexture", "ClientActiveTexture", "ActiveTexture", "BindTexture"}
	if diff := cmp.Diff(want, dev.CallNames()); diff != "" {
		t.Errorf("replayed calls mismatch (-want +got):\n%s", diff)
	}
}

func TestReplayTwice(t *testing.T) {
	rec, ctx, dev := newTestContext()
	rec.Begin()
	ctx.BindTexture(gl4es.TEXTURE_2D, 4)
	ctx.DeleteTextures([]uint32{4})
	l := rec.End()

	l.Replay(ctx)
	l.Replay(ctx)

	if got := len(dev.Calls()); got != 4 {
		t.Errorf("device calls = %d, want 4", got)
	}
	if ctx.Store().Len() != 0 {
		t.Errorf("Store().Len() = %d, want 0", ctx.Store().Len())
	}
}
