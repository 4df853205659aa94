// Package displaylist records texture calls into command lists.
//
// A Recorder captures the texture binding, unit selection, parameter and
// delete calls a texture.Context hands it while a list is open, and produces
// an immutable List that can be replayed into any Context.
//
// # Segments
//
// Commands are grouped into segments. A segment holds at most one texture
// binding: when a binding or unit selection arrives after the current
// segment already bound a texture, the segment is closed and a new one is
// opened. Draw batching keys on segments, so every segment renders with one
// texture per unit.
//
// # Basic Usage
//
//	rec := displaylist.NewRecorder()
//	ctx := texture.NewContext(dev, texture.WithRecorder(rec))
//
//	rec.Begin()
//	ctx.ActiveTexture(gl4es.TEXTURE0)
//	ctx.BindTexture(gl4es.TEXTURE_2D, 1)
//	ctx.BindTexture(gl4es.TEXTURE_2D, 2) // starts a second segment
//	list := rec.End()
//
//	list.Replay(ctx)
//
// Uploads are never recorded; they run immediately even while a list is
// open.
package displaylist
