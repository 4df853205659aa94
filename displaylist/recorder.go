package displaylist

import (
	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/texture"
)

// Segment is a run of commands with at most one texture binding.
type Segment struct {
	commands []texture.Command
	bound    bool
}

// Commands returns the commands of the segment in recording order.
func (s *Segment) Commands() []texture.Command {
	return s.commands
}

// HasBinding reports whether the segment recorded a texture binding.
func (s *Segment) HasBinding() bool {
	return s.bound
}

// Recorder implements texture.Recorder.
//
// The zero value is ready to use. The Recorder is not safe for concurrent
// use.
type Recorder struct {
	composing bool
	segments  []*Segment
	cur       *Segment
}

var _ texture.Recorder = (*Recorder)(nil)

// NewRecorder creates a Recorder with no open list.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin opens a new list. Beginning while a list is open is ignored, as
// nested lists are not allowed.
func (r *Recorder) Begin() {
	if r.composing {
		gl4es.Logger().Warn("displaylist: Begin while composing")
		return
	}
	r.composing = true
	r.segments = make([]*Segment, 0, 4)
	r.cur = nil
}

// End closes the open list and returns it. End returns nil when no list is
// open.
func (r *Recorder) End() *List {
	if !r.composing {
		return nil
	}
	l := &List{segments: r.segments}
	r.composing = false
	r.segments = nil
	r.cur = nil
	return l
}

// Composing reports whether a list is open.
func (r *Recorder) Composing() bool {
	return r.composing
}

// ContinueOrExtend closes the current segment if it already holds a texture
// binding.
func (r *Recorder) ContinueOrExtend() {
	if r.cur != nil && r.cur.bound {
		r.cur = nil
	}
}

// Record appends cmd to the current segment, opening one if needed.
func (r *Recorder) Record(cmd texture.Command) {
	if !r.composing {
		return
	}
	if r.cur == nil {
		r.cur = &Segment{}
		r.segments = append(r.segments, r.cur)
	}
	r.cur.commands = append(r.cur.commands, cmd)
	if cmd.Type() == texture.CmdBindTexture {
		r.cur.bound = true
	}
}
