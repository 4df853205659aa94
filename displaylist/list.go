package displaylist

import (
	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/texture"
)

// List is an immutable recorded command list.
type List struct {
	segments []*Segment
}

// Segments returns the segments of the list.
func (l *List) Segments() []*Segment {
	return l.segments
}

// Len returns the number of recorded commands.
func (l *List) Len() int {
	n := 0
	for _, s := range l.segments {
		n += len(s.commands)
	}
	return n
}

// Count returns the number of recorded commands of type t.
func (l *List) Count(t texture.CommandType) int {
	n := 0
	for _, s := range l.segments {
		for _, cmd := range s.commands {
			if cmd.Type() == t {
				n++
			}
		}
	}
	return n
}

// Replay executes the list against ctx in recording order.
func (l *List) Replay(ctx *texture.Context) {
	gl4es.Logger().Debug("displaylist: replay", "segments", len(l.segments), "commands", l.Len())
	for _, s := range l.segments {
		for _, cmd := range s.commands {
			ctx.Execute(cmd)
		}
	}
}
