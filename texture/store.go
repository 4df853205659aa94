package texture

import (
	"maps"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/templeblock/gl4es"
)

// Object is the shim-side record of one texture name.
type Object struct {
	// Name is the texture name shared with the target.
	Name uint32

	// Target is the target the texture was first bound to. Later binds to
	// another target do not change it.
	Target gl4es.Enum

	// Width and Height are the logical size of the last level-0 upload.
	Width, Height int

	// NPOTWidth and NPOTHeight are the power-of-two storage size allocated
	// on the target for level 0.
	NPOTWidth, NPOTHeight int

	// Uploaded reports whether image data was ever submitted.
	Uploaded bool

	// Format is the storage format of the last level-0 upload.
	Format gputypes.TextureFormat
}

// IsNPOT reports whether the logical size differs from the storage size.
func (o *Object) IsNPOT() bool {
	return o.Width != o.NPOTWidth || o.Height != o.NPOTHeight
}

// Store owns the texture objects of a Context, keyed by name.
// The zero value is an empty store.
type Store struct {
	objects map[uint32]*Object
}

// BindOrCreate returns the object for name, creating it with target when it
// does not exist yet. Name 0 is the unbound texture and yields nil.
func (s *Store) BindOrCreate(name uint32, target gl4es.Enum) *Object {
	if name == 0 {
		return nil
	}
	if s.objects == nil {
		s.objects = make(map[uint32]*Object)
	}
	if obj, ok := s.objects[name]; ok {
		return obj
	}
	obj := &Object{Name: name, Target: target}
	s.objects[name] = obj
	return obj
}

// Lookup returns the object for name.
func (s *Store) Lookup(name uint32) (*Object, bool) {
	obj, ok := s.objects[name]
	return obj, ok
}

// Len returns the number of live objects.
func (s *Store) Len() int {
	return len(s.objects)
}

// Names returns the live texture names in ascending order.
func (s *Store) Names() []uint32 {
	return slices.Sorted(maps.Keys(s.objects))
}

func (s *Store) remove(name uint32) bool {
	if _, ok := s.objects[name]; !ok {
		return false
	}
	delete(s.objects, name)
	return true
}
