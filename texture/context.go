package texture

import (
	"github.com/templeblock/gl4es"
)

// Context holds the texture state of one graphics context: the texture
// objects, the texture units and the unpack configuration.
type Context struct {
	target   Target
	recorder Recorder
	readback *readback

	store  Store
	units  *Units
	unpack UnpackConfig

	shrink     bool
	dump       bool
	dumpDir    string
	dumpFormat string
	skipMode   SkipMode
}

// NewContext creates a Context driving target.
func NewContext(target Target, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		target:     target,
		recorder:   o.recorder,
		units:      newUnits(o.maxUnits),
		shrink:     o.shrink,
		dump:       o.dump,
		dumpDir:    o.dumpDir,
		dumpFormat: o.dumpFormat,
		skipMode:   o.skipMode,
	}
	if o.offscreen != nil {
		c.readback = &readback{off: o.offscreen}
	}
	return c
}

// Store returns the texture objects of the context.
func (c *Context) Store() *Store {
	return &c.store
}

// Units returns the texture unit state of the context.
func (c *Context) Units() *Units {
	return c.units
}

// Unpack returns the current unpack configuration.
func (c *Context) Unpack() UnpackConfig {
	return c.unpack
}

// Bound returns the object bound to the active server unit, or nil.
func (c *Context) Bound() *Object {
	obj, _ := c.store.Lookup(c.units.Current(AxisServer))
	return obj
}

// composing reports whether calls are currently recorded instead of run.
func (c *Context) composing() bool {
	return c.recorder != nil && c.recorder.Composing()
}

// PixelStorei sets a pixel-store parameter. The unpack parameters GLES lacks
// are kept by the context; everything else goes to the target. Negative row
// lengths and skips are ignored.
func (c *Context) PixelStorei(pname gl4es.Enum, param int32) {
	switch pname {
	case gl4es.UNPACK_ROW_LENGTH, gl4es.UNPACK_SKIP_PIXELS, gl4es.UNPACK_SKIP_ROWS:
		if param < 0 {
			gl4es.Logger().Debug("texture: negative pixel-store value ignored", "pname", pname, "param", param)
			return
		}
	}
	switch pname {
	case gl4es.UNPACK_ROW_LENGTH:
		c.unpack.RowLength = param
	case gl4es.UNPACK_SKIP_PIXELS:
		c.unpack.SkipPixels = param
	case gl4es.UNPACK_SKIP_ROWS:
		c.unpack.SkipRows = param
	case gl4es.UNPACK_LSB_FIRST:
		c.unpack.LSBFirst = param != 0
	default:
		c.target.PixelStorei(pname, param)
	}
}
