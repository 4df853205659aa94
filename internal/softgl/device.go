// Copyright 2026 The gl4es Authors
// SPDX-License-Identifier: MIT

// Package softgl provides an in-memory GLES-like device.
//
// Device implements texture.Target and texture.Offscreen. Textures and
// renderbuffers are stored as RGBA8 regardless of the uploaded format, and
// every call is appended to a log so tests can assert on the exact sequence
// a texture.Context issues.
package softgl

import (
	"fmt"
	"slices"

	"github.com/templeblock/gl4es"
	"github.com/templeblock/gl4es/internal/pixel"
)

// Call is one logged device call.
type Call struct {
	// Name is the GLES entry point, e.g. "TexImage2D".
	Name string

	// Target, Level and the geometry fields are set when the call has them.
	Target        gl4es.Enum
	Level         int
	X, Y          int
	Width, Height int
	Format, Type  gl4es.Enum

	// HasData reports whether pixel data was passed.
	HasData bool

	// Names lists the objects the call refers to.
	Names []uint32

	// Pname and Param carry scalar arguments such as units and parameter
	// values.
	Pname gl4es.Enum
	Param int32
}

func (c Call) String() string {
	switch c.Name {
	case "TexImage2D", "TexSubImage2D":
		return fmt.Sprintf("%s(%v, %d, %d,%d %dx%d, %v/%v, data=%t)",
			c.Name, c.Target, c.Level, c.X, c.Y, c.Width, c.Height, c.Format, c.Type, c.HasData)
	default:
		return fmt.Sprintf("%s(%v %v %d %v)", c.Name, c.Target, c.Pname, c.Param, c.Names)
	}
}

// Image is an RGBA8 image with tightly packed rows.
type Image struct {
	Width, Height int
	Pix           []byte
}

func newImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) [4]byte {
	i := (y*m.Width + x) * 4
	return [4]byte(m.Pix[i : i+4])
}

// Texture is the device-side storage of one texture name.
type Texture struct {
	Levels map[int]*Image
	Format gl4es.Enum
	Params map[gl4es.Enum]int32
}

// Device is an in-memory GLES-like device. The zero value is not usable;
// create one with New.
type Device struct {
	calls []Call

	textures   map[uint32]*Texture
	units      []uint32
	active     int
	client     int
	pixelStore map[gl4es.Enum]int32

	nextObject    uint32
	framebuffers  map[uint32]uint32
	renderbuffers map[uint32]*Image
	fb, rb        uint32

	// FramebufferStatus, when nonzero, is returned by
	// CheckFramebufferStatus instead of the computed status.
	FramebufferStatus gl4es.Enum
}

// New creates a device with units texture units.
func New(units int) *Device {
	return &Device{
		textures:      make(map[uint32]*Texture),
		units:         make([]uint32, units),
		pixelStore:    make(map[gl4es.Enum]int32),
		framebuffers:  make(map[uint32]uint32),
		renderbuffers: make(map[uint32]*Image),
	}
}

func (d *Device) log(c Call) {
	d.calls = append(d.calls, c)
}

// Calls returns the logged calls.
func (d *Device) Calls() []Call {
	return d.calls
}

// CallNames returns the names of the logged calls.
func (d *Device) CallNames() []string {
	names := make([]string, len(d.calls))
	for i, c := range d.calls {
		names[i] = c.Name
	}
	return names
}

// ResetCalls clears the call log.
func (d *Device) ResetCalls() {
	d.calls = d.calls[:0]
}

// Texture returns the storage of name.
func (d *Device) Texture(name uint32) (*Texture, bool) {
	t, ok := d.textures[name]
	return t, ok
}

// BoundTexture returns the texture bound on unit.
func (d *Device) BoundTexture(unit int) uint32 {
	return d.units[unit]
}

// ActiveUnit returns the active texture unit.
func (d *Device) ActiveUnit() int {
	return d.active
}

// ClientUnit returns the active client texture unit.
func (d *Device) ClientUnit() int {
	return d.client
}

// PixelStore returns the value last set for pname.
func (d *Device) PixelStore(pname gl4es.Enum) int32 {
	return d.pixelStore[pname]
}

// Framebuffers returns the number of live framebuffers and renderbuffers.
func (d *Device) Framebuffers() (fbs, rbs int) {
	return len(d.framebuffers), len(d.renderbuffers)
}

func (d *Device) bound() *Texture {
	name := d.units[d.active]
	if name == 0 {
		return nil
	}
	t, ok := d.textures[name]
	if !ok {
		t = &Texture{Levels: make(map[int]*Image), Params: make(map[gl4es.Enum]int32)}
		d.textures[name] = t
	}
	return t
}

// rgba converts client pixels to RGBA8, logging failures as a GL error
// would be raised.
func rgba(data []byte, width, height int, format, typ gl4es.Enum) ([]byte, func()) {
	out, owned, err := pixel.ToRGBA(data, width, height, format, typ)
	if err != nil {
		gl4es.Logger().Warn("softgl: cannot decode pixels", "format", format, "type", typ, "err", err)
		return nil, func() {}
	}
	if owned {
		return out, func() { pixel.PutBuffer(out) }
	}
	return out, func() {}
}

// TexImage2D allocates level of the bound texture and fills it with data.
func (d *Device) TexImage2D(target gl4es.Enum, level int, internalFormat gl4es.Enum, width, height int, format, typ gl4es.Enum, data []byte) {
	d.log(Call{Name: "TexImage2D", Target: target, Level: level, Width: width, Height: height,
		Format: format, Type: typ, HasData: data != nil})
	if target.IsProxy() {
		return
	}
	t := d.bound()
	if t == nil || width <= 0 || height <= 0 {
		return
	}
	img := newImage(width, height)
	t.Levels[level] = img
	if level == 0 {
		t.Format = internalFormat
	}
	if data == nil {
		return
	}
	src, release := rgba(data, width, height, format, typ)
	defer release()
	copy(img.Pix, src)
}

// TexSubImage2D replaces a region of level of the bound texture. The region
// is clipped to the level.
func (d *Device) TexSubImage2D(target gl4es.Enum, level, x, y, width, height int, format, typ gl4es.Enum, data []byte) {
	d.log(Call{Name: "TexSubImage2D", Target: target, Level: level, X: x, Y: y, Width: width, Height: height,
		Format: format, Type: typ, HasData: data != nil})
	t := d.bound()
	if t == nil || data == nil || width <= 0 || height <= 0 {
		return
	}
	img, ok := t.Levels[level]
	if !ok {
		return
	}
	src, release := rgba(data, width, height, format, typ)
	defer release()
	if src == nil {
		return
	}
	for row := range height {
		dy := y + row
		if dy < 0 || dy >= img.Height {
			continue
		}
		for col := range width {
			dx := x + col
			if dx < 0 || dx >= img.Width {
				continue
			}
			copy(img.Pix[(dy*img.Width+dx)*4:][:4], src[(row*width+col)*4:][:4])
		}
	}
}

// BindTexture binds name to the active unit.
func (d *Device) BindTexture(target gl4es.Enum, name uint32) {
	d.log(Call{Name: "BindTexture", Target: target, Names: []uint32{name}})
	d.units[d.active] = name
}

// DeleteTextures deletes the named textures and unbinds them.
func (d *Device) DeleteTextures(names []uint32) {
	d.log(Call{Name: "DeleteTextures", Names: slices.Clone(names)})
	for _, name := range names {
		delete(d.textures, name)
		for i, b := range d.units {
			if b == name {
				d.units[i] = 0
			}
		}
	}
}

// PixelStorei records a pixel-store parameter.
func (d *Device) PixelStorei(pname gl4es.Enum, param int32) {
	d.log(Call{Name: "PixelStorei", Pname: pname, Param: param})
	d.pixelStore[pname] = param
}

// TexParameteri records a parameter of the bound texture.
func (d *Device) TexParameteri(target, pname gl4es.Enum, param int32) {
	d.log(Call{Name: "TexParameteri", Target: target, Pname: pname, Param: param})
	if t := d.bound(); t != nil {
		t.Params[pname] = param
	}
}

// ActiveTexture selects the server unit.
func (d *Device) ActiveTexture(unit gl4es.Enum) {
	i := int(unit) - int(gl4es.TEXTURE0)
	d.log(Call{Name: "ActiveTexture", Param: int32(i)})
	if i >= 0 && i < len(d.units) {
		d.active = i
	}
}

// ClientActiveTexture selects the client unit.
func (d *Device) ClientActiveTexture(unit gl4es.Enum) {
	i := int(unit) - int(gl4es.TEXTURE0)
	d.log(Call{Name: "ClientActiveTexture", Param: int32(i)})
	if i >= 0 && i < len(d.units) {
		d.client = i
	}
}
