package texture

import "errors"

// Errors returned by Context operations.
var (
	// ErrConversion is returned by Normalize when pixel data could not be
	// converted to RGBA/UNSIGNED_BYTE. Uploads still proceed without data.
	ErrConversion = errors.New("texture: pixel conversion failed")

	// ErrUnknownPixelSize is returned when rows must be repacked for a
	// format/type pair whose pixel size is unknown.
	ErrUnknownPixelSize = errors.New("texture: unknown pixel size")

	// ErrInvalidUnpack is returned when the pixel-store state holds a
	// negative row length or skip.
	ErrInvalidUnpack = errors.New("texture: negative unpack parameter")

	// ErrShortBuffer is returned when a source or destination buffer is
	// smaller than the image it describes.
	ErrShortBuffer = errors.New("texture: buffer too short")

	// ErrUnsupportedReadback is returned by GetTexImage for anything but
	// level 0 in RGBA/UNSIGNED_BYTE.
	ErrUnsupportedReadback = errors.New("texture: unsupported readback request")

	// ErrNoOffscreen is returned by GetTexImage when the context was built
	// without an offscreen capability.
	ErrNoOffscreen = errors.New("texture: no offscreen capability")

	// ErrIncompleteFramebuffer is returned by GetTexImage when the
	// temporary framebuffer could not be completed.
	ErrIncompleteFramebuffer = errors.New("texture: incomplete framebuffer")
)
