// Package gl4es holds the pieces shared by every layer of the GL to GLES
// texture shim: the GL enumerant type and constants, the package logger and
// the environment toggles.
//
// # Overview
//
// Client code written against desktop OpenGL issues texture calls that the
// embedded API cannot take as they are: arbitrary pixel format/type pairs,
// non-power-of-two sizes, GL_UNPACK_ROW_LENGTH and the skip parameters,
// rectangle textures and glGetTexImage. The texture package reshapes those
// calls and replays them onto a GLES target.
//
// # Quick Start
//
//	import (
//	    "github.com/templeblock/gl4es"
//	    "github.com/templeblock/gl4es/backend/gles"
//	    "github.com/templeblock/gl4es/texture"
//	)
//
//	dev := gles.New(glctx)
//	tc := texture.NewContext(dev,
//	    texture.WithOffscreen(dev),
//	    texture.WithEnv(gl4es.LoadEnv()),
//	)
//
//	tc.BindTexture(gl4es.TEXTURE_2D, 1)
//	err := tc.TexImage2D(gl4es.TEXTURE_2D, 0, gl4es.RGBA, 100, 70, 0,
//	    gl4es.BGRA, gl4es.UNSIGNED_BYTE, pixels)
//
// # Architecture
//
//   - gl4es: enumerants, logger, environment configuration
//   - texture: texture store, unit state, pixel normalization, unpacking,
//     NPOT emulation, readback emulation, command-list hooks
//   - displaylist: command-list recorder for the texture commands
//   - backend/gles: target adapter over golang.org/x/mobile/gl
//   - internal/pixel: pixel sizes, conversion, scaling, image dumps
//   - internal/softgl: in-memory GLES device used by tests and tools
package gl4es

// Version is the current version of the library.
const Version = "0.1.0"
