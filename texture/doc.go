// Package texture implements desktop OpenGL texture management on top of a
// reduced GLES-like target API.
//
// A Context tracks texture objects by name, the bound texture of every
// texture unit on the server and client axes, and the pixel-store unpack
// state. Uploads are reshaped before they reach the target: strided or
// offset source rows are repacked, pixel formats and types the target cannot
// take are converted to RGBA/UNSIGNED_BYTE, and non-power-of-two images are
// placed at the origin of power-of-two storage.
//
// # Uploads
//
//	ctx := texture.NewContext(dev, texture.WithOffscreen(dev))
//	ctx.BindTexture(gl4es.TEXTURE_2D, 1)
//	err := ctx.TexImage2D(gl4es.TEXTURE_2D, 0, int32(gl4es.RGBA), 100, 70, 0,
//		gl4es.BGRA, gl4es.UNSIGNED_BYTE, pixels)
//
// The texture above is stored as 128x128. Texture coordinates meant for the
// logical 100x70 image are remapped with Context.RescaleTexCoords.
//
// # Readback
//
// GLES cannot read a texture image directly. GetTexImage renders the bound
// texture into a temporary framebuffer through the Offscreen capability and
// reads that back. Only level 0 in RGBA/UNSIGNED_BYTE is supported.
//
// # Command lists
//
// When a Recorder is installed and composing, binding and unit selection
// calls are turned into Command values instead of being executed. Replaying
// them goes through Context.Execute.
//
// A Context is not safe for concurrent use.
package texture
