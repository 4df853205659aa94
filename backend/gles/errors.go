// Copyright 2026 The gl4es Authors
// SPDX-License-Identifier: MIT

// Package gles drives a real GLES 2 context through golang.org/x/mobile/gl.
//
// Target implements texture.Target and texture.Offscreen on top of a
// gl.Context. Every call must be made on the goroutine the context is
// current on, which is also the goroutine owning the texture.Context.
//
//	glctx, _ := gldriver.NewContext()
//	t := gles.New(glctx)
//	defer t.Release()
//	ctx := texture.NewContext(t, texture.WithOffscreen(t))
package gles

import "errors"

// Package errors for the GLES target.
var (
	// ErrNoProgram is returned when the context cannot create a program.
	ErrNoProgram = errors.New("gles: no programs available")

	// ErrShaderCompile is returned when a shader of the quad program fails
	// to compile.
	ErrShaderCompile = errors.New("gles: shader compile failed")

	// ErrProgramLink is returned when the quad program fails to link.
	ErrProgramLink = errors.New("gles: program link failed")
)
