// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the software compositor that turns a layer stack
// into a single RGBA framebuffer.
//
// # Usage
//
// The application shell keeps one Compositor per canvas size and redraws by
// clearing and rendering every document layer in order:
//
//	c := render.NewCompositor(doc.Width(), doc.Height())
//
//	c.Clear(background)
//	for _, l := range doc.Layers() {
//	    c.RenderLayer(l)
//	}
//	display(c.Framebuffer())
//
// Composite performs the same sequence in one call.
//
// # Ordering
//
// Layer 0 is painted first and is visually at the bottom; each later layer
// blends over the fully applied result of the layers below it.
//
// # Blending
//
// Pixels are blended with the straight-alpha "over" operator from
// internal/blend, truncating to bytes. Raster layers are multiplied by their
// opacity before blending. Vector rectangle fills use the shape color as is.
package render
