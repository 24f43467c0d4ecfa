// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package d20canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrNoTextureCreator is returned when the draw context cannot create
	// textures.
	ErrNoTextureCreator = errors.New("d20canvas: draw context has no texture creator")

	// ErrInvalidTexture is returned when a texture does not support the
	// requested operation.
	ErrInvalidTexture = errors.New("d20canvas: invalid texture")
)

// TextureDrawer creates, updates and draws RGBA textures.
// FromGPUContext adapts a gogpu draw context to it.
type TextureDrawer interface {
	// NewTexture creates a width x height texture from tightly packed RGBA data.
	NewTexture(width, height int, rgba []byte) (any, error)

	// UpdateTexture replaces the contents of a texture created by NewTexture.
	UpdateTexture(tex any, rgba []byte) error

	// DrawTexture draws tex with its top-left corner at (x, y).
	DrawTexture(tex any, x, y float32) error
}

// RenderTo flushes the canvas and draws its texture at (0, 0).
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(d20canvas.FromGPUContext(dc.AsTextureDrawer()))
//	})
func (c *Canvas) RenderTo(dc TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition is like RenderTo but draws at (x, y).
func (c *Canvas) RenderToPosition(dc TextureDrawer, x, y float32) error {
	tex, err := c.Flush(dc)
	if err != nil {
		return err
	}
	return dc.DrawTexture(tex, x, y)
}

// FromGPUContext adapts a gpucontext.TextureDrawer, as returned by
// gogpu.Context.AsTextureDrawer, to TextureDrawer.
func FromGPUContext(dc gpucontext.TextureDrawer) TextureDrawer {
	return gpuDrawer{dc: dc}
}

// gpuDrawer forwards to the gpucontext texture interfaces.
type gpuDrawer struct {
	dc gpucontext.TextureDrawer
}

func (d gpuDrawer) NewTexture(width, height int, rgba []byte) (any, error) {
	creator := d.dc.TextureCreator()
	if creator == nil {
		return nil, ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(width, height, rgba)
	if err != nil {
		return nil, fmt.Errorf("d20canvas: NewTextureFromRGBA failed: %w", err)
	}
	return tex, nil
}

func (d gpuDrawer) UpdateTexture(tex any, rgba []byte) error {
	updater, ok := tex.(gpucontext.TextureUpdater)
	if !ok {
		return fmt.Errorf("%w: %T cannot be updated", ErrInvalidTexture, tex)
	}
	return updater.UpdateData(rgba)
}

func (d gpuDrawer) DrawTexture(tex any, x, y float32) error {
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("%w: %T is not a gpucontext.Texture", ErrInvalidTexture, tex)
	}
	return d.dc.DrawTexture(gpuTex, x, y)
}
