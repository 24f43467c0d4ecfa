// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package d20canvas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/d20hist"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("d20canvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("d20canvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("d20canvas: nil DeviceProvider")

	// ErrNilState is returned when a nil histogram state is passed.
	ErrNilState = errors.New("d20canvas: nil state")
)

// textureDestroyer matches the gogpu texture Destroy method.
type textureDestroyer interface {
	Destroy()
}

// Canvas binds a histogram State to a GPU texture.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	state         *d20hist.State
	frame         *d20hist.Frame
	surfaceFormat gputypes.TextureFormat
	texture       any  // Lazy-created texture
	oldTexture    any  // Previous texture awaiting deferred destruction
	dirty         bool // Frame must be redrawn and uploaded
	sizeChanged   bool // Resize pending; texture must be recreated
	closed        bool
}

// New creates a Canvas sized to state.
// The provider should come from gogpu.App.GPUContextProvider().
//
// Returns error if provider or state is nil.
func New(provider gpucontext.DeviceProvider, state *d20hist.State) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if state == nil {
		return nil, ErrNilState
	}

	w, h := state.Size()
	c := &Canvas{
		state:         state,
		frame:         d20hist.NewFrame(int(w), int(h)),
		surfaceFormat: provider.SurfaceFormat(),
		dirty:         true, // First RenderTo creates the texture
	}

	d20hist.Logger().LogAttrs(context.Background(), slog.LevelInfo, "d20canvas: created",
		slog.Int("width", int(w)),
		slog.Int("height", int(h)),
		slog.Any("surface_format", c.surfaceFormat))
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, state *d20hist.State) *Canvas {
	c, err := New(provider, state)
	if err != nil {
		panic(err)
	}
	return c
}

// State returns the histogram state driven by the canvas.
func (c *Canvas) State() *d20hist.State {
	return c.state
}

// Frame returns the CPU pixel buffer. Its contents are current after Flush.
func (c *Canvas) Frame() *d20hist.Frame {
	return c.frame
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.frame.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.frame.Height()
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.frame.Size()
}

// SurfaceFormat returns the window surface format reported by the provider.
func (c *Canvas) SurfaceFormat() gputypes.TextureFormat {
	return c.surfaceFormat
}

// PixelFormat returns the layout of the uploaded frame data.
func (c *Canvas) PixelFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Tick advances the simulation by one update and marks the canvas dirty.
func (c *Canvas) Tick() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.state.Update()
	c.dirty = true
	return nil
}

// Reset zeroes the histogram counts and marks the canvas dirty.
func (c *Canvas) Reset() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.state.Reset()
	c.dirty = true
	return nil
}

// MarkDirty flags the canvas for redraw and upload on the next Flush.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty returns true if the frame must be redrawn before the next upload.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Resize changes the frame and state dimensions.
// The texture is recreated on the next Flush.
//
// Returns error if dimensions are invalid or canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if w, h := c.frame.Size(); w == width && h == height {
		return nil
	}

	c.frame.Resize(width, height)
	c.state.SetSize(uint32(width), uint32(height))
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush redraws the frame if dirty and uploads it to the GPU texture,
// creating the texture on first use or after a resize.
// Returns the texture for manual drawing if needed.
func (c *Canvas) Flush(dc TextureDrawer) (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// The old texture may still be referenced by in-flight command buffers.
	// Keep it until its replacement has been created.
	if c.sizeChanged {
		if c.texture != nil {
			c.destroyOld()
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	c.state.DrawFrame(c.frame)
	w, h := c.frame.Size()

	if c.texture == nil {
		tex, err := dc.NewTexture(w, h, c.frame.Data())
		if err != nil {
			return nil, err
		}
		c.texture = tex
		c.destroyOld()
		c.dirty = false
		return c.texture, nil
	}

	if err := dc.UpdateTexture(c.texture, c.frame.Data()); err != nil {
		return nil, fmt.Errorf("d20canvas: texture update failed: %w", err)
	}
	c.dirty = false
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing.
// Returns nil if the texture hasn't been created yet.
func (c *Canvas) Texture() any {
	return c.texture
}

// destroyOld releases the texture replaced by the last resize, if any.
func (c *Canvas) destroyOld() {
	if c.oldTexture == nil {
		return
	}
	if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	c.oldTexture = nil
}

// Close releases the GPU textures.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.destroyOld()
	if c.texture != nil {
		if destroyer, ok := c.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.texture = nil
	}
	return nil
}
