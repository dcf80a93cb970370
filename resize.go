// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"log/slog"
)

// Config configures a Context. The zero value selects the algorithm
// automatically and enforces 4-byte alignment of every buffer.
type Config struct {
	Algorithm      Algorithm // sampling used by Resize
	AllowUnaligned bool      // skip the 4-byte alignment check
}

// Resizer resizes packed RGBA buffers.
type Resizer interface {
	Resize(dst []byte, dw, dh uint32, src []byte, sw, sh uint32) error
}

// Context bundles the lookup tables reused across calls and the status
// of the last call. A Context must not be used by several goroutines at
// once.
type Context struct {
	cfg    Config
	kernel Kernel
	status Status
}

var _ Resizer = (*Context)(nil)

// NewContext returns a Context for cfg. A nil cfg uses the defaults.
func NewContext(cfg *Config) *Context {
	ctx := &Context{}
	if cfg != nil {
		ctx.cfg = *cfg
	}
	return ctx
}

// Config returns the configuration of the context.
func (c *Context) Config() Config { return c.cfg }

// Status returns the status latched by the last call.
func (c *Context) Status() Status { return c.status }

// LastError describes the status latched by the last call.
func (c *Context) LastError() string { return c.status.String() }

// Record latches err as the outcome of the last call and returns its
// status. It serves callers that reject a request before it reaches the
// kernel, such as a failed allocation across a foreign boundary.
func (c *Context) Record(err error) Status {
	c.latch(err)
	return c.status
}

// Resize fills dst, a dw x dh RGBA buffer, with src resampled from
// sw x sh, using the configured algorithm.
// Returns an error carrying a Status if the buffers are rejected. The
// destination is left untouched in that case.
func (c *Context) Resize(dst []byte, dw, dh uint32, src []byte, sw, sh uint32) error {
	return c.run(c.cfg.Algorithm, dst, dw, dh, src, sw, sh)
}

// ResizeNearest is Resize forced to nearest-neighbor sampling.
func (c *Context) ResizeNearest(dst []byte, dw, dh uint32, src []byte, sw, sh uint32) error {
	return c.run(Nearest, dst, dw, dh, src, sw, sh)
}

// ResizePlane resizes src into dst.
func (c *Context) ResizePlane(dst, src *Plane) error {
	if dst == nil || src == nil {
		return c.latch(StatusNullPointer.Err())
	}
	return c.Resize(dst.Pix, dst.Width, dst.Height, src.Pix, src.Width, src.Height)
}

func (c *Context) run(algo Algorithm, dst []byte, dw, dh uint32, src []byte, sw, sh uint32) error {
	c.status = StatusOK
	d, s, err := borrow(dst, dw, dh, src, sw, sh, !c.cfg.AllowUnaligned)
	if err != nil {
		return c.latch(err)
	}
	return c.latch(c.scale(algo, &d, &s))
}

// scale runs the resampler on planes that went through the validation
// gate.
func (c *Context) scale(algo Algorithm, dst, src *Plane) error {
	algo = algo.Resolve(src.Width, src.Height, dst.Width, dst.Height)
	if debugEnabled() {
		Logger().Debug("resize",
			slog.String("algorithm", algo.String()),
			slog.Any("src", [2]uint32{src.Width, src.Height}),
			slog.Any("dst", [2]uint32{dst.Width, dst.Height}))
	}
	c.kernel.build(algo, src.Width, dst.Width)
	return algo.scaler()(dst.Pix, src.Pix, &c.kernel,
		src.Width, src.Height, dst.Width, dst.Height)
}

// latch records the status of err as the outcome of the call.
func (c *Context) latch(err error) error {
	c.status = StatusOf(err)
	if err != nil && debugEnabled() {
		Logger().Debug("resize rejected",
			slog.Int("status", int(c.status)),
			slog.String("error", err.Error()))
	}
	return err
}
