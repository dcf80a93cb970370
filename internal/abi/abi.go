// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package abi implements the entry points a wasm host calls. Every
// entry point returns or latches the integer value of a resize.Status.
//
// Buffers handed to the host are carved out of resize.Memory arenas.
// Arenas are never moved or released so pointers into them stay valid
// until the host frees them.
package abi

import (
	"log/slog"
	"unsafe"

	"github.com/zayokami/resize"
	"github.com/zayokami/resize/internal/errors"
)

const (
	arenaSize = 16 << 20
	// largest single allocation, one buffer at the pixel limit
	maxAlloc = resize.MaxPixels * resize.BytesPerPixel
	// bytes an arena reserves besides the allocation itself
	arenaOverhead = 16
)

// messages holds the NUL-terminated description of every status.
var messages = func() map[resize.Status][]byte {
	m := map[resize.Status][]byte{}
	for s := resize.StatusOK; s <= resize.StatusOverlap; s++ {
		m[s] = append([]byte(s.String()), 0)
	}
	return m
}()

var unknownMessage = []byte("Unknown error\x00")

// Exports is the state behind the exported functions. It is not safe for
// concurrent use.
type Exports struct {
	ctx    *resize.Context
	arenas []*resize.Memory
}

// New returns the exports for a context configured with cfg.
func New(cfg *resize.Config) *Exports {
	return &Exports{ctx: resize.NewContext(cfg)}
}

// Context returns the context latching the status of every call.
func (e *Exports) Context() *resize.Context { return e.ctx }

func (e *Exports) Resize(src unsafe.Pointer, sw, sh uint32, dst unsafe.Pointer, dw, dh uint32) int32 {
	return int32(e.ctx.ResizePointers(src, sw, sh, dst, dw, dh))
}

func (e *Exports) ResizeNearest(src unsafe.Pointer, sw, sh uint32, dst unsafe.Pointer, dw, dh uint32) int32 {
	return int32(e.ctx.ResizeNearestPointers(src, sw, sh, dst, dw, dh))
}

// Alloc returns size zeroed bytes aligned to 8 bytes. It returns nil and
// latches InvalidSize for a zero size, or Memory if the request cannot
// be served.
func (e *Exports) Alloc(size uint32) unsafe.Pointer {
	if size == 0 {
		e.ctx.Record(errors.WrapPrefix(resize.StatusInvalidSize, "allocation of 0 bytes", 0))
		return nil
	}
	if size > maxAlloc {
		e.ctx.Record(errors.WrapPrefix(resize.StatusMemory,
			"allocation larger than one buffer at the pixel limit", 0))
		return nil
	}
	for _, m := range e.arenas {
		if addr, err := m.Alloc(size); err == nil {
			return m.Pointer(addr)
		}
	}
	m := resize.NewMemory(max(arenaSize, size+arenaOverhead))
	addr, err := m.Alloc(size)
	if err != nil {
		e.ctx.Record(err)
		return nil
	}
	e.arenas = append(e.arenas, m)
	return m.Pointer(addr)
}

// Dealloc releases a buffer returned by Alloc. size must be the size
// passed to Alloc. Null pointers, zero sizes and unknown pointers are
// ignored.
func (e *Exports) Dealloc(ptr unsafe.Pointer, size uint32) {
	if ptr == nil || size == 0 {
		return
	}
	for _, m := range e.arenas {
		if addr, ok := m.AddrOf(ptr); ok {
			m.Free(addr, size)
			return
		}
	}
	resize.Logger().Warn("ignoring free of unknown pointer",
		slog.Uint64("ptr", uint64(uintptr(ptr))), slog.Uint64("size", uint64(size)))
}

// LastError returns a NUL-terminated description of the latched status.
// The bytes are static and must not be written by the host.
func (e *Exports) LastError() unsafe.Pointer {
	msg, ok := messages[e.ctx.Status()]
	if !ok {
		msg = unknownMessage
	}
	return unsafe.Pointer(unsafe.SliceData(msg))
}
