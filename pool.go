// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import "sync"

var contexts = sync.Pool{
	New: func() any { return NewContext(nil) },
}

// Resize resizes src into dst with automatic algorithm selection, using
// a pooled Context. It is safe for concurrent use.
func Resize(dst []byte, dw, dh uint32, src []byte, sw, sh uint32) error {
	ctx := contexts.Get().(*Context)
	defer contexts.Put(ctx)
	return ctx.Resize(dst, dw, dh, src, sw, sh)
}

// ResizeNearest is Resize forced to nearest-neighbor sampling.
func ResizeNearest(dst []byte, dw, dh uint32, src []byte, sw, sh uint32) error {
	ctx := contexts.Get().(*Context)
	defer contexts.Put(ctx)
	return ctx.ResizeNearest(dst, dw, dh, src, sw, sh)
}
