// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build wasip1

// Command wasm-resize exports the resize kernel to wasm hosts.
//
// Build as a reactor module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o resize.wasm ./cmd/wasm-resize
//
// Every export returns or latches the integer value of a resize.Status.
// alloc_memory and dealloc_memory hand out zeroed buffers inside the
// module's linear memory.
package main

import (
	"unsafe"

	"github.com/zayokami/resize/internal/abi"
)

func main() {}

// wasm modules run on a single thread so one set of exports serves
// every call.
var exports = abi.New(nil)

//go:wasmexport resize_rgba
func resizeRGBA(src unsafe.Pointer, sw, sh uint32, dst unsafe.Pointer, dw, dh uint32) int32 {
	return exports.Resize(src, sw, sh, dst, dw, dh)
}

//go:wasmexport resize_rgba_nearest
func resizeRGBANearest(src unsafe.Pointer, sw, sh uint32, dst unsafe.Pointer, dw, dh uint32) int32 {
	return exports.ResizeNearest(src, sw, sh, dst, dw, dh)
}

//go:wasmexport alloc_memory
func allocMemory(size uint32) unsafe.Pointer {
	return exports.Alloc(size)
}

//go:wasmexport dealloc_memory
func deallocMemory(ptr unsafe.Pointer, size uint32) {
	exports.Dealloc(ptr, size)
}

//go:wasmexport get_last_error
func getLastError() unsafe.Pointer {
	return exports.LastError()
}
