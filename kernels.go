// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"math"
)

// Kernel holds the horizontal lookup tables of one resize call. Tables
// are indexed by destination column and reused for every row.
type Kernel struct {
	offsets []int     // nearest source or left bilinear neighbour, in bytes
	right   []int     // right bilinear neighbour, in bytes
	weights []float32 // weight of the right neighbour
}

// reset empties the tables and keeps their capacity for the next call.
func (k *Kernel) reset(size int) {
	k.offsets = grow(k.offsets[:0], size)
	k.right = grow(k.right[:0], size)
	k.weights = grow(k.weights[:0], size)
}

func grow[T any](s []T, size int) []T {
	if cap(s) < size {
		return make([]T, 0, size)
	}
	return s
}

func clip(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func scaleOf(src, dst uint32) float32 {
	return float32(src) / float32(dst)
}

// nearestCoord maps destination coordinate d onto the source axis by
// sampling at the pixel center.
func nearestCoord(d uint32, scale float32, size uint32) int {
	s := (float32(d) + 0.5) * scale
	return clip(int(s), 0, int(size)-1)
}

// bilinearCoord returns the two source neighbours of destination
// coordinate d and the weight of the second one. Neighbours outside the
// axis are clamped so borders repeat the edge pixel.
func bilinearCoord(d uint32, scale float32, size uint32) (c0, c1 int, f float32) {
	s := (float32(d)+0.5)*scale - 0.5
	c0 = int(math.Floor(float64(s)))
	c1 = min(c0+1, int(size)-1)
	f = clampf(s-float32(c0), 0, 1)
	last := int(size) - 1
	return clip(c0, 0, last), clip(c1, 0, last), f
}

func (k *Kernel) makeNearest(srcWidth, dstWidth uint32) {
	k.reset(int(dstWidth))
	scale := scaleOf(srcWidth, dstWidth)
	for x := uint32(0); x < dstWidth; x++ {
		k.offsets = append(k.offsets, nearestCoord(x, scale, srcWidth)*BytesPerPixel)
	}
}

func (k *Kernel) makeBilinear(srcWidth, dstWidth uint32) {
	k.reset(int(dstWidth))
	scale := scaleOf(srcWidth, dstWidth)
	for x := uint32(0); x < dstWidth; x++ {
		x0, x1, fx := bilinearCoord(x, scale, srcWidth)
		k.offsets = append(k.offsets, x0*BytesPerPixel)
		k.right = append(k.right, x1*BytesPerPixel)
		k.weights = append(k.weights, fx)
	}
}
