// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"fmt"

	"github.com/zayokami/resize/internal/errors"
)

// Plane is a borrowed view of a packed RGBA buffer: Width*Height pixels,
// row-major, 4 bytes per pixel without row padding.
type Plane struct {
	Pix    []byte // exactly Width*Height*4 bytes
	Width  uint32 // width in pixels
	Height uint32 // height in pixels
}

// NewPlane allocates a zeroed plane.
// Returns an error if the dimensions are rejected by Validate.
func NewPlane(width, height uint32) (*Plane, error) {
	size, ok := bufferSize(width, height)
	if !ok {
		return nil, StatusOverflow.Err()
	}
	if width == 0 || height == 0 || !withinLimits(Region{Width: width, Height: height}) {
		return nil, StatusInvalidSize.Err()
	}
	return &Plane{
		Pix:    make([]byte, size),
		Width:  width,
		Height: height,
	}, nil
}

func (p *Plane) stride() int { return int(p.Width) * BytesPerPixel }

// borrow returns the planes for src and dst after running the
// validation gate on their addresses. The planes are cut to the exact
// buffer sizes so no loop can index past them.
func borrow(dst []byte, dw, dh uint32, src []byte, sw, sh uint32, strict bool) (Plane, Plane, error) {
	srcSize, dstSize, err := validate(
		Region{Addr: sliceAddr(src), Width: sw, Height: sh},
		Region{Addr: sliceAddr(dst), Width: dw, Height: dh},
		strict)
	if err != nil {
		// empty slices all start at the runtime's zero-size address
		if StatusOf(err) != StatusOverlap || (len(src) > 0 && len(dst) > 0) {
			return Plane{}, Plane{}, err
		}
		srcSize, _ = bufferSize(sw, sh)
		dstSize, _ = bufferSize(dw, dh)
	}
	if uint64(len(src)) < uint64(srcSize) || uint64(len(dst)) < uint64(dstSize) {
		return Plane{}, Plane{}, errors.WrapPrefix(StatusInvalidSize,
			fmt.Sprintf("buffer too small: src %d/%d bytes, dst %d/%d bytes",
				len(src), srcSize, len(dst), dstSize), 0)
	}
	return Plane{Pix: dst[:dstSize:dstSize], Width: dw, Height: dh},
		Plane{Pix: src[:srcSize:srcSize], Width: sw, Height: sh}, nil
}

// PSNR computes the peak signal-to-noise ratio between two planes of
// the same resolution over all four channels. Identical planes return
// +Inf.
func PSNR(a, b *Plane) (float64, error) {
	if a == nil || b == nil {
		return 0, StatusNullPointer.Err()
	}
	if a.Width != b.Width || a.Height != b.Height {
		return 0, errors.Errorf("invalid resolutions %vx%v != %vx%v",
			a.Width, a.Height, b.Width, b.Height)
	}
	if len(a.Pix) < a.stride()*int(a.Height) || len(b.Pix) < b.stride()*int(b.Height) {
		return 0, StatusInvalidSize.Err()
	}
	return psnrPlane(a.Pix, b.Pix, a.stride(), int(a.Height), a.stride(), b.stride()), nil
}
