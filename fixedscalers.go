// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

// scaler fills dst from src using the horizontal tables of k.
type scaler func(dst, src []byte, k *Kernel, sw, sh, dw, dh uint32) error

func nearestScale(dst, src []byte, k *Kernel, sw, sh, dw, dh uint32) error {
	sp, ok := mulOffset(int(sw), BytesPerPixel)
	if !ok {
		return StatusOverflow.Err()
	}
	dp, ok := mulOffset(int(dw), BytesPerPixel)
	if !ok {
		return StatusOverflow.Err()
	}
	scale := scaleOf(sh, dh)
	for y := uint32(0); y < dh; y++ {
		si, ok := mulOffset(nearestCoord(y, scale, sh), sp)
		if !ok {
			return StatusOverflow.Err()
		}
		di, dend, ok := rowOffsets(int(y), dp)
		if !ok {
			return StatusOverflow.Err()
		}
		for _, xoff := range k.offsets {
			s, ok := addOffset(si, xoff)
			if !ok {
				return StatusOverflow.Err()
			}
			if di < dend && fits(src, s) && fits(dst, di) {
				copy(dst[di:di+BytesPerPixel], src[s:s+BytesPerPixel])
			}
			di += BytesPerPixel
		}
	}
	return nil
}

func bilinearScale(dst, src []byte, k *Kernel, sw, sh, dw, dh uint32) error {
	sp, ok := mulOffset(int(sw), BytesPerPixel)
	if !ok {
		return StatusOverflow.Err()
	}
	dp, ok := mulOffset(int(dw), BytesPerPixel)
	if !ok {
		return StatusOverflow.Err()
	}
	scale := scaleOf(sh, dh)
	for y := uint32(0); y < dh; y++ {
		y0, y1, fy := bilinearCoord(y, scale, sh)
		r0, ok0 := mulOffset(y0, sp)
		r1, ok1 := mulOffset(y1, sp)
		di, dend, ok := rowOffsets(int(y), dp)
		if !ok0 || !ok1 || !ok {
			return StatusOverflow.Err()
		}
		for i, x0 := range k.offsets {
			x1 := k.right[i]
			fx := k.weights[i]
			p00 := pixelAt(src, r0, x0)
			p10 := pixelAt(src, r0, x1)
			p01 := pixelAt(src, r1, x0)
			p11 := pixelAt(src, r1, x1)
			if di < dend && fits(dst, di) {
				d := dst[di : di+BytesPerPixel]
				for c := range d {
					top := lerp(p00[c], p10[c], fx)
					bottom := lerp(p01[c], p11[c], fx)
					d[c] = lerp(top, bottom, fy)
				}
			}
			di += BytesPerPixel
		}
	}
	return nil
}
