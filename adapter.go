// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"image"

	"golang.org/x/image/draw"
)

// Adapter resizes whole images.
type Adapter interface {
	Resize(dst draw.Image, src image.Image) error
}

// ImageAdapter resizes images through a Context. Channel bytes are
// resampled as they are stored, alpha is not premultiplied.
type ImageAdapter struct {
	Context *Context
}

var _ Adapter = ImageAdapter{}

func (a ImageAdapter) Resize(dst draw.Image, src image.Image) error {
	ctx := a.Context
	if ctx == nil {
		ctx = NewContext(nil)
	}
	return ctx.ResizeImage(dst, src)
}

// NRGBA returns an image sharing the pixels of p.
func (p *Plane) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.Pix,
		Stride: p.stride(),
		Rect:   image.Rect(0, 0, int(p.Width), int(p.Height)),
	}
}

// pixels returns the straight-alpha bytes of img and their stride.
// Premultiplied images such as *image.RGBA are not returned.
func pixels(img image.Image) ([]byte, int, bool) {
	if m, ok := img.(*image.NRGBA); ok {
		return m.Pix[m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y):], m.Stride, true
	}
	return nil, 0, false
}

func dims(img image.Image) (uint32, uint32) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0, 0
	}
	return uint32(b.Dx()), uint32(b.Dy())
}

// ToPlane returns src as a packed straight-alpha plane. A packed
// *image.NRGBA shares its pixels, any other image is converted.
func ToPlane(src image.Image) (*Plane, error) {
	if src == nil {
		return nil, StatusNullPointer.Err()
	}
	w, h := dims(src)
	if pix, stride, ok := pixels(src); ok && stride == int(w)*BytesPerPixel {
		size, _ := bufferSize(w, h)
		if uint64(len(pix)) >= uint64(size) {
			return &Plane{Pix: pix[:size:size], Width: w, Height: h}, nil
		}
	}
	p, err := NewPlane(w, h)
	if err != nil {
		return nil, err
	}
	if pix, stride, ok := pixels(src); ok {
		copyPlane(p.Pix, pix, p.stride(), int(h), p.stride(), stride)
		return p, nil
	}
	img := p.NRGBA()
	draw.Draw(img, img.Rect, src, src.Bounds().Min, draw.Src)
	return p, nil
}

// ResizeImage resizes src into the bounds of dst.
func (c *Context) ResizeImage(dst draw.Image, src image.Image) error {
	if dst == nil || src == nil {
		return c.latch(StatusNullPointer.Err())
	}
	sp, err := ToPlane(src)
	if err != nil {
		return c.latch(err)
	}
	w, h := dims(dst)
	pix, stride, direct := pixels(dst)
	if direct && stride == int(w)*BytesPerPixel {
		return c.Resize(pix, w, h, sp.Pix, sp.Width, sp.Height)
	}
	dp, err := NewPlane(w, h)
	if err != nil {
		return c.latch(err)
	}
	if err := c.ResizePlane(dp, sp); err != nil {
		return err
	}
	if direct {
		copyPlane(pix, dp.Pix, dp.stride(), int(h), stride, dp.stride())
		return nil
	}
	b := dst.Bounds()
	draw.Draw(dst, b, dp.NRGBA(), image.Point{}, draw.Src)
	return nil
}
