// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"text/tabwriter"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	rez "github.com/zayokami/resize"
)

func init() {
	compareCmd.Flags().StringVarP(&compareSize, `size`, `s`, ``, `destination size <w>x<h>`)
	_ = compareCmd.MarkFlagRequired(`size`)
	rootCmd.AddCommand(compareCmd)
}

var compareSize string

var compareCmd = &cobra.Command{
	Use:   `compare <input>`,
	Short: `compare the kernel output with reference scalers`,
	Long: `Resize an image with the kernel and with reference scalers from
golang.org/x/image/draw, github.com/nfnt/resize and
github.com/disintegration/gift, and print the PSNR between them.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(compareFunc(cmd, args))
	},
}

type reference struct {
	name  string
	algo  rez.Algorithm
	scale func(img image.Image, w, h int) image.Image
}

func xdrawScaler(s draw.Scaler) func(image.Image, int, int) image.Image {
	return func(img image.Image, w, h int) image.Image {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		s.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst
	}
}

func nfntScaler(interp resize.InterpolationFunction) func(image.Image, int, int) image.Image {
	return func(img image.Image, w, h int) image.Image {
		return resize.Resize(uint(w), uint(h), img, interp)
	}
}

func giftScaler(r gift.Resampling) func(image.Image, int, int) image.Image {
	return func(img image.Image, w, h int) image.Image {
		g := gift.New(gift.Resize(w, h, r))
		dst := image.NewNRGBA(g.Bounds(img.Bounds()))
		g.Draw(dst, img)
		return dst
	}
}

var references = []reference{
	{`x/image/draw NearestNeighbor`, rez.Nearest, xdrawScaler(draw.NearestNeighbor)},
	{`x/image/draw BiLinear`, rez.Bilinear, xdrawScaler(draw.BiLinear)},
	{`x/image/draw ApproxBiLinear`, rez.Bilinear, xdrawScaler(draw.ApproxBiLinear)},
	{`nfnt/resize NearestNeighbor`, rez.Nearest, nfntScaler(resize.NearestNeighbor)},
	{`nfnt/resize Bilinear`, rez.Bilinear, nfntScaler(resize.Bilinear)},
	{`gift NearestNeighbor`, rez.Nearest, giftScaler(gift.NearestNeighborResampling)},
	{`gift Linear`, rez.Bilinear, giftScaler(gift.LinearResampling)},
}

func compareFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		w, h, err := parseSize(compareSize)
		if err != nil {
			return err
		}
		img, err := readImage(args[0])
		if err != nil {
			return err
		}
		src, err := rez.ToPlane(img)
		if err != nil {
			return err
		}
		outputs := map[rez.Algorithm]*rez.Plane{}
		for _, algo := range []rez.Algorithm{rez.Nearest, rez.Bilinear} {
			dst, err := rez.NewPlane(w, h)
			if err != nil {
				return err
			}
			ctx := rez.NewContext(&rez.Config{Algorithm: algo})
			if err := ctx.ResizePlane(dst, src); err != nil {
				return err
			}
			outputs[algo] = dst
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "reference\tkernel\tPSNR (dB)\n")
		for _, ref := range references {
			out, err := rez.ToPlane(ref.scale(src.NRGBA(), int(w), int(h)))
			if err != nil {
				return err
			}
			psnr, err := rez.PSNR(outputs[ref.algo], out)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%.2f\n", ref.name, ref.algo, psnr)
		}
		fmt.Fprintf(tw, "auto selects\t%s\t\n", rez.Auto.Resolve(src.Width, src.Height, w, h))
		return tw.Flush()
	}
}
