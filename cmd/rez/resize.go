// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zayokami/resize"
)

func init() {
	resizeCmd.Flags().StringVarP(&resizeSize, `size`, `s`, ``, `destination size <w>x<h>`)
	resizeCmd.Flags().StringVarP(&resizeAlgo, `algo`, `a`, `auto`, `algorithm: auto, nearest or bilinear`)
	resizeCmd.Flags().BoolVar(&resizeUnaligned, `unaligned`, false, `accept buffers that are not 4-byte aligned`)
	_ = resizeCmd.MarkFlagRequired(`size`)
	rootCmd.AddCommand(resizeCmd)
}

var (
	resizeSize      string
	resizeAlgo      string
	resizeUnaligned bool
)

var resizeCmd = &cobra.Command{
	Use:   `resize <input> <output.png>`,
	Short: `resize an image file`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(resizeFunc(cmd, args))
	},
}

func resizeFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		algo, err := resize.ParseAlgorithm(resizeAlgo)
		if err != nil {
			return err
		}
		w, h, err := parseSize(resizeSize)
		if err != nil {
			return err
		}
		img, err := readImage(args[0])
		if err != nil {
			return err
		}
		src, err := resize.ToPlane(img)
		if err != nil {
			return err
		}
		dst, err := resize.NewPlane(w, h)
		if err != nil {
			return err
		}
		ctx := resize.NewContext(&resize.Config{
			Algorithm:      algo,
			AllowUnaligned: resizeUnaligned,
		})
		if err := ctx.ResizePlane(dst, src); err != nil {
			return err
		}
		if err := writeImage(args[1], dst.NRGBA()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%dx%d -> %dx%d (%s)\n",
			src.Width, src.Height, dst.Width, dst.Height,
			algo.Resolve(src.Width, src.Height, dst.Width, dst.Height))
		return nil
	}
}
