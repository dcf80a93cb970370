// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zayokami/resize"
)

func init() { rootCmd.AddCommand(selectCmd) }

var selectCmd = &cobra.Command{
	Use:   `select <src(<w>x<h>)> <dst(<w>x<h>)>`,
	Short: `print the algorithm chosen for a resize`,
	Long: `Print the algorithm chosen by automatic selection for a resize.

Upscales always use bilinear, downscales beyond 8x always use nearest and
in between the allowed ratio depends on the source pixel count.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(selectFunc(cmd, args))
	},
}

func selectFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		sw, sh, err := parseSize(args[0])
		if err != nil {
			return err
		}
		dw, dh, err := parseSize(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resize.Auto.Resolve(sw, sh, dw, dh))
		return nil
	}
}
