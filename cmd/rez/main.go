// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command rez resizes RGBA images with the resize kernel.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zayokami/resize"
	"github.com/zayokami/resize/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:          "rez",
	Short:        "rez resizes RGBA images",
	Long:         "rez resizes RGBA images with nearest-neighbor or bilinear sampling",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			resize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var debug bool

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug logging and error stacks`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if fn == nil {
		log.Fatal(`nil command function`)
	}
	err := fn()
	if err == nil {
		return
	}
	if stack := errors.Stack(err); debug && len(stack) > 0 {
		fmt.Fprintln(os.Stderr, stack)
		os.Exit(1)
	}
	log.Fatal(err)
}
