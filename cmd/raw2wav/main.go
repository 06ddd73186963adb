// SPDX-License-Identifier: EPL-2.0

// Command raw2wav converts every hydrophone logger capture under a directory
// into a WAV file in "<root>/Converted Files".
//
// Run without arguments it converts the current directory's .RAW files as
// mono 16-bit 44.1 kHz audio. Per-file errors are printed and do not change
// the exit status.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/hydrowav"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := hydrowav.DefaultConfig(".")
	cfg.Log = stdout

	fs := flag.NewFlagSet("raw2wav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Root, "root", cfg.Root, "directory scanned recursively for captures")
	fs.StringVar(&cfg.Extension, "ext", cfg.Extension, "case-sensitive capture file suffix")
	fs.StringVar(&cfg.OutputDirName, "out", cfg.OutputDirName, "output directory name, created under root")
	fs.IntVar(&cfg.Format.Channels, "channels", cfg.Format.Channels, "channel count of the captures")
	fs.IntVar(&cfg.Format.SampleWidth, "width", cfg.Format.SampleWidth, "sample width in bytes")
	fs.IntVar(&cfg.Format.SampleRate, "rate", cfg.Format.SampleRate, "sample rate in Hz")
	fs.BoolVar(&cfg.Verify, "verify", false, "read every written file back and check it")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "raw2wav: unexpected argument %q\n", fs.Arg(0))
		return 2
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		fmt.Fprintf(stderr, "raw2wav: %v\n", err)
		return 1
	}
	cfg.Root = root

	sum, err := hydrowav.ConvertAll(cfg)
	if len(sum.Results) > 0 {
		fmt.Fprintf(stdout, "Done: %d converted, %d failed\n", sum.Converted, sum.Failed)
	}
	if err != nil {
		fmt.Fprintf(stderr, "raw2wav: %v\n", err)
		return 1
	}

	return 0
}
