// SPDX-License-Identifier: EPL-2.0

package hydrowav

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/hydrowav/pcm"
	"github.com/ik5/hydrowav/scan"
)

const (
	// DefaultExtension is the suffix of the logger's capture files.
	DefaultExtension = ".RAW"
	// DefaultOutputDirName is created directly under the root.
	DefaultOutputDirName = "Converted Files"
)

// Config drives ConvertAll.
type Config struct {
	// Root is scanned recursively for captures.
	Root string
	// Extension is matched case-sensitively against file names.
	Extension string
	// OutputDirName is the flat output directory, relative to Root.
	OutputDirName string
	// Format is applied to every capture.
	Format pcm.Format
	// Log receives one line per file. nil discards them.
	Log io.Writer
	// Verify reads every written file back.
	Verify bool
}

// DefaultConfig returns the logger settings for root, logging to standard output.
func DefaultConfig(root string) Config {
	return Config{
		Root:          root,
		Extension:     DefaultExtension,
		OutputDirName: DefaultOutputDirName,
		Format:        pcm.LoggerFormat,
		Log:           os.Stdout,
	}
}

// OutputDir is where converted files are written.
func (c Config) OutputDir() string {
	return filepath.Join(c.Root, c.OutputDirName)
}

// Summary collects every Result of a batch in processing order.
type Summary struct {
	Results   []Result
	Converted int
	Failed    int
	// Overwritten counts jobs whose output name was already produced earlier
	// in the same batch; the later job wins.
	Overwritten int
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	if r.OK() {
		s.Converted++
	} else {
		s.Failed++
	}
}

// Errors returns the failed results.
func (s Summary) Errors() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}

	return failed
}

// OutputPath maps an input to outputDir/<name without extension>.wav.
// The source directory is dropped, so equal names from different
// directories map to the same output.
func OutputPath(outputDir, input string) string {
	name := filepath.Base(input)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return filepath.Join(outputDir, name+".wav")
}

// ConvertAll converts every capture under cfg.Root into cfg.OutputDir().
//
// The output directory is created first; failing to create it is returned
// before any file is touched. Per-file failures are logged and recorded in
// the Summary without stopping the batch. A scan error ends the batch and
// is returned with the results gathered so far.
func ConvertAll(cfg Config) (Summary, error) {
	var sum Summary

	if cfg.Extension == "" {
		return sum, ErrEmptyExtension
	}
	if err := cfg.Format.Validate(); err != nil {
		return sum, fmt.Errorf("%w", err)
	}

	outputDir := cfg.OutputDir()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return sum, fmt.Errorf("creating output directory: %w", err)
	}

	conv := Converter{Log: cfg.Log, Verify: cfg.Verify}
	written := make(map[string]string)

	for input, err := range scan.Files(cfg.Root, cfg.Extension, cfg.OutputDirName) {
		if err != nil {
			return sum, fmt.Errorf("scanning %s: %w", cfg.Root, err)
		}

		output := OutputPath(outputDir, input)
		prev, collides := written[output]
		if collides {
			conv.logf("Warning: %s already written from %s, overwriting with %s\n", output, prev, input)
		}

		res := conv.Convert(Job{Input: input, Output: output, Format: cfg.Format})
		sum.add(res)
		if res.OK() {
			if collides {
				sum.Overwritten++
			}
			written[output] = input
		}
	}

	return sum, nil
}
