// SPDX-License-Identifier: EPL-2.0

package hydrowav

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ik5/hydrowav/formats/wav"
	"github.com/ik5/hydrowav/internal/fsx"
	"github.com/ik5/hydrowav/pcm"
)

// Job is one raw capture to WAV conversion.
type Job struct {
	Input  string
	Output string
	Format pcm.Format
}

// Result is the outcome of a Job. Err is nil on success.
type Result struct {
	Job Job
	// Bytes is the payload length copied from the input.
	Bytes int64
	// Frames is the number of whole frames declared by the written header.
	Frames int64
	Err    error
}

// OK reports whether the job succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Converter runs Jobs and reports each outcome as one line on Log.
type Converter struct {
	// Log receives progress lines. nil discards them.
	Log io.Writer
	// Verify reads every written file back and checks its header and payload length.
	Verify bool
}

// Convert wraps the bytes of job.Input in a WAV header and writes job.Output.
// It never returns an error: failures are logged and carried in Result.Err so
// that a batch can continue past them.
func (c *Converter) Convert(job Job) Result {
	res := Result{Job: job}

	res.Bytes, res.Err = c.convert(job)
	if res.Err != nil {
		c.logf("Error converting %s: %v\n", job.Input, res.Err)
		return res
	}

	res.Frames = job.Format.Frames(res.Bytes)
	c.logf("Converted %s to %s\n", job.Input, job.Output)

	return res
}

func (c *Converter) convert(job Job) (int64, error) {
	if err := job.Format.Validate(); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	raw, err := os.ReadFile(job.Input)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	err = fsx.WriteFileAtomic(job.Output, 0o644, func(w io.Writer) error {
		return wav.WritePCM(w, job.Format, raw)
	})
	if err != nil {
		return 0, err
	}

	if c.Verify {
		if err := verify(job.Output, job.Format, raw); err != nil {
			return 0, err
		}
	}

	return int64(len(raw)), nil
}

// verify decodes path and compares it to what was meant to be written.
func verify(path string, f pcm.Format, raw []byte) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	defer file.Close()

	info, err := wav.Decoder{}.Decode(file)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}

	if got := info.PCMFormat(); got != f {
		return fmt.Errorf("%w: header declares %v, want %v", ErrVerifyMismatch, got, f)
	}
	if info.BlockAlign != f.BlockAlign() || info.ByteRate != f.ByteRate() {
		return fmt.Errorf("%w: header declares block align %d and byte rate %d, want %d and %d",
			ErrVerifyMismatch, info.BlockAlign, info.ByteRate, f.BlockAlign(), f.ByteRate())
	}
	if !bytes.Equal(info.Payload, raw) {
		return fmt.Errorf("%w: payload is %d bytes, want %d", ErrVerifyMismatch, len(info.Payload), len(raw))
	}

	return nil
}

func (c *Converter) logf(format string, args ...any) {
	if c.Log == nil {
		return
	}
	fmt.Fprintf(c.Log, format, args...)
}

// Convert converts one file, logging to standard output.
func Convert(input, output string, f pcm.Format) Result {
	c := Converter{Log: os.Stdout}
	return c.Convert(Job{Input: input, Output: output, Format: f})
}
