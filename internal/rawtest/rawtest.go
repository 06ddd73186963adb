// SPDX-License-Identifier: EPL-2.0

// Package rawtest builds raw capture payloads and directory trees for tests.
package rawtest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/hydrowav/pcm"
)

// NewPayload generates frames frames of little-endian PCM in format f.
// waveform returns a value in [-1, 1] for each sample index and channel.
func NewPayload(f pcm.Format, frames int, waveform func(sample int, channel int) float64) []byte {
	out := make([]byte, frames*f.BlockAlign())
	maxVal := float64(int64(1)<<(f.BitsPerSample()-1) - 1)

	for frame := range frames {
		for ch := range f.Channels {
			x := waveform(frame, ch)
			if x > 1 {
				x = 1
			} else if x < -1 {
				x = -1
			}
			v := int64(x * maxVal)

			off := (frame*f.Channels + ch) * f.SampleWidth
			putSample(out[off:off+f.SampleWidth], v, f.SampleWidth)
		}
	}

	return out
}

func putSample(dst []byte, v int64, width int) {
	switch width {
	case 1:
		// 8-bit WAV samples are unsigned.
		dst[0] = byte(v + 128)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case 3:
		u := uint32(int32(v))
		dst[0], dst[1], dst[2] = byte(u), byte(u>>8), byte(u>>16)
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(int32(v)))
	}
}

// NewSinePayload generates a sine tone at frequency Hz.
func NewSinePayload(f pcm.Format, frames int, frequency float64) []byte {
	return NewPayload(f, frames, func(sample int, channel int) float64 {
		t := float64(sample) / float64(f.SampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewSilentPayload generates silence.
func NewSilentPayload(f pcm.Format, frames int) []byte {
	return NewPayload(f, frames, func(int, int) float64 { return 0 })
}

// WriteTree creates files under root. Keys are slash-separated paths relative
// to root; parent directories are created as needed.
func WriteTree(t testing.TB, root string, files map[string][]byte) {
	t.Helper()

	for rel, data := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
