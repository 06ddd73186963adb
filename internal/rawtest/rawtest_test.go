// SPDX-License-Identifier: EPL-2.0

package rawtest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/hydrowav/pcm"
)

func TestNewPayload_Size(t *testing.T) {
	t.Parallel()

	formats := []pcm.Format{
		pcm.LoggerFormat,
		{Channels: 2, SampleWidth: 1, SampleRate: 8000},
		{Channels: 2, SampleWidth: 3, SampleRate: 48000},
		{Channels: 1, SampleWidth: 4, SampleRate: 96000},
	}

	for _, f := range formats {
		got := NewSinePayload(f, 100, 440)
		if len(got) != 100*f.BlockAlign() {
			t.Errorf("%v: len = %d, want %d", f, len(got), 100*f.BlockAlign())
		}
	}
}

func TestNewPayload_Values(t *testing.T) {
	t.Parallel()

	got := NewPayload(pcm.LoggerFormat, 3, func(sample int, _ int) float64 {
		return []float64{0, 1, -1}[sample]
	})
	want := []byte{0x00, 0x00, 0xff, 0x7f, 0x01, 0x80}

	if !bytes.Equal(got, want) {
		t.Errorf("NewPayload() = %v, want %v", got, want)
	}
}

func TestNewSilentPayload_EightBitMidpoint(t *testing.T) {
	t.Parallel()

	got := NewSilentPayload(pcm.Format{Channels: 1, SampleWidth: 1, SampleRate: 8000}, 4)
	if !bytes.Equal(got, []byte{128, 128, 128, 128}) {
		t.Errorf("NewSilentPayload() = %v, want all 128", got)
	}
}

func TestWriteTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	WriteTree(t, root, map[string][]byte{
		"a.RAW":          {1},
		"sub/deep/b.RAW": {2, 3},
	})

	got, err := os.ReadFile(filepath.Join(root, "sub", "deep", "b.RAW"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{2, 3}) {
		t.Errorf("content = %v", got)
	}
}
