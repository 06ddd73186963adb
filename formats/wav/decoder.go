// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/hydrowav/pcm"
)

// Info is what a WAV file declares about itself, plus its sample payload.
type Info struct {
	Format      *goaudio.Format
	SampleWidth int
	// ByteRate as declared by the fmt chunk.
	ByteRate int
	// BlockAlign as declared by the fmt chunk. Only known when the fmt chunk
	// sits at its canonical offset; 0 otherwise.
	BlockAlign int
	Payload    []byte
}

// PCMFormat converts the declared header fields into a pcm.Format.
func (i *Info) PCMFormat() pcm.Format {
	if i == nil || i.Format == nil {
		return pcm.Format{}
	}

	return pcm.Format{
		Channels:    i.Format.NumChannels,
		SampleWidth: i.SampleWidth,
		SampleRate:  i.Format.SampleRate,
	}
}

// Frames is the number of whole frames in the payload.
func (i *Info) Frames() int64 {
	return i.PCMFormat().Frames(int64(len(i.Payload)))
}

// Decoder reads linear PCM WAV files through github.com/go-audio/wav.
type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (*Info, error) {
	blockAlign, err := peekBlockAlign(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(r)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDataChunk, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrMissingDataChunk
	}

	payload, err := io.ReadAll(dec.PCMChunk.R)
	if err != nil {
		return nil, fmt.Errorf("reading data chunk: %w", err)
	}

	return &Info{
		Format:      dec.Format(),
		SampleWidth: int(dec.BitDepth) / 8,
		ByteRate:    int(dec.AvgBytesPerSec),
		BlockAlign:  blockAlign,
		Payload:     payload,
	}, nil
}

// peekBlockAlign reads the block align of a canonical header and rewinds r.
// go-audio/wav does not expose it.
func peekBlockAlign(r io.ReadSeeker) (int, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	header := make([]byte, HeaderSize)
	n, _ := io.ReadFull(r, header)

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return 0, err
	}

	if n < HeaderSize || !bytes.Equal(header[12:16], []byte("fmt ")) {
		return 0, nil
	}

	return int(binary.LittleEndian.Uint16(header[32:34])), nil
}
