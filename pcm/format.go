// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"math"
	"time"
)

// Format describes interleaved linear PCM samples.
type Format struct {
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SampleWidth is the size of one sample of one channel, in bytes.
	SampleWidth int
	// SampleRate in frames per second (Hz).
	SampleRate int
}

// LoggerFormat is what the hydrophone data logger records: mono, 16-bit, 44.1 kHz.
var LoggerFormat = Format{Channels: 1, SampleWidth: 2, SampleRate: 44100}

// Validate reports the first field that cannot be encoded in a WAV header.
func (f Format) Validate() error {
	if f.Channels < 1 || f.Channels > 0xFFFF {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, f.Channels)
	}
	if f.SampleWidth < 1 || f.SampleWidth > 4 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleWidth, f.SampleWidth)
	}
	if f.SampleRate < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.SampleRate)
	}

	// fmt chunk stores block align in 16 bits, sample rate and byte rate in 32.
	if f.BlockAlign() > math.MaxUint16 {
		return fmt.Errorf("%w: block align %d", ErrFormatTooLarge, f.BlockAlign())
	}
	if int64(f.SampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %d", ErrFormatTooLarge, f.SampleRate)
	}
	if byteRate := int64(f.SampleRate) * int64(f.BlockAlign()); byteRate > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate %d", ErrFormatTooLarge, byteRate)
	}

	return nil
}

// BitsPerSample is the sample width in bits.
func (f Format) BitsPerSample() int { return f.SampleWidth * 8 }

// BlockAlign is the size of one frame (one sample for every channel) in bytes.
func (f Format) BlockAlign() int { return f.Channels * f.SampleWidth }

// ByteRate is the number of payload bytes per second.
func (f Format) ByteRate() int { return f.SampleRate * f.BlockAlign() }

// Frames returns how many whole frames fit in size bytes.
// A trailing partial frame is not counted.
func (f Format) Frames(size int64) int64 {
	align := int64(f.BlockAlign())
	if align <= 0 {
		return 0
	}

	return size / align
}

// Duration of size bytes of audio in this format.
func (f Format) Duration(size int64) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}

	return time.Duration(f.Frames(size)) * time.Second / time.Duration(f.SampleRate)
}

func (f Format) String() string {
	return fmt.Sprintf("%dch %d-bit %dHz", f.Channels, f.BitsPerSample(), f.SampleRate)
}
