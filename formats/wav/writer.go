// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/hydrowav/pcm"
)

// HeaderSize is the size of the canonical RIFF/WAVE header: RIFF (12) + fmt (24) + data header (8).
const HeaderSize = 44

// MaxPayload is the largest data chunk whose RIFF size still fits in 32 bits.
const MaxPayload = math.MaxUint32 - (HeaderSize - 8)

// Header builds the canonical 44-byte PCM header for dataSize bytes of samples in format f.
func Header(f pcm.Format, dataSize int64) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if dataSize < 0 || dataSize > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, dataSize)
	}

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(HeaderSize-8+dataSize))
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample()))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	return header, nil
}

// WritePCM writes a complete WAV file: the header for f followed by payload verbatim.
// payload must already be interleaved little-endian samples in format f; it is
// not inspected, so a trailing partial frame is written as-is.
func WritePCM(w io.Writer, f pcm.Format, payload []byte) error {
	header, err := Header(f, int64(len(payload)))
	if err != nil {
		return err
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(payload) == 0 {
		return nil
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
