// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads canonical linear PCM WAV files.
//
// # Writing
//
// WritePCM wraps bytes that are already interleaved PCM samples with the
// 44-byte RIFF/WAVE header describing them. The payload is copied verbatim:
//
//	raw, _ := os.ReadFile("RECORD.0.RAW")
//	out, _ := os.Create("RECORD.0.wav")
//	err := wav.WritePCM(out, pcm.LoggerFormat, raw)
//
// The data chunk size is the payload length; no pad byte is appended after
// an odd-sized payload.
//
// # Reading
//
// Decoder uses github.com/go-audio/wav to parse the header and returns the
// declared format together with the data chunk bytes:
//
//	f, _ := os.Open("RECORD.0.wav")
//	info, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // Handle error
//	}
//	fmt.Println(info.PCMFormat(), info.Frames())
//
// Chunks other than fmt and data are skipped.
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF header or fmt chunk
//   - ErrOnlyPCMSupported: the fmt chunk is not linear PCM
//   - ErrMissingDataChunk: no data chunk follows the fmt chunk
//   - ErrPayloadTooLarge: the payload does not fit a 32-bit RIFF size
package wav
