// SPDX-License-Identifier: EPL-2.0

// Package pcm describes the layout of headerless linear PCM data.
//
// A raw capture file carries no metadata, so the channel count, sample width
// and sample rate must be supplied from outside. Format holds those three
// values and derives everything a container header needs from them:
//
//	f := pcm.LoggerFormat          // 1 channel, 2 bytes, 44100 Hz
//	f.BlockAlign()                 // 2 bytes per frame
//	f.ByteRate()                   // 88200 bytes per second
//	f.Frames(int64(len(payload)))  // whole frames in the payload
//
// Validate rejects values that cannot be written to a WAV header.
package pcm
