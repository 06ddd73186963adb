// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrInvalidChannels    = errors.New("channel count must be at least 1")
	ErrInvalidSampleWidth = errors.New("sample width must be 1, 2, 3 or 4 bytes")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrFormatTooLarge     = errors.New("format does not fit WAV header fields")
)
