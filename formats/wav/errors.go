// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile       = errors.New("not a WAV file")
	ErrOnlyPCMSupported = errors.New("only linear PCM WAV supported")
	ErrMissingDataChunk = errors.New("WAV data chunk not found")
	ErrPayloadTooLarge  = errors.New("payload exceeds WAV 4 GiB limit")
)
