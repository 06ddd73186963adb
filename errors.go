// SPDX-License-Identifier: EPL-2.0

package hydrowav

import "errors"

var (
	ErrVerifyMismatch = errors.New("written WAV does not match input")
	ErrEmptyExtension = errors.New("extension must not be empty")
)
