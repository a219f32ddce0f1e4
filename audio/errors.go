// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoSamples       = errors.New("no samples decoded")
	ErrNotFrameAligned = errors.New("sample count must be multiple of channels")
	ErrSeekOutOfRange  = errors.New("seek position out of range")
	ErrChannelMismatch = errors.New("unsupported channel layout conversion")
)
