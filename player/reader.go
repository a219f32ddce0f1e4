// SPDX-License-Identifier: EPL-2.0

package player

import (
	"github.com/ik5/playmix/audio"
	"github.com/ik5/playmix/utils"
)

// blockReader adapts a Mixer to the byte stream the audio driver consumes.
// Each Read is one callback period: the driver picks the block length, the
// mixer fills it, and the floats are packed as 16-bit little-endian PCM.
//
// Read never returns io.EOF. A mix whose tracks have all ended keeps
// producing silence; stopping is the owner's job (Close, or just stop
// calling Read).
type blockReader struct {
	mixer *audio.Mixer
	block []float32
}

func newBlockReader(mixer *audio.Mixer, blockSize int) *blockReader {
	if blockSize <= 0 {
		blockSize = 4096
	}

	return &blockReader{
		mixer: mixer,
		block: make([]float32, blockSize),
	}
}

func (r *blockReader) Read(p []byte) (int, error) {
	samples := len(p) / 2
	if samples == 0 {
		return 0, nil
	}

	// Grown once if the driver asks for more than the preallocated block;
	// steady state stays allocation-free.
	if cap(r.block) < samples {
		r.block = make([]float32, samples)
	}
	block := r.block[:samples]

	r.mixer.Fill(block)

	for i, s := range block {
		v := uint16(utils.Float32ToInt16(s))
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}

	return samples * 2, nil
}
