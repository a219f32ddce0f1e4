// SPDX-License-Identifier: EPL-2.0

package audio

// Mixer sums any number of tracks into output blocks. It is the exclusive
// owner of its tracks: adding happens before playback starts, and exactly
// one goroutine (the stream callback) calls Fill. Under that contract no
// locking is needed anywhere on the playback path.
type Mixer struct {
	tracks []*Track
}

func NewMixer(tracks ...*Track) *Mixer {
	return &Mixer{tracks: tracks}
}

// Add appends tracks to the mix. Tracks are always visited in the order
// they were added. Add must not be called once Fill is being driven by a
// stream.
func (m *Mixer) Add(tracks ...*Track) {
	m.tracks = append(m.tracks, tracks...)
}

// Len returns the number of owned tracks.
func (m *Mixer) Len() int { return len(m.tracks) }

// Fill writes one mixed sample into every position of dst: the plain sum
// of Next across all tracks, advancing each track's playhead exactly once
// per position. With no tracks dst is zeroed.
//
// The sum is intentionally not averaged or clipped; several full-amplitude
// tracks can produce values outside [-1, 1] and it is the caller's job to
// keep levels sane. Fill never allocates or blocks.
func (m *Mixer) Fill(dst []float32) {
	for i := range dst {
		var sum float32
		for _, t := range m.tracks {
			sum += t.Next()
		}
		dst[i] = sum
	}
}
