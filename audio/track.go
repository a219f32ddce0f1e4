// SPDX-License-Identifier: EPL-2.0

package audio

// Track binds a Clip to a playhead. The playback policy is fixed at
// construction: a plain track goes silent once the clip ends, a looping
// track wraps around and plays indefinitely.
//
// A Track is owned by exactly one Mixer (or one caller); nothing else may
// touch the playhead while playback is running.
type Track struct {
	clip *Clip
	pos  int
	loop bool
}

// NewTrack creates a one-shot track: after the last sample every further
// Next call yields silence.
func NewTrack(clip *Clip) *Track {
	return &Track{clip: clip}
}

// NewLoopingTrack creates a track that wraps back to the first sample after
// the last one, repeating forever. A single-sample clip keeps yielding that
// one sample.
func NewLoopingTrack(clip *Clip) *Track {
	return &Track{clip: clip, loop: true}
}

// Next returns the sample under the playhead and advances it by one.
// It never allocates, blocks or fails, so it is safe to call from the
// stream callback.
func (t *Track) Next() float32 {
	if t.pos == t.clip.Len() {
		// one-shot track exhausted; the playhead stays put
		return 0
	}

	s := t.clip.samples[t.pos]
	t.pos++
	if t.loop && t.pos == t.clip.Len() {
		t.pos = 0
	}

	return s
}

// Seek moves the playhead to pos. Valid positions are [0, Len()) for a
// looping track and [0, Len()] for a one-shot track (Len() meaning
// "finished"). Out-of-range positions are rejected with ErrSeekOutOfRange
// so the hot path never has to bounds-check.
func (t *Track) Seek(pos int) error {
	limit := t.clip.Len()
	if t.loop {
		limit--
	}

	if pos < 0 || pos > limit {
		return ErrSeekOutOfRange
	}

	t.pos = pos
	return nil
}

// Position returns the current playhead position in samples.
func (t *Track) Position() int { return t.pos }

// Looping reports whether the track wraps around at the end of its clip.
func (t *Track) Looping() bool { return t.loop }

// Clip returns the underlying sample data.
func (t *Track) Clip() *Clip { return t.clip }

// Done reports whether a one-shot track has played past its last sample.
// A looping track is never done.
func (t *Track) Done() bool {
	return !t.loop && t.pos == t.clip.Len()
}
