package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/countdown/countdown"
)

// cueChannel is one independently loaded copy of a cue with its own play
// position. All fields are guarded by the owning Player's lock, which is
// also held while the mixer streams.
type cueChannel struct {
	cue        countdown.Cue
	buffer     *beep.Buffer
	stream     beep.StreamSeeker
	volume     float64
	active     bool
	generation int
}

func newCueChannel(cue countdown.Cue, buf *beep.Buffer, volume float64) *cueChannel {
	return &cueChannel{
		cue:    cue,
		buffer: buf,
		stream: buf.Streamer(0, buf.Len()),
		volume: volume,
	}
}

// trigger rewinds the cue to its first sample and queues it on the mixer
// unless it is still sounding, in which case the rewind restarts it in place
func (c *cueChannel) trigger(mixer *beep.Mixer) error {
	if c.buffer == nil || c.buffer.Len() == 0 {
		return ErrCueNotLoaded
	}
	if err := c.stream.Seek(0); err != nil {
		return err
	}
	if c.active {
		return nil
	}

	c.active = true
	gen := c.generation
	mixer.Add(beep.Seq(
		newVolume(c.stream, c.volume),
		beep.Callback(func() {
			if c.generation == gen {
				c.active = false
			}
		}),
	))
	return nil
}

// replace swaps in a freshly loaded buffer. A copy still playing from the
// old buffer finishes on its own without touching the new state.
func (c *cueChannel) replace(buf *beep.Buffer) {
	c.buffer = buf
	c.stream = buf.Streamer(0, buf.Len())
	c.active = false
	c.generation++
}
