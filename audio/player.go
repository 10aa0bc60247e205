package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/countdown/constants"
	"github.com/lixenwraith/countdown/countdown"
)

// speakerLock adapts the global speaker lock to sync.Locker
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player plays the start, tick and end cues. Each cue owns a separately
// decoded buffer so overlapping cues keep independent positions.
type Player struct {
	lock     sync.Locker
	mixer    *beep.Mixer
	config   *AudioConfig
	rate     beep.SampleRate
	channels [3]*cueChannel
	closed   bool

	closeOutput func()
}

// NewPlayer loads the cues and opens the speaker.
// Failures wrap ErrAudioInit; callers may continue without sound.
func NewPlayer(cfg *AudioConfig) (*Player, error) {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}

	p := newPlayer(cfg, speakerLock{})
	if err := p.load(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAudioInit, err)
	}

	if err := speaker.Init(p.rate, p.rate.N(constants.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("%w: speaker: %w", ErrAudioInit, err)
	}
	speaker.Play(p.mixer)
	p.closeOutput = speaker.Close

	log.Printf("audio: initialized at %d Hz, asset %q", cfg.SampleRate, cfg.AssetPath)
	return p, nil
}

// newPlayer builds an unloaded player around lock; the mixer is not attached to any output
func newPlayer(cfg *AudioConfig, lock sync.Locker) *Player {
	return &Player{
		lock:   lock,
		mixer:  &beep.Mixer{},
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
	}
}

// loadBuffers decodes one buffer per cue
func (p *Player) loadBuffers() ([3]*beep.Buffer, error) {
	var bufs [3]*beep.Buffer
	for _, cue := range countdown.AllCues {
		buf, err := loadCue(p.config.AssetPath, p.rate)
		if err != nil {
			return bufs, fmt.Errorf("%s cue: %w", cue, err)
		}
		bufs[cue] = buf
	}
	return bufs, nil
}

func (p *Player) load() error {
	bufs, err := p.loadBuffers()
	if err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()
	for _, cue := range countdown.AllCues {
		p.channels[cue] = newCueChannel(cue, bufs[cue], p.config.CueVolume(cue))
	}
	return nil
}

// Play rewinds cue to its start and plays it. Playback completion is not tracked.
func (p *Player) Play(cue countdown.Cue) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.closed {
		return fmt.Errorf("%w: %s: %w", ErrPlayback, cue, ErrPlayerClosed)
	}
	if cue < 0 || int(cue) >= len(p.channels) || p.channels[cue] == nil {
		return fmt.Errorf("%w: %s: %w", ErrPlayback, cue, ErrCueNotLoaded)
	}
	if err := p.channels[cue].trigger(p.mixer); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPlayback, cue, err)
	}
	return nil
}

// Reload decodes the asset again and swaps the buffers in. On error the
// current cues remain.
func (p *Player) Reload() error {
	bufs, err := p.loadBuffers()
	if err != nil {
		return fmt.Errorf("reload cues: %w", err)
	}

	p.lock.Lock()
	defer p.lock.Unlock()
	if p.closed {
		return ErrPlayerClosed
	}
	for _, cue := range countdown.AllCues {
		p.channels[cue].replace(bufs[cue])
	}
	return nil
}

// Active reports whether cue is currently sounding
func (p *Player) Active(cue countdown.Cue) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if cue < 0 || int(cue) >= len(p.channels) || p.channels[cue] == nil {
		return false
	}
	return p.channels[cue].active
}

// AssetPath returns the configured cue file, empty for the built-in chime
func (p *Player) AssetPath() string {
	return p.config.AssetPath
}

// Close silences the mixer and releases the output device
func (p *Player) Close() {
	p.lock.Lock()
	if p.closed {
		p.lock.Unlock()
		return
	}
	p.closed = true
	p.mixer.Clear()
	p.lock.Unlock()

	// beep only allows one speaker per process; closing frees it for re-init
	if p.closeOutput != nil {
		p.closeOutput()
	}
}
