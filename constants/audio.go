package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length passed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond

	// ResampleQuality is the beep.Resample quality used when an asset rate differs from output
	ResampleQuality = 4

	// AssetReloadDelay lets a writer finish before a changed asset is decoded
	AssetReloadDelay = 50 * time.Millisecond
)

// Cue Volumes (0.0 - 1.0)
const (
	StartCueVolume = 1.0
	TickCueVolume  = 0.2
	EndCueVolume   = 1.0
)

// Synthesized Chime Timing, used when no asset file is configured
const (
	ChimeNote1Duration = 90 * time.Millisecond
	ChimeNote2Duration = 220 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 180 * time.Millisecond
)
