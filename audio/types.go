package audio

import "errors"

// Sentinel errors
var (
	// ErrAudioInit reports that the output device or cue assets could not be set up
	ErrAudioInit = errors.New("audio initialization failed")

	// ErrPlayback reports a single cue that could not be started
	ErrPlayback = errors.New("cue playback failed")

	ErrPlayerClosed = errors.New("player closed")
	ErrCueNotLoaded = errors.New("cue not loaded")
)
