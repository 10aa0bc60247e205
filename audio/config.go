package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/countdown/constants"
	"github.com/lixenwraith/countdown/countdown"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "COUNTDOWN_AUDIO_ENABLED"
	EnvMasterVolume = "COUNTDOWN_MASTER_VOLUME"
	EnvCueVolumes   = "COUNTDOWN_CUE_VOLUMES"
	EnvSampleRate   = "COUNTDOWN_SAMPLE_RATE"
	EnvCueFile      = "COUNTDOWN_CUE_FILE"
)

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	CueVolumes   map[countdown.Cue]float64
	SampleRate   int

	// AssetPath is a WAV file shared by all three cues; empty selects the built-in chime
	AssetPath string
}

// DefaultAudioConfig returns the stock cue levels: tick at 20%, start and end at full
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		CueVolumes: map[countdown.Cue]float64{
			countdown.CueStart: constants.StartCueVolume,
			countdown.CueTick:  constants.TickCueVolume,
			countdown.CueEnd:   constants.EndCueVolume,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// CueVolume returns the effective level of a cue after the master volume
func (c *AudioConfig) CueVolume(cue countdown.Cue) float64 {
	vol, ok := c.CueVolumes[cue]
	if !ok {
		vol = 1.0
	}
	return clampUnit(vol * c.MasterVolume)
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Cue volumes as JSON, e.g. {"tick":0.1,"end":0.8}
	if cueVols := os.Getenv(EnvCueVolumes); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if cue, ok := countdown.ParseCue(name); ok {
					cfg.CueVolumes[cue] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if path := os.Getenv(EnvCueFile); path != "" {
		cfg.AssetPath = path
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
