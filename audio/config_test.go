package audio

import (
	"testing"

	"github.com/lixenwraith/countdown/countdown"
)

func clearAudioEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAudioEnabled, EnvMasterVolume, EnvCueVolumes, EnvSampleRate, EnvCueFile} {
		t.Setenv(key, "")
	}
}

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.AssetPath != "" {
		t.Errorf("Expected built-in chime by default, got asset %q", cfg.AssetPath)
	}

	expectedVolumes := map[countdown.Cue]float64{
		countdown.CueStart: 1.0,
		countdown.CueTick:  0.2,
		countdown.CueEnd:   1.0,
	}
	for cue, expected := range expectedVolumes {
		if got := cfg.CueVolume(cue); got != expected {
			t.Errorf("Expected %s volume %f, got %f", cue, expected, got)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	clearAudioEnv(t)

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvAudioEnabled, tc.value)

			if cfg := LoadAudioConfig(); cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"100", 1.0},
		{"-50", 0.0},
		{"150", 1.0},
		{"loud", 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvMasterVolume, tc.value)

			if cfg := LoadAudioConfig(); cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

func TestLoadAudioConfigCueVolumes(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvCueVolumes, `{"tick":0.1,"END":0.5,"bell":0.9,"start":3}`)
	t.Setenv(EnvMasterVolume, "50")

	cfg := LoadAudioConfig()

	if got := cfg.CueVolume(countdown.CueTick); got != 0.05 {
		t.Errorf("Expected tick 0.1*0.5, got %f", got)
	}
	if got := cfg.CueVolume(countdown.CueEnd); got != 0.25 {
		t.Errorf("Expected end 0.5*0.5, got %f", got)
	}
	if got := cfg.CueVolume(countdown.CueStart); got != 0.5 {
		t.Errorf("Expected start clamped to 1.0 then halved, got %f", got)
	}
	if len(cfg.CueVolumes) != 3 {
		t.Errorf("Expected unknown cue names ignored, got %v", cfg.CueVolumes)
	}
}

func TestLoadAudioConfigInvalidJSONKeepsDefaults(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvCueVolumes, `{tick:`)

	cfg := LoadAudioConfig()
	if got := cfg.CueVolume(countdown.CueTick); got != 0.2 {
		t.Errorf("Expected default tick volume, got %f", got)
	}
}

func TestLoadAudioConfigSampleRateAndFile(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvSampleRate, "48000")
	t.Setenv(EnvCueFile, "/tmp/cue.wav")

	cfg := LoadAudioConfig()
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected SampleRate=48000, got %d", cfg.SampleRate)
	}
	if cfg.AssetPath != "/tmp/cue.wav" {
		t.Errorf("Expected asset path from env, got %q", cfg.AssetPath)
	}

	for _, value := range []string{"invalid", "-1000", "0"} {
		t.Setenv(EnvSampleRate, value)
		if got := LoadAudioConfig().SampleRate; got != 44100 {
			t.Errorf("Expected default rate for %q, got %d", value, got)
		}
	}
}
