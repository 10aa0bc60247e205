package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/countdown/constants"
)

// drain streams s to exhaustion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples and ok, got %d %v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d expected mono in both channels", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave values
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if val := samples[i][0]; val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorDrains verifies the oscillator stops after its duration
func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveTriangle, rate)

	out := drain(osc)
	if len(out) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(out))
	}
	if p := peak(out); p > 1.0 {
		t.Errorf("Expected triangle within [-1, 1], got peak %f", p)
	}
}

// TestEnvelopeShaping verifies attack starts silent and release ends near silent
func TestEnvelopeShaping(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 200 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, d, 20*time.Millisecond, 50*time.Millisecond, rate)

	out := drain(env)
	if len(out) != rate.N(d) {
		t.Fatalf("Expected %d samples, got %d", rate.N(d), len(out))
	}
	if out[0][0] != 0 {
		t.Errorf("Expected first sample silent, got %f", out[0][0])
	}
	mid := out[len(out)/2][0]
	if mid != 1.0 {
		t.Errorf("Expected full level during sustain, got %f", mid)
	}
	if last := out[len(out)-1][0]; last > 0.05 {
		t.Errorf("Expected release to approach zero, got %f", last)
	}
}

func TestNewVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 10 * time.Millisecond

	silent := drain(newVolume(NewOscillator(0, d, WaveSquare, rate), 0))
	if p := peak(silent); p != 0 {
		t.Errorf("Expected zero volume to be silent, got peak %f", p)
	}

	quiet := drain(newVolume(NewOscillator(0, d, WaveSquare, rate), 0.2))
	if p := peak(quiet); math.Abs(p-0.2) > 1e-9 {
		t.Errorf("Expected 0.2 volume peak, got %f", p)
	}
}

func TestCreateChimeLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	out := drain(CreateChime(rate))

	expected := rate.N(constants.ChimeNote1Duration) + rate.N(constants.ChimeNote2Duration)
	if len(out) != expected {
		t.Errorf("Expected chime of %d samples, got %d", expected, len(out))
	}
	if p := peak(out); p == 0 || p > 1.0 {
		t.Errorf("Expected audible unity-gain chime, got peak %f", p)
	}
}
