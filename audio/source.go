package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/countdown/constants"
)

// loadCue returns a fully decoded cue at rate: the WAV at path, or the
// built-in chime when path is empty. Each call decodes independently.
func loadCue(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	if path == "" {
		return chimeBuffer(rate), nil
	}
	return decodeWAV(path, rate)
}

func chimeBuffer(rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(CreateChime(rate))
	return buf
}

// decodeWAV reads a WAV file into memory, resampling to rate when needed
func decodeWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cue asset: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(constants.ResampleQuality, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrCueNotLoaded)
	}
	return buf, nil
}
