package audio

import (
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	apperrors "audioboard/internal/app/errors"
)

// WriteTempWAV serializes mono 16-bit samples into a standard WAV
// container at a freshly allocated temporary path and returns that
// path. The caller owns deletion of the file.
func WriteTempWAV(samples []int16, sampleRate int) (string, error) {
	f, err := os.CreateTemp("", "audioboard-*.wav")
	if err != nil {
		return "", apperrors.Wrap(err, "waveform file write failed")
	}
	path := f.Name()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		_ = os.Remove(path)
		return "", apperrors.Wrap(err, "waveform file write failed")
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", apperrors.Wrap(err, "waveform file write failed")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", apperrors.Wrap(err, "waveform file write failed")
	}

	return path, nil
}
