package audio

import (
	"time"

	"github.com/gordonklaus/portaudio"

	apperrors "audioboard/internal/app/errors"
)

// DefaultSampleRate is used when the caller does not select a rate.
const DefaultSampleRate = 44100

const framesPerBuffer = 1024

// Capturer records mono 16-bit audio from an input device.
type Capturer interface {
	// Record captures duration worth of samples at the given rate,
	// blocking the caller until capture completes.
	Record(duration time.Duration, sampleRate int) ([]int16, error)
}

// PortAudioCapturer captures from the system default input device.
// There is no cancellation mid-recording; the call blocks for the full
// requested duration.
type PortAudioCapturer struct{}

// NewPortAudioCapturer creates a capturer for the default input device.
func NewPortAudioCapturer() *PortAudioCapturer {
	return &PortAudioCapturer{}
}

// Record captures duration worth of mono int16 samples at sampleRate.
// On device or driver failure no buffer is returned; callers must not
// proceed to persist or upload.
func (PortAudioCapturer) Record(duration time.Duration, sampleRate int) ([]int16, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, apperrors.Wrap(err, "audio input device unavailable")
	}
	defer portaudio.Terminate()

	in := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), len(in), in)
	if err != nil {
		return nil, apperrors.Wrap(err, "audio input device unavailable")
	}
	defer func() {
		_ = stream.Stop()
		_ = stream.Close()
	}()

	if err := stream.Start(); err != nil {
		return nil, apperrors.Wrap(err, "audio capture failed")
	}

	total := int(duration.Seconds() * float64(sampleRate))
	samples := make([]int16, 0, total)
	for len(samples) < total {
		if err := stream.Read(); err != nil {
			return nil, apperrors.Wrap(err, "audio capture failed")
		}
		n := len(in)
		if remaining := total - len(samples); n > remaining {
			n = remaining
		}
		samples = append(samples, in[:n]...)
	}

	return samples, nil
}
