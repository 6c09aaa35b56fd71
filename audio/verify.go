// Package audio normalizes recordings for forced alignment and checks the
// result.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/layaalk/PVI-AU/internal/apperr"
)

// Target format of normalized audio.
const (
	TargetSampleRate = 16000
	TargetChannels   = 1
)

// Format describes a decoded WAV stream.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int
}

// Duration returns the playing time of the stream.
func (f Format) Duration() time.Duration {
	if f.SampleRate == 0 {
		return 0
	}
	return time.Duration(f.Frames) * time.Second / time.Duration(f.SampleRate)
}

// Inspect reads the headers of a WAV stream and reports its format. The
// frame count comes from the size of the data chunk; samples are not
// decoded.
func Inspect(r io.ReadSeeker) (Format, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return Format{}, errors.New("not a valid WAV file")
	}
	if err := d.FwdToPCM(); err != nil {
		return Format{}, fmt.Errorf("find PCM data: %w", err)
	}
	if err := d.Err(); err != nil {
		return Format{}, fmt.Errorf("read headers: %w", err)
	}
	return formatOf(d.Format(), int(d.BitDepth), d.PCMLen()), nil
}

func formatOf(af *goaudio.Format, bitDepth int, pcmBytes int64) Format {
	f := Format{BitDepth: bitDepth}
	if af != nil {
		f.SampleRate = af.SampleRate
		f.Channels = af.NumChannels
	}
	if frameSize := f.Channels * bitDepth / 8; frameSize > 0 {
		f.Frames = int(pcmBytes / int64(frameSize))
	}
	return f
}

// InspectFile reports the format of the WAV file at path.
func InspectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Format{}, err
	}
	defer f.Close()
	format, err := Inspect(f)
	if err != nil {
		return Format{}, fmt.Errorf("%s: %w", path, err)
	}
	return format, nil
}

// Verify checks that the WAV file at path is mono at 16 kHz.
func Verify(path string) error {
	f, err := InspectFile(path)
	if err != nil {
		return apperr.ErrInvalidInput("unreadable audio", err).WithDetail("path", path)
	}
	if f.SampleRate != TargetSampleRate || f.Channels != TargetChannels {
		return apperr.ErrInvalidInput(
			fmt.Sprintf("audio is %d Hz with %d channels, want %d Hz mono", f.SampleRate, f.Channels, TargetSampleRate),
			nil,
		).WithDetail("path", path)
	}
	return nil
}
