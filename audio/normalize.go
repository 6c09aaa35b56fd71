package audio

import (
	"context"
	"os/exec"
	"strconv"

	"github.com/layaalk/PVI-AU/internal/apperr"
)

// FilterChain removes rumble, normalizes loudness and limits peaks.
const FilterChain = "highpass=f=100,loudnorm=I=-23:LRA=7:tp=-2:print_format=json,alimiter=limit=-6dB"

// Normalizer converts recordings to loudness-normalized 16 kHz mono WAV
// files with ffmpeg.
type Normalizer struct {
	// FFmpeg is the ffmpeg binary, looked up in PATH when not absolute.
	FFmpeg string
	// Verify decodes every output file and checks its format.
	Verify bool
}

// NewNormalizer returns a normalizer running the given ffmpeg binary.
func NewNormalizer(ffmpeg string) *Normalizer {
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	return &Normalizer{FFmpeg: ffmpeg}
}

// Args returns the ffmpeg arguments that normalize src into dst.
func (n *Normalizer) Args(src, dst string) []string {
	return []string{
		"-y",
		"-loglevel", "warning",
		"-stats",
		"-i", src,
		"-filter_complex", FilterChain,
		"-ac", strconv.Itoa(TargetChannels),
		"-ar", strconv.Itoa(TargetSampleRate),
		dst,
	}
}

// Normalize writes the normalized version of src to dst. A failing ffmpeg
// run is an external tool error carrying the tool's output.
func (n *Normalizer) Normalize(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, n.FFmpeg, n.Args(src, dst)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return apperr.ErrExternalTool("ffmpeg", err, string(output)).WithDetail("src", src)
	}
	if n.Verify {
		return Verify(dst)
	}
	return nil
}
