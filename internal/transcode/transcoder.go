// Package transcode converts video containers to compact audio-only MP3
// encodings suitable for the ingestion size ceiling, using an ffmpeg binary
// resolved lazily on first use.
package transcode

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"upload-ai-api/internal/logger"
)

// DefaultBitrate is the audio bitrate used when none is configured.
// 20 kbps mono-suitable MP3 keeps an hour of speech well under 25 MiB.
const DefaultBitrate = "20k"

// Options tunes a single extraction run.
type Options struct {
	// Bitrate is the target audio bitrate (ffmpeg syntax, e.g. "20k").
	Bitrate string
	// OnProgress, when set, receives the conversion progress as a 0–1
	// fraction. Delivery is best-effort; the final call reports 1.
	OnProgress func(fraction float64)
}

// Transcoder extracts the audio track from a video file and encodes it as MP3.
// The ffmpeg and ffprobe binaries are located once, on first use, and the
// result is reused for the lifetime of the Transcoder. Construct explicitly
// and inject; there is no package-level instance.
type Transcoder struct {
	runner commandRunner
	log    *logger.Logger

	once        sync.Once
	ffmpegPath  string
	ffprobePath string
	initErr     error
}

// New creates a Transcoder. Binary lookup is deferred until the first run.
func New(log *logger.Logger) *Transcoder {
	return &Transcoder{runner: &execRunner{}, log: log.WithComponent("transcode")}
}

// newWithRunner is used by tests to inject a fake process runner. Binary
// lookup is skipped; the fake receives the bare command names.
func newWithRunner(runner commandRunner, log *logger.Logger) *Transcoder {
	t := &Transcoder{runner: runner, log: log.WithComponent("transcode")}
	t.once.Do(func() {
		t.ffmpegPath = "ffmpeg"
		t.ffprobePath = "ffprobe"
	})
	return t
}

func (t *Transcoder) init() error {
	t.once.Do(func() {
		ffmpeg, err := exec.LookPath("ffmpeg")
		if err != nil {
			t.initErr = fmt.Errorf("transcode: ffmpeg not found in PATH: %w", err)
			return
		}
		t.ffmpegPath = ffmpeg

		// ffprobe is optional: without it progress is only reported at the end.
		if ffprobe, err := exec.LookPath("ffprobe"); err == nil {
			t.ffprobePath = ffprobe
		}
	})
	return t.initErr
}

// ExtractAudio converts the video at inputPath into an MP3 at outputPath.
// The output contains only the first audio stream, encoded with libmp3lame
// at the configured bitrate. On failure the caller's observable state is
// unchanged apart from a possibly partial output file ffmpeg left behind.
func (t *Transcoder) ExtractAudio(ctx context.Context, inputPath, outputPath string, opts Options) error {
	if err := t.init(); err != nil {
		return err
	}

	bitrate := opts.Bitrate
	if bitrate == "" {
		bitrate = DefaultBitrate
	}

	totalUS := t.probeDurationMicros(ctx, inputPath)

	args := []string{
		"-i", inputPath,
		"-map", "0:a",
		"-b:a", bitrate,
		"-acodec", "libmp3lame",
		"-nostats",
		"-progress", "pipe:1",
		"-y",
		outputPath,
	}

	t.log.Info("converting video to audio", map[string]interface{}{
		"input": inputPath, "output": outputPath, "bitrate": bitrate,
	})

	err := t.runner.Run(ctx, t.ffmpegPath, args, func(line string) {
		reportProgress(line, totalUS, opts.OnProgress)
	})
	if err != nil {
		return err
	}

	if opts.OnProgress != nil {
		opts.OnProgress(1)
	}
	t.log.Info("conversion finished", map[string]interface{}{"output": outputPath})
	return nil
}

// probeDurationMicros returns the input duration in microseconds, or 0 when
// it cannot be determined.
func (t *Transcoder) probeDurationMicros(ctx context.Context, inputPath string) int64 {
	if t.ffprobePath == "" {
		return 0
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inputPath,
	}

	var seconds float64
	err := t.runner.Run(ctx, t.ffprobePath, args, func(line string) {
		if v, parseErr := strconv.ParseFloat(strings.TrimSpace(line), 64); parseErr == nil {
			seconds = v
		}
	})
	if err != nil || seconds <= 0 {
		return 0
	}
	return int64(seconds * 1e6)
}

// reportProgress parses one line of ffmpeg -progress output and forwards the
// completed fraction. Lines look like "out_time_us=1234567" or "progress=end".
func reportProgress(line string, totalUS int64, onProgress func(float64)) {
	if onProgress == nil {
		return
	}

	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return
	}

	switch key {
	case "out_time_us":
		if totalUS <= 0 {
			return
		}
		us, err := strconv.ParseInt(value, 10, 64)
		if err != nil || us < 0 {
			return
		}
		fraction := float64(us) / float64(totalUS)
		if fraction > 1 {
			fraction = 1
		}
		onProgress(fraction)
	case "progress":
		if value == "end" {
			onProgress(1)
		}
	}
}
