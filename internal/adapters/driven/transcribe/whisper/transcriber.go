// Package whisper provides a speech-to-text adapter backed by the
// whisper.cpp CLI. Audio is first resampled to 16 kHz mono WAV with
// ffmpeg, which is the only input format whisper.cpp accepts.
package whisper

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/helektron-labs/lectern/internal/core/ports/driven"
	"github.com/helektron-labs/lectern/internal/logger"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

// Default configuration values.
const (
	DefaultFFmpegBinary  = "ffmpeg"
	DefaultWhisperBinary = "whisper-cli"
	DefaultTimeout       = 10 * time.Minute
)

// Config holds configuration for the whisper transcriber.
type Config struct {
	// FFmpegBinary is the ffmpeg executable (default: ffmpeg from PATH).
	FFmpegBinary string

	// WhisperBinary is the whisper.cpp executable (default: whisper-cli).
	WhisperBinary string

	// ModelPath is the path to the ggml model file (required).
	ModelPath string

	// Timeout bounds a whole transcription run (default: 10m).
	Timeout time.Duration
}

// Transcriber converts recorded audio to text via whisper.cpp.
type Transcriber struct {
	ffmpeg  string
	whisper string
	model   string
	timeout time.Duration
}

// New creates a whisper transcriber.
func New(cfg Config) (*Transcriber, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("whisper: model path is required")
	}
	if cfg.FFmpegBinary == "" {
		cfg.FFmpegBinary = DefaultFFmpegBinary
	}
	if cfg.WhisperBinary == "" {
		cfg.WhisperBinary = DefaultWhisperBinary
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Transcriber{
		ffmpeg:  cfg.FFmpegBinary,
		whisper: cfg.WhisperBinary,
		model:   cfg.ModelPath,
		timeout: cfg.Timeout,
	}, nil
}

// Transcribe resamples the audio and runs whisper.cpp on it. format is
// the container extension without the dot, used to name the input so
// ffmpeg picks the right demuxer.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("whisper: empty audio")
	}
	if format == "" {
		format = "wav"
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "lectern-whisper-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input."+format)
	if err := os.WriteFile(input, audio, 0o600); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}

	wav := filepath.Join(dir, "audio.wav")
	if err := t.resample(ctx, input, wav); err != nil {
		return "", err
	}

	return t.run(ctx, wav, filepath.Join(dir, "transcript"))
}

// resample converts the input to 16 kHz mono WAV.
func (t *Transcriber) resample(ctx context.Context, input, output string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.ffmpeg,
		"-y", "-i", input, "-ar", "16000", "-ac", "1", "-c:a", "pcm_s16le", output)
	cmd.Stderr = &stderr

	logger.Debug("Whisper: resampling %s", filepath.Base(input))

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%s: %w: %s", t.ffmpeg, err, tail(detail))
		}
		return fmt.Errorf("%s: %w", t.ffmpeg, err)
	}
	return nil
}

// run invokes whisper.cpp and reads its text output.
func (t *Transcriber) run(ctx context.Context, wav, outBase string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.whisper,
		"-m", t.model, "-f", wav, "-np", "-otxt", "-of", outBase)
	cmd.Stderr = &stderr

	logger.Debug("Whisper: transcribing with model %s", filepath.Base(t.model))

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%s: %w: %s", t.whisper, err, tail(detail))
		}
		return "", fmt.Errorf("%s: %w", t.whisper, err)
	}

	transcript, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	return strings.TrimSpace(string(transcript)), nil
}

// tail keeps the last few lines of tool output for error messages.
func tail(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return strings.Join(lines, " / ")
}
