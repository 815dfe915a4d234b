package whisper

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBinary(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

// fakeFFmpeg creates its output file (the last argument).
func fakeFFmpeg(t *testing.T) string {
	return fakeBinary(t, "ffmpeg", `for last; do :; done; : > "$last"`)
}

// fakeWhisper writes a transcript next to the -of argument.
func fakeWhisper(t *testing.T, transcript string) string {
	return fakeBinary(t, "whisper-cli", `out=""; prev=""
for a in "$@"; do
  if [ "$prev" = "-of" ]; then out="$a"; fi
  prev="$a"
done
printf '%s\n' "`+transcript+`" > "$out.txt"`)
}

func newTestTranscriber(t *testing.T, ffmpeg, whisper string) *Transcriber {
	t.Helper()
	tr, err := New(Config{
		FFmpegBinary:  ffmpeg,
		WhisperBinary: whisper,
		ModelPath:     "/models/ggml-base.bin",
	})
	require.NoError(t, err)
	return tr
}

func TestTranscriber_Transcribe(t *testing.T) {
	tr := newTestTranscriber(t, fakeFFmpeg(t), fakeWhisper(t, "hello from the lecture"))

	text, err := tr.Transcribe(context.Background(), []byte{0x01, 0x02}, "m4a")
	require.NoError(t, err)
	assert.Equal(t, "hello from the lecture", text)
}

func TestTranscriber_Transcribe_EmptyAudio(t *testing.T) {
	tr := newTestTranscriber(t, fakeFFmpeg(t), fakeWhisper(t, "x"))

	_, err := tr.Transcribe(context.Background(), nil, "m4a")
	assert.Error(t, err)
}

func TestTranscriber_Transcribe_FFmpegFailure(t *testing.T) {
	ffmpeg := fakeBinary(t, "ffmpeg", `echo "unknown format" >&2; exit 1`)
	tr := newTestTranscriber(t, ffmpeg, fakeWhisper(t, "x"))

	_, err := tr.Transcribe(context.Background(), []byte{0x01}, "xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestTranscriber_Transcribe_WhisperFailure(t *testing.T) {
	whisper := fakeBinary(t, "whisper-cli", `echo "model load failed" >&2; exit 1`)
	tr := newTestTranscriber(t, fakeFFmpeg(t), whisper)

	_, err := tr.Transcribe(context.Background(), []byte{0x01}, "wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model load failed")
}

func TestNew_RequiresModelPath(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
