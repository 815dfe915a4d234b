package driven

import "context"

// Transcriber converts recorded audio into text.
// Backed by a speech-to-text engine such as whisper.cpp.
type Transcriber interface {
	// Transcribe returns the transcript of the audio bytes.
	// format is the container extension without the dot (e.g. "m4a",
	// "webm"), used to hint the decoder.
	Transcribe(ctx context.Context, audio []byte, format string) (string, error)
}
