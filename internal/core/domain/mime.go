package domain

import (
	"path/filepath"
	"strings"
)

// mimeByExtension maps upload file extensions to MIME types.
// Detection is by extension rather than content sniffing: the upload
// filename is the caller's declaration of what the file is.
var mimeByExtension = map[string]string{
	".txt":  "text/plain",
	".text": "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
	".flac": "audio/flac",
}

// DetectMIME returns the MIME type for an upload filename, or "" when the
// extension is not recognised.
func DetectMIME(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return mimeByExtension[ext]
}

// IsAudioMIME reports whether the MIME type is an audio container that
// must be routed through the speech-to-text service.
func IsAudioMIME(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/")
}

// KindForMIME maps a MIME type to the source kind recorded on the
// resulting document.
func KindForMIME(mimeType string) SourceKind {
	switch {
	case IsAudioMIME(mimeType):
		return KindTranscript
	case strings.Contains(mimeType, "presentationml"):
		return KindSlides
	default:
		return KindDocument
	}
}

// AudioFormat returns the audio container extension without the dot,
// used to hint the transcription decoder.
func AudioFormat(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}
