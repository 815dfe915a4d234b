// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): persistence, text extraction, embedding,
// generation, and transcription. The core services depend only on these
// interfaces, never on concrete adapters.
package driven
