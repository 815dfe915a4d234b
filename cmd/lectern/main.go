// Command lectern is a CLI that turns uploaded course material into
// study aids: summaries, key terms, practice questions, and resource
// suggestions grounded in the user's own documents.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/helektron-labs/lectern/internal/adapters/driven/config/file"
	embeddingollama "github.com/helektron-labs/lectern/internal/adapters/driven/embedding/ollama"
	embeddingopenai "github.com/helektron-labs/lectern/internal/adapters/driven/embedding/openai"
	llmollama "github.com/helektron-labs/lectern/internal/adapters/driven/llm/ollama"
	llmopenai "github.com/helektron-labs/lectern/internal/adapters/driven/llm/openai"
	"github.com/helektron-labs/lectern/internal/adapters/driven/storage/sqlite"
	"github.com/helektron-labs/lectern/internal/adapters/driven/transcribe/whisper"
	"github.com/helektron-labs/lectern/internal/adapters/driving/cli"
	"github.com/helektron-labs/lectern/internal/chunker"
	"github.com/helektron-labs/lectern/internal/core/ports/driven"
	"github.com/helektron-labs/lectern/internal/core/services"
	"github.com/helektron-labs/lectern/internal/extractors"
	"github.com/helektron-labs/lectern/internal/extractors/docx"
	"github.com/helektron-labs/lectern/internal/extractors/pdf"
	"github.com/helektron-labs/lectern/internal/extractors/plaintext"
	"github.com/helektron-labs/lectern/internal/extractors/pptx"
	"github.com/helektron-labs/lectern/internal/index"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore(os.Getenv("LECTERN_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := sqlite.NewStore(cfg.GetString("data.dir"))
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}

	generator, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	splitter, err := buildSplitter(cfg)
	if err != nil {
		return fmt.Errorf("configure chunker: %w", err)
	}

	prompts, err := file.NewPromptStore(cfg.GetString("prompts.dir"))
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}

	// Reload prompts when the user edits them while a command runs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go prompts.Watch(ctx) //nolint:errcheck // watcher exit is not fatal

	sessions := services.NewSessionService(
		store,
		index.NewManager(embedder, splitter),
		buildExtractors(cfg),
		buildTranscriber(cfg),
	)
	if maxBytes := cfg.GetInt("upload.max_bytes"); maxBytes > 0 {
		sessions.SetMaxUploadBytes(maxBytes)
	}

	contextService := services.NewContextService(sessions)
	if k := cfg.GetInt("retrieval.k"); k > 0 {
		contextService.SetRetrievalK(k)
	}

	study := services.NewStudyService(contextService, generator, prompts)
	if maxTokens := cfg.GetInt("llm.max_tokens"); maxTokens > 0 {
		study.SetGenerateOptions(driven.GenerateOptions{
			MaxTokens:   maxTokens,
			Temperature: cfg.GetFloat("llm.temperature"),
		})
	}

	cli.SetServices(sessions, study)
	cli.SetVersion(version)
	return cli.Execute()
}

// buildEmbedder constructs the configured embedding provider.
// Defaults to a local Ollama server so the CLI works without API keys.
func buildEmbedder(cfg *file.ConfigStore) (driven.EmbeddingService, error) {
	switch provider := cfg.GetString("embedding.provider"); provider {
	case "openai":
		apiKey := cfg.GetString("embedding.api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		service, err := embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
			APIKey:     apiKey,
			BaseURL:    cfg.GetString("embedding.base_url"),
			Model:      cfg.GetString("embedding.model"),
			Dimensions: cfg.GetInt("embedding.dimensions"),
		})
		if err != nil {
			return nil, fmt.Errorf("configure openai embeddings: %w", err)
		}
		return service, nil
	case "", "ollama":
		return embeddingollama.NewEmbeddingService(embeddingollama.Config{
			BaseURL:    cfg.GetString("embedding.base_url"),
			Model:      cfg.GetString("embedding.model"),
			Dimensions: cfg.GetInt("embedding.dimensions"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", provider)
	}
}

// buildGenerator constructs the configured LLM provider.
func buildGenerator(cfg *file.ConfigStore) (driven.GenerationService, error) {
	switch provider := cfg.GetString("llm.provider"); provider {
	case "openai":
		apiKey := cfg.GetString("llm.api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		service, err := llmopenai.NewGenerationService(llmopenai.Config{
			APIKey:  apiKey,
			BaseURL: cfg.GetString("llm.base_url"),
			Model:   cfg.GetString("llm.model"),
		})
		if err != nil {
			return nil, fmt.Errorf("configure openai llm: %w", err)
		}
		return service, nil
	case "", "ollama":
		return llmollama.NewGenerationService(llmollama.Config{
			BaseURL: cfg.GetString("llm.base_url"),
			Model:   cfg.GetString("llm.model"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}

// buildSplitter applies chunker overrides from config.
func buildSplitter(cfg *file.ConfigStore) (*chunker.Splitter, error) {
	var opts []chunker.Option
	if size := cfg.GetInt("chunker.chunk_size"); size > 0 {
		opts = append(opts, chunker.WithChunkSize(size))
	}
	if overlap := cfg.GetInt("chunker.overlap"); overlap > 0 {
		opts = append(opts, chunker.WithOverlap(overlap))
	}
	return chunker.New(opts...)
}

// buildExtractors assembles the extractor registry, honouring a custom
// pdftotext binary path from config.
func buildExtractors(cfg *file.ConfigStore) *extractors.Registry {
	pdfExtractor := pdf.New()
	if binary := cfg.GetString("pdf.binary"); binary != "" {
		pdfExtractor = pdf.NewWithBinary(binary)
	}
	return extractors.NewRegistry(
		plaintext.New(),
		docx.New(),
		pptx.New(),
		pdfExtractor,
	)
}

// buildTranscriber constructs the whisper.cpp transcriber when a model is
// configured. Returns nil otherwise; audio uploads are then rejected with
// a clear error by the session service.
func buildTranscriber(cfg *file.ConfigStore) driven.Transcriber {
	modelPath := cfg.GetString("whisper.model_path")
	if modelPath == "" {
		return nil
	}

	transcriber, err := whisper.New(whisper.Config{
		FFmpegBinary:  cfg.GetString("whisper.ffmpeg_binary"),
		WhisperBinary: cfg.GetString("whisper.binary"),
		ModelPath:     modelPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: transcription disabled: %v\n", err)
		return nil
	}
	return transcriber
}
