package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/helektron-labs/lectern/internal/core/ports/driven"
	"github.com/helektron-labs/lectern/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads generation prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
// Each template takes a single %s placeholder for the retrieved course material,
// and its output format matches what the study service parsers expect.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptSummary: `You are a study assistant. Write a clear, well-organised summary of the course material below.

Structure the summary with short markdown headings and bullet points where they help.
Cover the main concepts, how they relate, and any definitions or formulas that matter.
Write only the summary, nothing else.

Course material:
%s

Summary:`,

	driven.PromptKeyTerms: `You are a study assistant. Extract the most important terms from the course material below.

Output one term per line in exactly this format:
Term: short definition in one sentence

List 8 to 15 terms. Do not number the lines, add headings, or write anything else.

Course material:
%s

Key terms:`,

	driven.PromptQuestions: `You are a study assistant. Write practice questions for the course material below.

Group the questions under category headings. Each heading is a single line ending with a colon, such as:
Conceptual:
Application:

Under each heading, write numbered questions, one per line. Do NOT include answers.
Write 6 to 12 questions in total and nothing else.

Course material:
%s

Practice questions:`,

	driven.PromptResources: `You are a study assistant. Recommend external resources for studying the course material below.

Output one resource per line in exactly this format:
Title | type | where to find it | why it helps

The type is one of: video, article, book, course, practice.
Recommend 4 to 8 resources. Do not number the lines or write anything else.

Course material:
%s

Resources:`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.lectern/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".lectern", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Watch reloads prompts automatically when files in the prompt directory
// change, so edits take effect without restarting. It blocks until the
// context is cancelled; run it in a goroutine.
func (s *PromptStore) Watch(ctx context.Context) error {
	// Make sure the directory exists before watching it.
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return s.initErr
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create prompt watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.promptDir); err != nil {
		return fmt.Errorf("watch prompt directory: %w", err)
	}

	logger.Debug("Prompts: watching %s for changes", s.promptDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".txt" {
				continue
			}
			logger.Debug("Prompts: %s changed, reloading", filepath.Base(event.Name))
			s.Reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Prompts: watcher error: %v", err)
		}
	}
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Lectern Prompts

This directory contains customisable prompts used to generate study aids.

## Files

- ` + "`summary.txt`" + ` - Produces the structured study summary
- ` + "`key_terms.txt`" + ` - Extracts key terms with definitions
- ` + "`questions.txt`" + ` - Writes practice questions grouped by category
- ` + "`resources.txt`" + ` - Recommends external study resources

## Customisation

Edit any file to customise the generated output. Changes take effect on
the next command.

## Format Placeholders

Each prompt uses a single Go fmt placeholder:
- ` + "`%s`" + ` - The retrieved course material

Keep the placeholder in place, and keep the output format instructions:
the CLI parses key terms as "Term: definition" lines, questions as
numbered lines under "Category:" headings, and resources as
"Title | type | source | reason" lines.
`
	return os.WriteFile(path, []byte(content), 0600)
}
