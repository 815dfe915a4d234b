package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// fakeSessionManager is a canned driving.SessionManager for command tests.
type fakeSessionManager struct {
	sessions map[string]*domain.Session
	err      error
}

func newFakeSessionManager() *fakeSessionManager {
	return &fakeSessionManager{
		sessions: map[string]*domain.Session{
			"sess-1": {
				ID:   "sess-1",
				Name: "Thermodynamics",
				Documents: []domain.DocumentRecord{
					{
						ID:       "doc-1",
						Filename: "laws.txt",
						Kind:     domain.KindDocument,
						Text:     "energy is conserved",
						Ordinal:  0,
						AddedAt:  time.Now(),
					},
				},
				CreatedAt: time.Now(),
			},
		},
	}
}

func (f *fakeSessionManager) Create(_ context.Context, name string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	session := &domain.Session{ID: "new-session", Name: name, CreatedAt: time.Now()}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeSessionManager) Get(_ context.Context, id string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	session, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionManager) List(_ context.Context) ([]domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Session
	for _, s := range f.sessions {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSessionManager) Rename(_ context.Context, id, name string) error {
	if f.err != nil {
		return f.err
	}
	session, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	session.Name = name
	return nil
}

func (f *fakeSessionManager) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionManager) AddDocument(
	_ context.Context, sessionID string, upload *domain.Upload,
) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	session.Documents = append(session.Documents, domain.DocumentRecord{
		ID:       "doc-new",
		Filename: upload.Filename,
		Kind:     domain.KindForMIME(upload.MIMEType),
		Text:     string(upload.Content),
		Ordinal:  len(session.Documents),
		AddedAt:  time.Now(),
	})
	return session, nil
}

func (f *fakeSessionManager) RemoveDocument(
	_ context.Context, sessionID string, ordinal int,
) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !session.RemoveDocument(ordinal) {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionManager) Stats(_ context.Context, sessionID string) (domain.IndexStats, error) {
	if f.err != nil {
		return domain.IndexStats{}, f.err
	}
	if _, ok := f.sessions[sessionID]; !ok {
		return domain.IndexStats{}, domain.ErrNotFound
	}
	return domain.IndexStats{Entries: 3, Dimensions: 8, BuiltAt: time.Now()}, nil
}

// fakeStudyGenerator returns canned study aids.
type fakeStudyGenerator struct {
	err error
}

func (f *fakeStudyGenerator) Summarise(_ context.Context, _ string) (*domain.SummaryResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SummaryResult{Text: "A summary of thermodynamics."}, nil
}

func (f *fakeStudyGenerator) KeyTerms(_ context.Context, _ string) (*domain.KeyTermsResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.KeyTermsResult{
		Terms: []domain.KeyTerm{
			{Term: "Entropy", Definition: "A measure of disorder."},
		},
		Warnings: []string{"skipped 1 malformed line"},
	}, nil
}

func (f *fakeStudyGenerator) Questions(_ context.Context, _ string) (*domain.QuestionsResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.QuestionsResult{
		Questions: []domain.Question{
			{Prompt: "State the first law.", Category: "Conceptual"},
			{Prompt: "Compute the work done.", Category: "Application"},
		},
	}, nil
}

func (f *fakeStudyGenerator) Resources(_ context.Context, _ string) (*domain.ResourcesResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ResourcesResult{
		Resources: []domain.Resource{
			{Title: "Thermodynamics Lectures", Type: "video", Source: "MIT OCW", Reason: "Covers the same laws."},
		},
	}, nil
}

// setupTestServices installs fakes and returns a cleanup that restores
// the previous services.
func setupTestServices() func() {
	oldSessions := sessionService
	oldStudy := studyService

	sessionService = newFakeSessionManager()
	studyService = &fakeStudyGenerator{}

	return func() {
		sessionService = oldSessions
		studyService = oldStudy
	}
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
