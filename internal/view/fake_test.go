package view

import (
	"context"
	"errors"
	"sync"

	"github.com/ashhad25/moderateai-console/internal/model"
)

var errBackendDown = errors.New("backend down")

// fakeBackend implements Backend for coordinator tests
type fakeBackend struct {
	mu sync.Mutex

	overview    *model.AnalyticsOverview
	overviewErr error

	submissionsFn func(ctx context.Context, recommendation string) ([]model.Submission, error)

	clients    []model.Client
	clientsErr error
	createErr  error
	toggleErr  error
	created    []model.ClientCreate
	toggled    []int

	logs    []model.ModerationLog
	logsErr error

	moderateFn func(ctx context.Context, apiKey, text string) (*model.ModerationResult, error)
}

func (f *fakeBackend) AnalyticsOverview(ctx context.Context) (*model.AnalyticsOverview, error) {
	if f.overviewErr != nil {
		return nil, f.overviewErr
	}
	return f.overview, nil
}

func (f *fakeBackend) Submissions(ctx context.Context, recommendation string) ([]model.Submission, error) {
	if f.submissionsFn != nil {
		return f.submissionsFn(ctx, recommendation)
	}
	return nil, nil
}

func (f *fakeBackend) Clients(ctx context.Context) ([]model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clientsErr != nil {
		return nil, f.clientsErr
	}
	out := make([]model.Client, len(f.clients))
	copy(out, f.clients)
	return out, nil
}

func (f *fakeBackend) CreateClient(ctx context.Context, name, email string) (*model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	client := model.Client{ID: len(f.clients) + 1, Name: name, Email: email, IsActive: true}
	f.clients = append(f.clients, client)
	f.created = append(f.created, model.ClientCreate{Name: name, Email: email})
	return &client, nil
}

func (f *fakeBackend) ToggleClient(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.toggleErr != nil {
		return f.toggleErr
	}
	f.toggled = append(f.toggled, id)
	for i := range f.clients {
		if f.clients[i].ID == id {
			f.clients[i].IsActive = !f.clients[i].IsActive
		}
	}
	return nil
}

func (f *fakeBackend) AdminLogs(ctx context.Context) ([]model.ModerationLog, error) {
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	return f.logs, nil
}

func (f *fakeBackend) Moderate(ctx context.Context, apiKey, text string) (*model.ModerationResult, error) {
	if f.moderateFn != nil {
		return f.moderateFn(ctx, apiKey, text)
	}
	return &model.ModerationResult{Recommendation: model.RecommendationApprove}, nil
}

// fakeHistory implements TestHistory in memory
type fakeHistory struct {
	mu      sync.Mutex
	records []model.TestRecord
}

func (f *fakeHistory) AppendTestRecord(text, recommendation string, confidence float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append([]model.TestRecord{{
		ID:             len(f.records) + 1,
		Text:           text,
		Recommendation: recommendation,
		Confidence:     confidence,
	}}, f.records...)
	return nil
}

func (f *fakeHistory) TestHistory(limit int) ([]model.TestRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}
