package view

import (
	"context"
	"sync"
	"testing"

	"github.com/ashhad25/moderateai-console/internal/model"
)

func TestManualTestReplacesResult(t *testing.T) {
	t.Parallel()

	calls := 0
	fake := &fakeBackend{
		moderateFn: func(ctx context.Context, apiKey, text string) (*model.ModerationResult, error) {
			calls++
			return &model.ModerationResult{
				Recommendation: model.RecommendationReject,
				Confidence:     0.9,
			}, nil
		},
	}
	history := &fakeHistory{}

	c := NewManualTestCoordinator(fake, history)
	c.Run(context.Background(), "mod_key", "spam text")

	phase, data, err := c.State()
	if phase != PhaseLoaded || err != nil {
		t.Fatalf("expected loaded, got %s (%v)", phase, err)
	}
	if data.Result == nil || data.Result.Recommendation != model.RecommendationReject {
		t.Fatalf("unexpected result %+v", data.Result)
	}
	if data.Text != "spam text" || data.APIKey != "mod_key" {
		t.Fatalf("form values not retained: %+v", data)
	}
	if calls != 1 {
		t.Fatalf("expected one backend call, got %d", calls)
	}

	// Each run records one history entry
	if len(data.History) != 1 || data.History[0].Recommendation != model.RecommendationReject {
		t.Fatalf("expected one history record, got %+v", data.History)
	}
}

func TestManualTestFailureClearsResult(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{
		moderateFn: func(ctx context.Context, apiKey, text string) (*model.ModerationResult, error) {
			return nil, errBackendDown
		},
	}

	c := NewManualTestCoordinator(fake, &fakeHistory{})
	c.Run(context.Background(), "key", "text")

	phase, data, err := c.State()
	if phase != PhaseFailed || err == nil {
		t.Fatalf("expected failed, got %s (%v)", phase, err)
	}
	if data.Result != nil {
		t.Fatal("failed run must not carry a result")
	}
	if len(data.History) != 0 {
		t.Fatal("failed run must not be recorded in history")
	}
}

func TestManualTestStaleRunDiscarded(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	fake := &fakeBackend{
		moderateFn: func(ctx context.Context, apiKey, text string) (*model.ModerationResult, error) {
			if text == "slow" {
				close(started)
				<-release
				return &model.ModerationResult{Recommendation: model.RecommendationApprove}, nil
			}
			return &model.ModerationResult{Recommendation: model.RecommendationReview}, nil
		},
	}
	history := &fakeHistory{}

	c := NewManualTestCoordinator(fake, history)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Run(context.Background(), "key", "slow")
	}()

	// The newer run starts only once the slow one is in flight
	<-started
	c.Run(context.Background(), "key", "fast")

	close(release)
	wg.Wait()

	// The displayed result belongs to the most recent invocation, not the
	// slow run that resolved last
	_, data, _ := c.State()
	if data.Result == nil || data.Result.Recommendation != model.RecommendationReview {
		t.Fatalf("stale run overwrote newer result: %+v", data.Result)
	}
	if len(history.records) != 1 {
		t.Fatalf("stale run must not be recorded, got %d records", len(history.records))
	}
}

func TestManualTestReset(t *testing.T) {
	t.Parallel()

	c := NewManualTestCoordinator(&fakeBackend{}, nil)
	c.Run(context.Background(), "key", "text")
	c.Reset()

	phase, data, err := c.State()
	if phase != PhaseIdle || err != nil {
		t.Fatalf("expected idle after reset, got %s (%v)", phase, err)
	}
	if data.Result != nil {
		t.Fatal("reset must discard the result")
	}
}
