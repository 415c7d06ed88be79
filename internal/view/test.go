package view

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// TestHistory is the slice of the session store the test page uses to keep
// a local record of manual probes
type TestHistory interface {
	AppendTestRecord(text, recommendation string, confidence float64) error
	TestHistory(limit int) ([]model.TestRecord, error)
}

// TestView is the view-ready shape of the manual-test page
type TestView struct {
	Result  *model.ModerationResult
	Text    string
	APIKey  string
	History []model.TestRecord
}

// ManualTestCoordinator drives the manual moderation test page. Each run
// clears the previous result before issuing the request, and a run that has
// been superseded never overwrites a newer one, so the displayed result
// always belongs to the most recent invocation.
type ManualTestCoordinator struct {
	backend Backend
	history TestHistory

	mu         sync.Mutex
	gen        generation
	phase      Phase
	result     *model.ModerationResult
	err        error
	lastText   string
	lastAPIKey string
}

// NewManualTestCoordinator creates an idle manual-test coordinator
func NewManualTestCoordinator(backend Backend, history TestHistory) *ManualTestCoordinator {
	return &ManualTestCoordinator{backend: backend, history: history, phase: PhaseIdle}
}

// Run issues a one-off moderation call on the API-key path and replaces the
// displayed result with its outcome
func (c *ManualTestCoordinator) Run(ctx context.Context, apiKey, text string) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.result = nil
	c.err = nil
	c.lastText = text
	c.lastAPIKey = apiKey
	c.mu.Unlock()

	result, err := c.backend.Moderate(ctx, apiKey, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}

	if err != nil {
		c.phase = PhaseFailed
		c.result = nil
		c.err = err
		return
	}

	c.phase = PhaseLoaded
	c.result = result
	c.err = nil

	if c.history != nil {
		if err := c.history.AppendTestRecord(text, result.Recommendation, result.Confidence); err != nil {
			zap.L().Error("Failed to record test history", zap.Error(err))
		}
	}
}

// Reset discards the current result, returning the page to idle
func (c *ManualTestCoordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.phase = PhaseIdle
	c.result = nil
	c.err = nil
}

// State returns the current phase plus the result or error, along with the
// recent local test history
func (c *ManualTestCoordinator) State() (Phase, *TestView, error) {
	c.mu.Lock()
	phase := c.phase
	result := c.result
	err := c.err
	text := c.lastText
	apiKey := c.lastAPIKey
	c.mu.Unlock()

	view := &TestView{Result: result, Text: text, APIKey: apiKey}
	if c.history != nil {
		records, histErr := c.history.TestHistory(10)
		if histErr != nil {
			zap.L().Warn("Failed to load test history", zap.Error(histErr))
		} else {
			view.History = records
		}
	}

	return phase, view, err
}
