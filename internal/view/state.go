// Package view holds the per-page coordinators: the logic that decides what
// to fetch for a page, transforms the backend response into view-ready
// shapes, and tracks the page's load state across navigation.
package view

import (
	"context"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// Phase is the load state of a page. A coordinator is always in exactly one
// phase and carries either data or an error, never both.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Backend is the slice of the moderation API the coordinators consume
type Backend interface {
	AnalyticsOverview(ctx context.Context) (*model.AnalyticsOverview, error)
	Submissions(ctx context.Context, recommendation string) ([]model.Submission, error)
	Clients(ctx context.Context) ([]model.Client, error)
	CreateClient(ctx context.Context, name, email string) (*model.Client, error)
	ToggleClient(ctx context.Context, id int) error
	AdminLogs(ctx context.Context) ([]model.ModerationLog, error)
	Moderate(ctx context.Context, apiKey, text string) (*model.ModerationResult, error)
}

// generation tracks which request a coordinator considers current. Every
// driving change bumps the counter; a response whose generation no longer
// matches is discarded instead of overwriting newer state.
type generation uint64

// RecommendationClass maps a recommendation outcome onto its badge class
func RecommendationClass(recommendation string) string {
	switch recommendation {
	case model.RecommendationReject:
		return "danger"
	case model.RecommendationReview:
		return "warning"
	case model.RecommendationApprove:
		return "success"
	default:
		return "neutral"
	}
}
