package view

import (
	"context"
	"sync"
	"time"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// Submission filters accepted by the page
const (
	FilterAll     = "all"
	FilterApprove = "approve"
	FilterReview  = "review"
	FilterReject  = "reject"
)

// NormalizeFilter maps an arbitrary query value onto an allowed filter
func NormalizeFilter(raw string) string {
	switch raw {
	case FilterApprove, FilterReview, FilterReject:
		return raw
	default:
		return FilterAll
	}
}

// SubmissionCard is one submission prepared for rendering
type SubmissionCard struct {
	model.Submission
	CreatedLabel string
}

// SubmissionsView is the view-ready shape of the submissions page
type SubmissionsView struct {
	Filter      string
	Submissions []SubmissionCard
}

// SubmissionsCoordinator drives the submissions page. Changing the filter
// re-fetches the list; a response from a superseded filter is discarded.
type SubmissionsCoordinator struct {
	backend Backend

	mu    sync.Mutex
	gen   generation
	phase Phase
	data  *SubmissionsView
	err   error
}

// NewSubmissionsCoordinator creates an idle submissions coordinator
func NewSubmissionsCoordinator(backend Backend) *SubmissionsCoordinator {
	return &SubmissionsCoordinator{backend: backend, phase: PhaseIdle}
}

// Load fetches submissions for the given filter. The "all" filter omits the
// recommendation parameter entirely.
func (c *SubmissionsCoordinator) Load(ctx context.Context, filter string) {
	filter = NormalizeFilter(filter)

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.mu.Unlock()

	recommendation := ""
	if filter != FilterAll {
		recommendation = filter
	}

	submissions, err := c.backend.Submissions(ctx, recommendation)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}

	if err != nil {
		c.phase = PhaseFailed
		c.data = nil
		c.err = err
		return
	}

	view := &SubmissionsView{Filter: filter}
	for _, sub := range submissions {
		view.Submissions = append(view.Submissions, SubmissionCard{
			Submission:   sub,
			CreatedLabel: timestampLabel(sub.CreatedAt),
		})
	}

	c.phase = PhaseLoaded
	c.data = view
	c.err = nil
}

// State returns the current phase along with the data or error for it
func (c *SubmissionsCoordinator) State() (Phase, *SubmissionsView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase, c.data, c.err
}

// timestampLabel formats a backend timestamp for display, falling back to
// the raw string when the format is unexpected
func timestampLabel(raw string) string {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006 03:04 PM")
		}
	}
	return raw
}
