package view

import (
	"context"
	"sync"
	"time"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// OutcomeBucket is one slice of the moderation-results chart
type OutcomeBucket struct {
	Name    string
	Count   int
	Percent float64
	Class   string
}

// ActivityBar is one day of the recent-activity chart. Height is the bar
// height as a percentage of the busiest day.
type ActivityBar struct {
	Label  string
	Count  int
	Height int
}

// DashboardView is the view-ready shape of the analytics overview
type DashboardView struct {
	TotalSubmissions  int
	SpamDetected      int
	ToxicDetected     int
	AvgProcessingTime float64
	Outcomes          []OutcomeBucket
	Activity          []ActivityBar
	TopClients        []model.TopClient
}

// DashboardCoordinator drives the analytics overview page
type DashboardCoordinator struct {
	backend Backend

	mu    sync.Mutex
	gen   generation
	phase Phase
	data  *DashboardView
	err   error
}

// NewDashboardCoordinator creates an idle dashboard coordinator
func NewDashboardCoordinator(backend Backend) *DashboardCoordinator {
	return &DashboardCoordinator{backend: backend, phase: PhaseIdle}
}

// Load fetches the analytics overview and replaces the page state
func (c *DashboardCoordinator) Load(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.mu.Unlock()

	overview, err := c.backend.AnalyticsOverview(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer load superseded this one
		return
	}

	if err != nil {
		c.phase = PhaseFailed
		c.data = nil
		c.err = err
		return
	}

	c.phase = PhaseLoaded
	c.data = transformOverview(overview)
	c.err = nil
}

// State returns the current phase along with the data or error for it
func (c *DashboardCoordinator) State() (Phase, *DashboardView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase, c.data, c.err
}

func transformOverview(overview *model.AnalyticsOverview) *DashboardView {
	stats := overview.Overview

	approved := int(stats.Approved)
	review := int(stats.Review)
	rejected := int(stats.Rejected)

	// Percentages are computed against the sum of the three buckets, not
	// the reported submission total, so they always add up to 100.
	sum := approved + review + rejected
	pct := func(n int) float64 {
		if sum == 0 {
			return 0
		}
		return float64(n) / float64(sum) * 100
	}

	view := &DashboardView{
		TotalSubmissions:  int(stats.TotalSubmissions),
		SpamDetected:      int(stats.SpamDetected),
		ToxicDetected:     int(stats.ToxicDetected),
		AvgProcessingTime: float64(stats.AvgProcessingTime),
		Outcomes: []OutcomeBucket{
			{Name: "Approved", Count: approved, Percent: pct(approved), Class: "success"},
			{Name: "Review", Count: review, Percent: pct(review), Class: "warning"},
			{Name: "Rejected", Count: rejected, Percent: pct(rejected), Class: "danger"},
		},
		TopClients: overview.TopClients,
	}

	// The backend reports the series in chronological order already; keep
	// fetch order and only reformat the labels.
	maxCount := 0
	for _, point := range overview.RecentActivity {
		if int(point.Count) > maxCount {
			maxCount = int(point.Count)
		}
	}

	for _, point := range overview.RecentActivity {
		height := 0
		if maxCount > 0 {
			height = int(point.Count) * 100 / maxCount
		}
		view.Activity = append(view.Activity, ActivityBar{
			Label:  dayLabel(point.Date),
			Count:  int(point.Count),
			Height: height,
		})
	}

	return view
}

// dayLabel converts a backend date string into a short day/month label,
// falling back to the raw string when the format is unexpected
func dayLabel(raw string) string {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2")
		}
	}
	return raw
}
