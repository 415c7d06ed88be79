package view

import (
	"context"
	"sync"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// LogCard is one moderation-log entry prepared for rendering
type LogCard struct {
	model.ModerationLog
	Badge      string
	BadgeClass string
	TimeLabel  string
}

// LogsView is the view-ready shape of the logs page
type LogsView struct {
	Logs []LogCard
}

// LogsCoordinator drives the moderation-logs page
type LogsCoordinator struct {
	backend Backend

	mu    sync.Mutex
	gen   generation
	phase Phase
	data  *LogsView
	err   error
}

// NewLogsCoordinator creates an idle logs coordinator
func NewLogsCoordinator(backend Backend) *LogsCoordinator {
	return &LogsCoordinator{backend: backend, phase: PhaseIdle}
}

// Load fetches the backend moderation log
func (c *LogsCoordinator) Load(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.mu.Unlock()

	logs, err := c.backend.AdminLogs(ctx)

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

	view := &LogsView{}
	for _, entry := range logs {
		badge, class := classifyLog(entry)
		view.Logs = append(view.Logs, LogCard{
			ModerationLog: entry,
			Badge:         badge,
			BadgeClass:    class,
			TimeLabel:     timestampLabel(entry.Timestamp),
		})
	}

	c.phase = PhaseLoaded
	c.data = view
	c.err = nil
}

// State returns the current phase along with the data or error for it
func (c *LogsCoordinator) State() (Phase, *LogsView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase, c.data, c.err
}

// classifyLog picks the badge for a log entry. Spam wins over toxic when
// both flags are set.
func classifyLog(entry model.ModerationLog) (badge, class string) {
	switch {
	case entry.IsSpam:
		return "SPAM", "danger"
	case entry.IsToxic:
		return "TOXIC", "warning"
	default:
		return "CLEAN", "success"
	}
}
