package view

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// ClientCard is one API client prepared for rendering
type ClientCard struct {
	model.Client
	CreatedLabel string
}

// ClientsView is the view-ready shape of the clients page
type ClientsView struct {
	Clients []ClientCard
}

// ClientsCoordinator drives the clients page. Mutations are
// fire-and-confirm: only a successful backend response triggers a full
// reload; the displayed list is never patched locally.
type ClientsCoordinator struct {
	backend Backend

	mu    sync.Mutex
	gen   generation
	phase Phase
	data  *ClientsView
	err   error
}

// NewClientsCoordinator creates an idle clients coordinator
func NewClientsCoordinator(backend Backend) *ClientsCoordinator {
	return &ClientsCoordinator{backend: backend, phase: PhaseIdle}
}

// Load fetches the full client list
func (c *ClientsCoordinator) Load(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.mu.Unlock()

	clients, err := c.backend.Clients(ctx)

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

	view := &ClientsView{}
	for _, client := range clients {
		view.Clients = append(view.Clients, ClientCard{
			Client:       client,
			CreatedLabel: dayLabel(client.CreatedAt),
		})
	}

	c.phase = PhaseLoaded
	c.data = view
	c.err = nil
}

// Create registers a new client and reloads the list on success. On failure
// the list state is untouched and the error is returned for inline display.
func (c *ClientsCoordinator) Create(ctx context.Context, name, email string) error {
	if _, err := c.backend.CreateClient(ctx, name, email); err != nil {
		return err
	}

	c.Load(ctx)
	return nil
}

// Toggle flips a client's active flag and reloads the list on success.
// Failures are logged and leave the displayed list untouched.
func (c *ClientsCoordinator) Toggle(ctx context.Context, id int) {
	if err := c.backend.ToggleClient(ctx, id); err != nil {
		zap.L().Error("Failed to toggle client",
			zap.Int("client_id", id),
			zap.Error(err))
		return
	}

	c.Load(ctx)
}

// State returns the current phase along with the data or error for it
func (c *ClientsCoordinator) State() (Phase, *ClientsView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase, c.data, c.err
}
