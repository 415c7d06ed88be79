package view

import (
	"context"
	"testing"

	"github.com/ashhad25/moderateai-console/internal/model"
)

func TestClientsToggleReloadsAuthoritativeState(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{
		clients: []model.Client{
			{ID: 1, Name: "acme", Email: "ops@acme.io", APIKey: "mod_abc", IsActive: false, TotalRequests: 12},
			{ID: 2, Name: "beta", IsActive: true},
		},
	}

	c := NewClientsCoordinator(fake)
	c.Load(context.Background())

	c.Toggle(context.Background(), 1)

	phase, data, err := c.State()
	if phase != PhaseLoaded || err != nil {
		t.Fatalf("expected loaded, got %s (%v)", phase, err)
	}

	var acme *ClientCard
	for i := range data.Clients {
		if data.Clients[i].ID == 1 {
			acme = &data.Clients[i]
		}
	}
	if acme == nil {
		t.Fatal("client 1 missing after reload")
	}
	if !acme.IsActive {
		t.Fatal("expected toggle to flip is_active via reload")
	}

	// Everything else is preserved through the reload
	if acme.Name != "acme" || acme.Email != "ops@acme.io" || acme.APIKey != "mod_abc" || acme.TotalRequests != 12 {
		t.Fatalf("other fields changed: %+v", acme)
	}
}

func TestClientsToggleFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{
		clients: []model.Client{{ID: 1, Name: "acme", IsActive: false}},
	}

	c := NewClientsCoordinator(fake)
	c.Load(context.Background())

	fake.toggleErr = errBackendDown
	c.Toggle(context.Background(), 1)

	phase, data, err := c.State()
	if phase != PhaseLoaded || err != nil {
		t.Fatalf("failed mutation must not fail the page, got %s (%v)", phase, err)
	}
	if data.Clients[0].IsActive {
		t.Fatal("failed toggle must not alter the displayed list")
	}
}

func TestClientsCreateReloadsOnSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{}

	c := NewClientsCoordinator(fake)
	c.Load(context.Background())

	if err := c.Create(context.Background(), "gamma", "team@gamma.dev"); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, data, _ := c.State()
	if len(data.Clients) != 1 || data.Clients[0].Name != "gamma" {
		t.Fatalf("expected reload with the new client, got %+v", data.Clients)
	}
}

func TestClientsCreateFailureReturnsErrorWithoutReload(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{
		clients:   []model.Client{{ID: 1, Name: "acme"}},
		createErr: errBackendDown,
	}

	c := NewClientsCoordinator(fake)
	c.Load(context.Background())

	if err := c.Create(context.Background(), "gamma", "team@gamma.dev"); err == nil {
		t.Fatal("expected create error to surface")
	}

	_, data, _ := c.State()
	if len(data.Clients) != 1 {
		t.Fatalf("failed create must leave the list untouched, got %+v", data.Clients)
	}
}
