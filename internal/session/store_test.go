package session

import (
	"path/filepath"
	"testing"
)

func TestCredentialRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	token, err := store.Credential()
	if err != nil {
		t.Fatalf("credential: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty store, got %q", token)
	}

	if err := store.SetCredential("tok-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	token, err = store.Credential()
	if err != nil {
		t.Fatalf("credential: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("expected tok-1, got %q", token)
	}

	// Setting overwrites; exactly one credential is live
	if err := store.SetCredential("tok-2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	token, _ = store.Credential()
	if token != "tok-2" {
		t.Fatalf("expected tok-2 after overwrite, got %q", token)
	}
}

func TestCredentialSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "console.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.SetCredential("persisted"); err != nil {
		t.Fatalf("set: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	token, err := reopened.Credential()
	if err != nil {
		t.Fatalf("credential: %v", err)
	}
	if token != "persisted" {
		t.Fatalf("expected credential to survive restart, got %q", token)
	}
}

func TestClearCredentialIsIdempotent(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.SetCredential("tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.ClearCredential(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	// Clearing an already empty store is a no-op
	if err := store.ClearCredential(); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	token, err := store.Credential()
	if err != nil {
		t.Fatalf("credential: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty after clear, got %q", token)
	}
}

func TestTestHistoryNewestFirst(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.AppendTestRecord("first probe", "APPROVE", 0.6); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.AppendTestRecord("second probe", "REJECT", 0.95); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := store.TestHistory(10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Text != "second probe" || records[0].Recommendation != "REJECT" {
		t.Fatalf("expected newest first, got %+v", records[0])
	}
	if records[1].Confidence != 0.6 {
		t.Fatalf("expected confidence preserved, got %v", records[1].Confidence)
	}
}

func TestTestHistoryRespectsLimit(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if err := store.AppendTestRecord("probe", "REVIEW", 0.5); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := store.TestHistory(3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}
