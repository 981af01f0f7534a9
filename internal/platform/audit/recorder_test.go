package audit

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type failingStore struct{}

func (failingStore) Append(_ context.Context, _ Entry) error {
	return errors.New("store down")
}

func (failingStore) PurgeBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, errors.New("store down")
}

func TestAuditAppendsAttributedEntry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	recorder := Recorder{Store: store, Clock: fixedClock{at: now}}

	err := recorder.Audit(context.Background(), "access_denied_forbidden", "user-lender-2", map[string]any{
		"owner_user_id": "user-lender-1",
	})
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}

	entries := store.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Action != "access_denied_forbidden" || entry.UserID != "user-lender-2" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.EntryID == "" {
		t.Fatal("entries must carry an id")
	}
	if !entry.CreatedAt.Equal(now) {
		t.Fatalf("expected injected clock time, got %v", entry.CreatedAt)
	}
}

func TestAuditRequiresUserID(t *testing.T) {
	store := NewMemoryStore()
	recorder := Recorder{Store: store}

	err := recorder.Audit(context.Background(), "access_denied_unauthorized", "", nil)
	if !errors.Is(err, ErrUserIDRequired) {
		t.Fatalf("expected ErrUserIDRequired, got %v", err)
	}
	if len(store.Entries()) != 0 {
		t.Fatal("unattributed entries must not be stored")
	}
}

func TestAuditSwallowsStoreFailures(t *testing.T) {
	recorder := Recorder{Store: failingStore{}}

	if err := recorder.Audit(context.Background(), "user_signed_in", "user-lender-1", nil); err != nil {
		t.Fatalf("store failures must not surface, got %v", err)
	}
}
