package audit

import (
	"context"
	"testing"
	"time"
)

func TestRetentionPurgesOldEntries(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, time.March, 8, 12, 0, 0, 0, time.UTC)

	seed := []struct {
		entryID string
		age     time.Duration
	}{
		{"entry-fresh", time.Hour},
		{"entry-week-old", 6 * 24 * time.Hour},
		{"entry-stale", 8 * 24 * time.Hour},
	}
	for _, item := range seed {
		if err := store.Append(context.Background(), Entry{
			EntryID:   item.entryID,
			Action:    "user_signed_in",
			UserID:    "user-lender-1",
			CreatedAt: now.Add(-item.age),
		}); err != nil {
			t.Fatalf("seeding entry failed: %v", err)
		}
	}

	retention := Retention{Store: store, Clock: fixedClock{at: now}}
	if err := retention.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	entries := store.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two surviving entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.EntryID == "entry-stale" {
			t.Fatal("stale entry survived the purge")
		}
	}
}

func TestRetentionHonorsCustomWindow(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, time.March, 8, 12, 0, 0, 0, time.UTC)
	_ = store.Append(context.Background(), Entry{
		EntryID:   "entry-old",
		Action:    "user_signed_in",
		UserID:    "user-lender-1",
		CreatedAt: now.Add(-2 * time.Hour),
	})

	retention := Retention{Store: store, Clock: fixedClock{at: now}, Window: time.Hour}
	if err := retention.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}
	if len(store.Entries()) != 0 {
		t.Fatal("expected entry outside the custom window to be purged")
	}
}
