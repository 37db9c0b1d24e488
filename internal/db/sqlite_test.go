package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmvillaverde/horario/internal/timetable"
)

// newTestCache creates a temporary SQLite cache for testing.
func newTestCache(t *testing.T) *SQLite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	cache, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}

	t.Cleanup(func() {
		_ = cache.Close()
	})

	return cache
}

func testSnapshot(t *testing.T, id string, fetchedAt time.Time) *timetable.Snapshot {
	t.Helper()

	entry, err := timetable.NewEntry(1, 0, "09:00", "10:30", 7,
		timetable.Course{ID: 1, Code: "CS101", Name: "Algorithms"},
		timetable.Teacher{ID: 2, Name: "Quijano"},
		timetable.Room{ID: 3, Code: "A1", Name: "Aula 1"},
		timetable.Section{ID: 4, Code: "S1", Name: "First Year A"},
	)
	if err != nil {
		t.Fatalf("building entry: %v", err)
	}

	return &timetable.Snapshot{
		ID:        id,
		Name:      "Semester 1",
		FetchedAt: fetchedAt,
		Entries:   []*timetable.Entry{entry},
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	fetched := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	snap := testSnapshot(t, "tt-1", fetched)

	if err := cache.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := cache.LoadSnapshot(ctx, "tt-1")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot, got nil")
	}

	if got.ID != "tt-1" || got.Name != "Semester 1" {
		t.Errorf("snapshot meta = %q/%q, want tt-1/Semester 1", got.ID, got.Name)
	}
	if !got.FetchedAt.Equal(fetched) {
		t.Errorf("FetchedAt = %v, want %v", got.FetchedAt, fetched)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got.Entries))
	}

	e := got.Entries[0]
	if e.Start != 540 || e.End != 630 {
		t.Errorf("entry span = %d-%d, want 540-630", e.Start, e.End)
	}
	if e.Course.Code != "CS101" {
		t.Errorf("course code = %q, want CS101", e.Course.Code)
	}
	if e.Teacher.Name != "Quijano" {
		t.Errorf("teacher = %q, want Quijano", e.Teacher.Name)
	}
}

func TestLoadSnapshot_NotFound(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.LoadSnapshot(context.Background(), "missing")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing snapshot, got %+v", got)
	}
}

func TestSaveSnapshot_Replaces(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	first := testSnapshot(t, "tt-1", time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC))
	if err := cache.SaveSnapshot(ctx, first); err != nil {
		t.Fatalf("SaveSnapshot (first) failed: %v", err)
	}

	second := testSnapshot(t, "tt-1", time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC))
	second.Name = "Semester 1 (regenerated)"
	if err := cache.SaveSnapshot(ctx, second); err != nil {
		t.Fatalf("SaveSnapshot (second) failed: %v", err)
	}

	got, err := cache.LoadSnapshot(ctx, "tt-1")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got.Name != "Semester 1 (regenerated)" {
		t.Errorf("name = %q, want the replaced snapshot", got.Name)
	}

	snaps, err := cache.ListSnapshots(ctx)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Errorf("expected 1 snapshot after replace, got %d", len(snaps))
	}
}

func TestSaveSnapshot_EmptyEntries(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	snap := &timetable.Snapshot{
		ID:        "tt-empty",
		Name:      "Nothing scheduled",
		FetchedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := cache.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := cache.LoadSnapshot(ctx, "tt-empty")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if len(got.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(got.Entries))
	}
}

func TestListSnapshots(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	older := testSnapshot(t, "tt-old", time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC))
	newer := testSnapshot(t, "tt-new", time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC))

	if err := cache.SaveSnapshot(ctx, older); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if err := cache.SaveSnapshot(ctx, newer); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	snaps, err := cache.ListSnapshots(ctx)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}

	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if snaps[0].ID != "tt-new" || snaps[1].ID != "tt-old" {
		t.Errorf("order = %q, %q, want newest first", snaps[0].ID, snaps[1].ID)
	}
	for _, snap := range snaps {
		if len(snap.Entries) != 0 {
			t.Errorf("ListSnapshots should not load entries, got %d for %q", len(snap.Entries), snap.ID)
		}
	}
}

func TestListSnapshots_Empty(t *testing.T) {
	cache := newTestCache(t)

	snaps, err := cache.ListSnapshots(context.Background())
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snaps))
	}
}

func TestDeleteSnapshot(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	snap := testSnapshot(t, "tt-1", time.Now().UTC())
	if err := cache.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	if err := cache.DeleteSnapshot(ctx, "tt-1"); err != nil {
		t.Fatalf("DeleteSnapshot failed: %v", err)
	}

	got, err := cache.LoadSnapshot(ctx, "tt-1")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected snapshot to be gone, got %+v", got)
	}
}

func TestDeleteSnapshot_NotFound(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.DeleteSnapshot(context.Background(), "missing"); err == nil {
		t.Error("expected error for missing snapshot")
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")

	cache, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
}
