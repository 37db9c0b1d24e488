package timetable

import (
	"context"
	"time"
)

// Snapshot is one fetched timetable: the entry list as the service returned
// it, plus enough metadata to identify the fetch.
type Snapshot struct {
	ID        string
	Name      string
	FetchedAt time.Time
	Entries   []*Entry
}

// Cache defines local storage for fetched snapshots, so timetables remain
// viewable without the service.
type Cache interface {
	// SaveSnapshot stores a snapshot, replacing any previous fetch of the
	// same timetable.
	SaveSnapshot(ctx context.Context, snap *Snapshot) error

	// LoadSnapshot retrieves a snapshot by timetable ID.
	// Returns (nil, nil) if the timetable has never been cached.
	LoadSnapshot(ctx context.Context, id string) (*Snapshot, error)

	// ListSnapshots returns cached snapshot metadata, most recent first.
	// Entries are not loaded.
	ListSnapshots(ctx context.Context) ([]*Snapshot, error)

	// Close releases any resources held by the cache.
	Close() error
}
