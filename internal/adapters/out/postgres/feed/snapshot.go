package feed

import (
	"context"
	"encoding/json"

	"freightops/internal/pkg/errs"

	"gorm.io/gorm"
)

// snapshotTables whitelists the collections a snapshot may read. Collection
// names equal table names, but the query is assembled from this map rather
// than from caller input.
var snapshotTables = map[string]string{
	"requests": "requests",
	"offers":   "offers",
	"trips":    "trips",
	"invoices": "invoices",
	"ratings":  "ratings",
}

// GormSnapshotSource reads full-collection snapshots for cache re-seeding.
// Rows are returned in the same row_to_json encoding the broadcast trigger
// uses, so snapshot rows and feed payloads share one decode path.
type GormSnapshotSource struct {
	db *gorm.DB
}

// NewGormSnapshotSource creates a snapshot source over the given connection.
func NewGormSnapshotSource(db *gorm.DB) *GormSnapshotSource {
	return &GormSnapshotSource{db: db}
}

// Snapshot reads every row of the named collection as JSON.
func (s *GormSnapshotSource) Snapshot(ctx context.Context, collection string) ([]json.RawMessage, error) {
	table, ok := snapshotTables[collection]
	if !ok {
		return nil, errs.NewValueIsInvalidError("unknown collection: " + collection)
	}

	var rows []string
	err := s.db.WithContext(ctx).
		Raw("SELECT row_to_json(t)::text FROM " + table + " t").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}

	out := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, json.RawMessage(row))
	}
	return out, nil
}
