// internal/storage/store.go

// Package storage provides the table-oriented record store the submission
// pipeline and admin managers write through. Callers treat all failures
// uniformly; no error codes are interpreted on this side of the boundary.
package storage

import "context"

// Record is a flat table row keyed by column name.
type Record map[string]interface{}

// Logical table names used by the portal.
const (
	TableEventRegistrations = "event_registrations"
	TableJoinApplications   = "join_applications"
	TableEvents             = "events"
	TableMembers            = "members"
	TableGallery            = "gallery"
)

// Store is the narrow contract the rest of the portal depends on. The store
// owns record identity and insertion time; callers never supply ids or
// timestamps on insert.
type Store interface {
	Insert(ctx context.Context, table string, records []Record) error
	Select(ctx context.Context, table, orderBy string) ([]Record, error)
	Update(ctx context.Context, table, id string, fields Record) error
	Delete(ctx context.Context, table, id string) error
	Count(ctx context.Context, table string) (int, error)
}
