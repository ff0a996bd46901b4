// internal/admin/manager.go

// Package admin implements the dashboard's CRUD management of events, members,
// and gallery entries, plus the pending-submission counts it displays. All
// writes go through JSON-schema validation first; the session check lives at
// the transport layer, not here.
package admin

import (
	"context"

	"club-portal/internal/common/logger"
	"club-portal/internal/storage"
)

type Manager struct {
	store  storage.Store
	logger logger.Logger
}

func NewManager(store storage.Store, log logger.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: log.WithFields(map[string]interface{}{"component": "admin"}),
	}
}

// --- Events ---

func (m *Manager) ListEvents(ctx context.Context) ([]storage.Record, error) {
	return m.store.Select(ctx, storage.TableEvents, "date DESC")
}

func (m *Manager) CreateEvent(ctx context.Context, payload map[string]interface{}) error {
	if err := validatePayload(eventSchema, payload); err != nil {
		return err
	}
	return m.store.Insert(ctx, storage.TableEvents, []storage.Record{payload})
}

func (m *Manager) UpdateEvent(ctx context.Context, id string, payload map[string]interface{}) error {
	if err := validatePayload(eventSchema, payload); err != nil {
		return err
	}
	return m.store.Update(ctx, storage.TableEvents, id, payload)
}

func (m *Manager) DeleteEvent(ctx context.Context, id string) error {
	m.logger.Info("deleting event", map[string]interface{}{"id": id})
	return m.store.Delete(ctx, storage.TableEvents, id)
}

// --- Members ---

func (m *Manager) ListMembers(ctx context.Context) ([]storage.Record, error) {
	return m.store.Select(ctx, storage.TableMembers, "created_at ASC")
}

func (m *Manager) CreateMember(ctx context.Context, payload map[string]interface{}) error {
	if err := validatePayload(memberSchema, payload); err != nil {
		return err
	}
	return m.store.Insert(ctx, storage.TableMembers, []storage.Record{payload})
}

func (m *Manager) UpdateMember(ctx context.Context, id string, payload map[string]interface{}) error {
	if err := validatePayload(memberSchema, payload); err != nil {
		return err
	}
	return m.store.Update(ctx, storage.TableMembers, id, payload)
}

func (m *Manager) DeleteMember(ctx context.Context, id string) error {
	m.logger.Info("deleting member", map[string]interface{}{"id": id})
	return m.store.Delete(ctx, storage.TableMembers, id)
}

// --- Gallery ---

func (m *Manager) ListGallery(ctx context.Context) ([]storage.Record, error) {
	return m.store.Select(ctx, storage.TableGallery, "created_at DESC")
}

func (m *Manager) CreateGalleryImage(ctx context.Context, payload map[string]interface{}) error {
	if err := validatePayload(gallerySchema, payload); err != nil {
		return err
	}
	return m.store.Insert(ctx, storage.TableGallery, []storage.Record{payload})
}

func (m *Manager) UpdateGalleryImage(ctx context.Context, id string, payload map[string]interface{}) error {
	if err := validatePayload(gallerySchema, payload); err != nil {
		return err
	}
	return m.store.Update(ctx, storage.TableGallery, id, payload)
}

func (m *Manager) DeleteGalleryImage(ctx context.Context, id string) error {
	m.logger.Info("deleting gallery image", map[string]interface{}{"id": id})
	return m.store.Delete(ctx, storage.TableGallery, id)
}

// --- Dashboard stats ---

// Stats are the pending-submission counts shown on the dashboard landing
// view.
type Stats struct {
	JoinApplications   int `json:"join_applications"`
	EventRegistrations int `json:"event_registrations"`
}

func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	joins, err := m.store.Count(ctx, storage.TableJoinApplications)
	if err != nil {
		return nil, err
	}
	regs, err := m.store.Count(ctx, storage.TableEventRegistrations)
	if err != nil {
		return nil, err
	}
	return &Stats{JoinApplications: joins, EventRegistrations: regs}, nil
}
