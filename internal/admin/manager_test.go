// internal/admin/manager_test.go
package admin

import (
	"context"
	"testing"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"
	"club-portal/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	inserts map[string][]storage.Record
	updates map[string]storage.Record
	deletes []string
	selects []string
	counts  map[string]int
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		inserts: map[string][]storage.Record{},
		updates: map[string]storage.Record{},
		counts:  map[string]int{},
	}
}

func (f *fakeStore) Insert(ctx context.Context, table string, records []storage.Record) error {
	f.inserts[table] = append(f.inserts[table], records...)
	return f.err
}
func (f *fakeStore) Select(ctx context.Context, table, orderBy string) ([]storage.Record, error) {
	f.selects = append(f.selects, table+" ORDER BY "+orderBy)
	return []storage.Record{{"id": "r-1"}}, f.err
}
func (f *fakeStore) Update(ctx context.Context, table, id string, fields storage.Record) error {
	f.updates[table+"/"+id] = fields
	return f.err
}
func (f *fakeStore) Delete(ctx context.Context, table, id string) error {
	f.deletes = append(f.deletes, table+"/"+id)
	return f.err
}
func (f *fakeStore) Count(ctx context.Context, table string) (int, error) {
	return f.counts[table], f.err
}

func newManager(t *testing.T) (*Manager, *fakeStore) {
	store := newFakeStore()
	return NewManager(store, logger.NewTestLogger(t)), store
}

func validEvent() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Hackathon",
		"description": "24h build sprint",
		"date":        "2026-03-14",
		"venue":       "Main hall",
		"status":      "upcoming",
	}
}

func TestCreateEvent_Valid(t *testing.T) {
	m, store := newManager(t)

	err := m.CreateEvent(context.Background(), validEvent())

	require.NoError(t, err)
	require.Len(t, store.inserts[storage.TableEvents], 1)
}

func TestCreateEvent_BadStatusRejected(t *testing.T) {
	m, store := newManager(t)

	payload := validEvent()
	payload["status"] = "cancelled"
	err := m.CreateEvent(context.Background(), payload)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
	assert.Empty(t, store.inserts[storage.TableEvents])
}

func TestCreateEvent_MissingFieldRejected(t *testing.T) {
	m, _ := newManager(t)

	payload := validEvent()
	delete(payload, "venue")
	err := m.CreateEvent(context.Background(), payload)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
}

func TestCreateEvent_UnknownFieldRejected(t *testing.T) {
	m, _ := newManager(t)

	payload := validEvent()
	payload["organizer"] = "someone"
	err := m.CreateEvent(context.Background(), payload)

	require.Error(t, err)
}

func TestUpdateEvent_Valid(t *testing.T) {
	m, store := newManager(t)

	err := m.UpdateEvent(context.Background(), "evt-1", validEvent())

	require.NoError(t, err)
	assert.Contains(t, store.updates, storage.TableEvents+"/evt-1")
}

func TestCreateMember_Valid(t *testing.T) {
	m, store := newManager(t)

	err := m.CreateMember(context.Background(), map[string]interface{}{
		"name":      "Jane Doe",
		"role":      "President",
		"domain":    "Robotics",
		"image_url": "https://cdn.example.org/jane.jpg",
		"bio_md":    "Builds robots.",
	})

	require.NoError(t, err)
	require.Len(t, store.inserts[storage.TableMembers], 1)
}

func TestCreateMember_MissingImageRejected(t *testing.T) {
	m, _ := newManager(t)

	err := m.CreateMember(context.Background(), map[string]interface{}{
		"name": "Jane", "role": "President", "domain": "Robotics",
	})

	require.Error(t, err)
}

func TestCreateGalleryImage_Valid(t *testing.T) {
	m, store := newManager(t)

	err := m.CreateGalleryImage(context.Background(), map[string]interface{}{
		"image_url": "https://cdn.example.org/tech-fest.jpg",
		"caption":   "Tech fest 2025",
	})

	require.NoError(t, err)
	require.Len(t, store.inserts[storage.TableGallery], 1)
}

func TestDeleteOps(t *testing.T) {
	m, store := newManager(t)

	require.NoError(t, m.DeleteEvent(context.Background(), "evt-1"))
	require.NoError(t, m.DeleteMember(context.Background(), "mem-1"))
	require.NoError(t, m.DeleteGalleryImage(context.Background(), "img-1"))

	assert.Equal(t, []string{"events/evt-1", "members/mem-1", "gallery/img-1"}, store.deletes)
}

func TestListEvents_OrdersByDateDesc(t *testing.T) {
	m, store := newManager(t)

	_, err := m.ListEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"events ORDER BY date DESC"}, store.selects)
}

func TestStats(t *testing.T) {
	m, store := newManager(t)
	store.counts[storage.TableJoinApplications] = 4
	store.counts[storage.TableEventRegistrations] = 11

	stats, err := m.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.JoinApplications)
	assert.Equal(t, 11, stats.EventRegistrations)
}
