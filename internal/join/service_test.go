// internal/join/service_test.go
package join

import (
	"context"
	"sync"
	"testing"
	"time"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"
	"club-portal/internal/models"
	"club-portal/internal/notify"
	"club-portal/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	inserts []storage.Record
	err     error
}

func (f *fakeStore) Insert(ctx context.Context, table string, records []storage.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts = append(f.inserts, records...)
	return f.err
}
func (f *fakeStore) Select(ctx context.Context, table, orderBy string) ([]storage.Record, error) {
	return nil, nil
}
func (f *fakeStore) Update(ctx context.Context, table, id string, fields storage.Record) error {
	return nil
}
func (f *fakeStore) Delete(ctx context.Context, table, id string) error { return nil }
func (f *fakeStore) Count(ctx context.Context, table string) (int, error) {
	return 0, nil
}

type recordingSender struct {
	mu       sync.Mutex
	messages []string
	err      error
	sent     chan struct{}
}

func (r *recordingSender) Name() string { return "recording" }
func (r *recordingSender) Send(ctx context.Context, message string) error {
	r.mu.Lock()
	r.messages = append(r.messages, message)
	r.mu.Unlock()
	if r.sent != nil {
		close(r.sent)
	}
	return r.err
}

func validApplication() models.JoinApplication {
	return models.JoinApplication{
		Name:       "Jane Doe",
		Email:      "jane@x.com",
		Branch:     "CSE",
		Year:       "2nd",
		Skills:     "Go, embedded",
		Motivation: "Build things",
	}
}

func newService(t *testing.T, store storage.Store, senders ...notify.Sender) *Service {
	return NewService(store, notify.NewNotifier(logger.NewTestLogger(t), senders...), logger.NewTestLogger(t))
}

func TestSubmit_Success(t *testing.T) {
	store := &fakeStore{}
	sender := &recordingSender{sent: make(chan struct{})}
	svc := newService(t, store, sender)

	err := svc.Submit(context.Background(), validApplication())

	require.NoError(t, err)
	require.Len(t, store.inserts, 1)
	assert.Equal(t, "jane@x.com", store.inserts[0]["email"])
	assert.Equal(t, "Build things", store.inserts[0]["motivation"])

	select {
	case <-sender.sent:
	case <-time.After(time.Second):
		t.Fatal("notification never dispatched")
	}
	assert.Contains(t, sender.messages[0], "*New Join Application*")
	assert.Contains(t, sender.messages[0], "*Branch:* CSE (2nd)")
}

func TestSubmit_MissingFieldRejected(t *testing.T) {
	store := &fakeStore{}
	svc := newService(t, store)

	app := validApplication()
	app.Motivation = ""
	err := svc.Submit(context.Background(), app)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
	assert.Empty(t, store.inserts)
}

func TestSubmit_StorageFailureIsGeneric(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	sender := &recordingSender{}
	svc := newService(t, store, sender)

	err := svc.Submit(context.Background(), validApplication())

	require.Error(t, err)
	se, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, "Failed to submit application. Please try again.", se.Message)
	assert.Empty(t, sender.messages)
}

func TestSubmit_NotificationFailureAbsorbed(t *testing.T) {
	store := &fakeStore{}
	sender := &recordingSender{err: assert.AnError, sent: make(chan struct{})}
	svc := newService(t, store, sender)

	err := svc.Submit(context.Background(), validApplication())

	assert.NoError(t, err)
	select {
	case <-sender.sent:
	case <-time.After(time.Second):
		t.Fatal("notification never attempted")
	}
}

func TestFormatMessage_AllLines(t *testing.T) {
	msg := FormatMessage(validApplication())

	assert.Contains(t, msg, "*Name:* Jane Doe")
	assert.Contains(t, msg, "*Email:* jane@x.com")
	assert.Contains(t, msg, "*Skills:* Go, embedded")
	assert.Contains(t, msg, "*Motivation:* Build things")
}
