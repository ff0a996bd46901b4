// internal/notify/telegram_test.go
package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSend_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	sender := NewTelegramSender(srv.URL, "bot-token", "chat-42", logger.NewTestLogger(t))
	err := sender.Send(context.Background(), "*New Event Registration*")

	require.NoError(t, err)
	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, "chat-42", gotBody["chat_id"])
	assert.Equal(t, "*New Event Registration*", gotBody["text"])
	assert.Equal(t, "Markdown", gotBody["parse_mode"])
}

func TestTelegramSend_UnconfiguredIsSuccess(t *testing.T) {
	sender := NewTelegramSender("http://unused", "", "", logger.NewTestLogger(t))

	err := sender.Send(context.Background(), "anything")

	assert.NoError(t, err)
}

func TestTelegramSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer srv.Close()

	sender := NewTelegramSender(srv.URL, "bot-token", "bad-chat", logger.NewTestLogger(t))
	err := sender.Send(context.Background(), "msg")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotificationSendFailed, errors.CodeOf(err))
}

type flakySender struct {
	name  string
	calls int
	err   error
}

func (f *flakySender) Name() string { return f.name }
func (f *flakySender) Send(ctx context.Context, message string) error {
	f.calls++
	return f.err
}

func TestNotifier_AbsorbsChannelFailures(t *testing.T) {
	failing := &flakySender{name: "telegram", err: assert.AnError}
	healthy := &flakySender{name: "email"}

	n := NewNotifier(logger.NewTestLogger(t), failing, healthy)
	n.Notify(context.Background(), "msg")

	// both channels attempted despite the first failing
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, healthy.calls)
}
