// internal/notify/telegram.go

// Package notify delivers best-effort side-channel notifications. Nothing in
// this package may influence the outcome of a submission: failures are logged
// and absorbed by the caller.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"club-portal/internal/common/errors"
	commonhttp "club-portal/internal/common/http"
	"club-portal/internal/common/logger"
	"club-portal/internal/common/metrics"
)

// TelegramSender posts formatted messages to the club's Telegram chat via the
// bot API.
type TelegramSender struct {
	baseURL  string
	botToken string
	chatID   string
	client   *commonhttp.Client
	logger   logger.Logger
}

func NewTelegramSender(baseURL, botToken, chatID string, log logger.Logger) *TelegramSender {
	return &TelegramSender{
		baseURL:  baseURL,
		botToken: botToken,
		chatID:   chatID,
		client:   commonhttp.NewClient(15 * time.Second),
		logger:   log.WithFields(map[string]interface{}{"channel": "telegram"}),
	}
}

func (t *TelegramSender) Name() string { return "telegram" }

// Send delivers one message. An unconfigured sender (missing token or chat id)
// skips the call with a logged warning; that outcome counts as success.
func (t *TelegramSender) Send(ctx context.Context, message string) error {
	if t.botToken == "" || t.chatID == "" {
		t.logger.Warn("telegram credentials not configured, skipping notification", nil)
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	resp, err := t.client.PostJSON(ctx, url, map[string]string{
		"chat_id":    t.chatID,
		"text":       message,
		"parse_mode": "Markdown",
	})
	if err != nil {
		metrics.NotificationsFailed.WithLabelValues("telegram").Inc()
		return errors.NewNotificationSendFailedError("telegram", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		metrics.NotificationsFailed.WithLabelValues("telegram").Inc()
		return errors.NewNotificationSendFailedError("telegram",
			fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(body)))
	}

	return nil
}
