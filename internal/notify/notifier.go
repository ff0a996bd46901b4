// internal/notify/notifier.go
package notify

import (
	"context"

	"club-portal/internal/common/logger"
)

// Sender is one outbound notification channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, message string) error
}

// Notifier fans a message out to every configured channel. It never returns
// an error: channel failures are logged and swallowed, which is the contract
// the submission pipeline relies on.
type Notifier struct {
	senders []Sender
	logger  logger.Logger
}

func NewNotifier(log logger.Logger, senders ...Sender) *Notifier {
	return &Notifier{
		senders: senders,
		logger:  log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

func (n *Notifier) Notify(ctx context.Context, message string) {
	for _, s := range n.senders {
		if err := s.Send(ctx, message); err != nil {
			n.logger.Error("notification send failed", map[string]interface{}{
				"channel": s.Name(),
				"error":   err.Error(),
			})
		}
	}
}
