// internal/join/service.go

// Package join implements the membership application path: a single-record
// insert into join_applications plus the best-effort chat notification.
package join

import (
	"context"
	"fmt"
	"strings"
	"time"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"
	"club-portal/internal/common/metrics"
	"club-portal/internal/models"
	"club-portal/internal/notify"
	"club-portal/internal/storage"
)

const (
	msgMissingFields = "Please fill all required fields."
	msgSubmitFailed  = "Failed to submit application. Please try again."
)

const metricForm = "join_application"

type Service struct {
	store    storage.Store
	notifier *notify.Notifier
	logger   logger.Logger
}

func NewService(store storage.Store, notifier *notify.Notifier, log logger.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   log.WithFields(map[string]interface{}{"component": "join-service"}),
	}
}

// Submit validates and persists one application, then dispatches the
// notification without waiting for it. The returned error, when non-nil,
// carries the user-facing message in StandardError.Message; storage details
// are logged only.
func (s *Service) Submit(ctx context.Context, app models.JoinApplication) error {
	if app.Name == "" || app.Email == "" || app.Branch == "" ||
		app.Year == "" || app.Skills == "" || app.Motivation == "" {
		return errors.NewValidationFailedError(msgMissingFields)
	}

	start := time.Now()

	record := storage.Record{
		"name":       app.Name,
		"email":      app.Email,
		"branch":     app.Branch,
		"year":       app.Year,
		"skills":     app.Skills,
		"motivation": app.Motivation,
	}

	if err := s.store.Insert(ctx, storage.TableJoinApplications, []storage.Record{record}); err != nil {
		s.logger.Error("join application storage write failed", map[string]interface{}{
			"error": err.Error(),
			"email": app.Email,
		})
		metrics.SubmissionsFailed.WithLabelValues(metricForm, "DATABASE_INSERT_FAILED").Inc()
		return &errors.StandardError{
			Code:      errors.ErrCodeDatabaseInsertFailed,
			Message:   msgSubmitFailed,
			Retryable: true,
			Timestamp: time.Now().UTC(),
		}
	}

	message := FormatMessage(app)
	go s.notifier.Notify(context.WithoutCancel(ctx), message)

	metrics.SubmissionsCompleted.WithLabelValues(metricForm).Inc()
	metrics.SubmissionDuration.WithLabelValues(metricForm).Observe(time.Since(start).Seconds())

	s.logger.Info("join application submitted", map[string]interface{}{
		"email": app.Email,
	})

	return nil
}

// FormatMessage renders the notification body for one application. Pure;
// never fails.
func FormatMessage(app models.JoinApplication) string {
	var b strings.Builder

	b.WriteString("📝 *New Join Application*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", app.Name)
	fmt.Fprintf(&b, "*Email:* %s\n", app.Email)
	fmt.Fprintf(&b, "*Branch:* %s (%s)\n", app.Branch, app.Year)
	fmt.Fprintf(&b, "*Skills:* %s\n", app.Skills)
	fmt.Fprintf(&b, "*Motivation:* %s", app.Motivation)

	return b.String()
}
