// internal/server/registration.go
package server

import (
	"context"
	"net/http"
	"time"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"
	"club-portal/internal/common/observability"
	"club-portal/internal/models"
	"club-portal/internal/notify"
	"club-portal/internal/registration"
	"club-portal/internal/storage"
)

// RegistrationHandler serves team registrations for an event. Each request is
// one form session: the draft arrives complete, runs through the validation
// gate, and is submitted through a fresh pipeline.
type RegistrationHandler struct {
	store          storage.Store
	notifier       *notify.Notifier
	obs            *observability.Observability
	storageTimeout time.Duration
	logger         logger.Logger
}

func NewRegistrationHandler(store storage.Store, notifier *notify.Notifier, obs *observability.Observability, storageTimeout time.Duration, log logger.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		store:          store,
		notifier:       notifier,
		obs:            obs,
		storageTimeout: storageTimeout,
		logger:         log.WithFields(map[string]interface{}{"handler": "registration"}),
	}
}

// Register handles POST /api/events/{id}/register.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	event, err := h.lookupEvent(r, eventID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var draft registration.Draft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if len(draft.Members) > registration.MaxMembers {
		writeError(w, h.logger, errors.NewValidationFailedError("too many team members"))
		return
	}

	// Surface the rule message before any I/O; the pipeline re-checks the
	// same rules on submit.
	if result := registration.Validate(&draft); !result.Valid {
		writeError(w, h.logger, errors.NewValidationFailedError(result.Reason))
		return
	}

	ctx := r.Context()
	if h.storageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.storageTimeout)
		defer cancel()
	}

	pipeline := registration.NewPipeline(h.store, h.notifier, h.logger)
	start := time.Now()
	status := pipeline.Submit(ctx, event, &draft)
	if h.obs != nil {
		h.obs.RecordSubmission(r.Context(), string(status))
		h.obs.RecordSubmissionDuration(r.Context(), time.Since(start), string(status))
	}
	if status != registration.StatusSuccess {
		writeError(w, h.logger, &errors.StandardError{
			Code:      errors.ErrCodeDatabaseInsertFailed,
			Message:   pipeline.UserMessage(),
			Retryable: true,
		})
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, map[string]string{"status": "success"})
}

func (h *RegistrationHandler) lookupEvent(r *http.Request, eventID string) (*models.Event, error) {
	records, err := h.store.Select(r.Context(), storage.TableEvents, "date DESC")
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if recordString(rec, "id") == eventID {
			return &models.Event{
				ID:    eventID,
				Title: recordString(rec, "title"),
				Date:  recordString(rec, "date"),
				Venue: recordString(rec, "venue"),
			}, nil
		}
	}
	return nil, errors.NewRecordNotFoundError(storage.TableEvents, eventID)
}

func recordString(rec storage.Record, key string) string {
	s, _ := rec[key].(string)
	return s
}
