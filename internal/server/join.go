// internal/server/join.go
package server

import (
	"context"
	"net/http"
	"time"

	"club-portal/internal/common/logger"
	"club-portal/internal/join"
	"club-portal/internal/models"
)

// JoinHandler serves membership applications.
type JoinHandler struct {
	service        *join.Service
	storageTimeout time.Duration
	logger         logger.Logger
}

func NewJoinHandler(service *join.Service, storageTimeout time.Duration, log logger.Logger) *JoinHandler {
	return &JoinHandler{
		service:        service,
		storageTimeout: storageTimeout,
		logger:         log.WithFields(map[string]interface{}{"handler": "join"}),
	}
}

// Submit handles POST /api/join.
func (h *JoinHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var app models.JoinApplication
	if err := decodeJSON(r, &app); err != nil {
		writeError(w, h.logger, err)
		return
	}

	ctx := r.Context()
	if h.storageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.storageTimeout)
		defer cancel()
	}

	if err := h.service.Submit(ctx, app); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, map[string]string{"status": "success"})
}
