// internal/server/public.go
package server

import (
	"context"
	"net/http"

	"club-portal/internal/admin"
	"club-portal/internal/common/logger"
	"club-portal/internal/storage"
)

// PublicHandler serves the read-only site content.
type PublicHandler struct {
	manager *admin.Manager
	logger  logger.Logger
}

func NewPublicHandler(manager *admin.Manager, log logger.Logger) *PublicHandler {
	return &PublicHandler{
		manager: manager,
		logger:  log.WithFields(map[string]interface{}{"handler": "public"}),
	}
}

// ListEvents handles GET /api/events.
func (h *PublicHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.manager.ListEvents)
}

// ListMembers handles GET /api/members.
func (h *PublicHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.manager.ListMembers)
}

// ListGallery handles GET /api/gallery.
func (h *PublicHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.manager.ListGallery)
}

func (h *PublicHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]storage.Record, error)) {
	records, err := fetch(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if records == nil {
		records = []storage.Record{}
	}
	writeJSON(w, h.logger, http.StatusOK, records)
}
