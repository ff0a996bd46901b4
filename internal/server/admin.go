// internal/server/admin.go
package server

import (
	"context"
	"net/http"

	"club-portal/internal/admin"
	"club-portal/internal/common/logger"
)

// AdminHandler serves the session-guarded content management surface.
type AdminHandler struct {
	manager *admin.Manager
	logger  logger.Logger
}

func NewAdminHandler(manager *admin.Manager, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		manager: manager,
		logger:  log.WithFields(map[string]interface{}{"handler": "admin"}),
	}
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.manager.Stats(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, stats)
}

func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.manager.CreateEvent)
}

func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.manager.UpdateEvent)
}

func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.manager.DeleteEvent)
}

func (h *AdminHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.manager.CreateMember)
}

func (h *AdminHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.manager.UpdateMember)
}

func (h *AdminHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.manager.DeleteMember)
}

func (h *AdminHandler) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.manager.CreateGalleryImage)
}

func (h *AdminHandler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.manager.UpdateGalleryImage)
}

func (h *AdminHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.manager.DeleteGalleryImage)
}

func (h *AdminHandler) create(w http.ResponseWriter, r *http.Request, op func(context.Context, map[string]interface{}) error) {
	var payload map[string]interface{}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := op(r.Context(), payload); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *AdminHandler) update(w http.ResponseWriter, r *http.Request, op func(context.Context, string, map[string]interface{}) error) {
	var payload map[string]interface{}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := op(r.Context(), r.PathValue("id"), payload); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request, op func(context.Context, string) error) {
	if err := op(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "deleted"})
}
