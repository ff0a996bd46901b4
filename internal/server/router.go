// internal/server/router.go
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"club-portal/internal/admin"
	"club-portal/internal/common/auth"
	"club-portal/internal/common/logger"
	"club-portal/internal/common/observability"
	"club-portal/internal/join"
	"club-portal/internal/notify"
	"club-portal/internal/storage"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Store    storage.Store
	Notifier *notify.Notifier
	Manager  *admin.Manager
	Join     *join.Service
	Sessions *auth.SessionClient
	Obs      *observability.Observability
	Logger   logger.Logger

	// StorageTimeout bounds each submission's storage write. Zero means no
	// bound beyond the request context.
	StorageTimeout time.Duration
}

// NewRouter builds the portal's ServeMux. Admin routes are wrapped with the
// session check; everything else is public.
func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()
	log := deps.Logger

	registrationHandler := NewRegistrationHandler(deps.Store, deps.Notifier, deps.Obs, deps.StorageTimeout, log)
	joinHandler := NewJoinHandler(deps.Join, deps.StorageTimeout, log)
	publicHandler := NewPublicHandler(deps.Manager, log)
	adminHandler := NewAdminHandler(deps.Manager, log)

	route := func(pattern string, handler http.HandlerFunc) {
		mux.HandleFunc(pattern, withObservability(pattern, log, handler))
	}
	adminRoute := func(pattern string, handler http.HandlerFunc) {
		route(pattern, requireSession(deps.Sessions, log, handler))
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Submissions
	route("POST /api/events/{id}/register", registrationHandler.Register)
	route("POST /api/join", joinHandler.Submit)

	// Public reads
	route("GET /api/events", publicHandler.ListEvents)
	route("GET /api/members", publicHandler.ListMembers)
	route("GET /api/gallery", publicHandler.ListGallery)

	// Content management
	adminRoute("GET /admin/stats", adminHandler.Stats)
	adminRoute("POST /admin/events", adminHandler.CreateEvent)
	adminRoute("PUT /admin/events/{id}", adminHandler.UpdateEvent)
	adminRoute("DELETE /admin/events/{id}", adminHandler.DeleteEvent)
	adminRoute("POST /admin/members", adminHandler.CreateMember)
	adminRoute("PUT /admin/members/{id}", adminHandler.UpdateMember)
	adminRoute("DELETE /admin/members/{id}", adminHandler.DeleteMember)
	adminRoute("POST /admin/gallery", adminHandler.CreateGalleryImage)
	adminRoute("PUT /admin/gallery/{id}", adminHandler.UpdateGalleryImage)
	adminRoute("DELETE /admin/gallery/{id}", adminHandler.DeleteGalleryImage)

	return mux
}
