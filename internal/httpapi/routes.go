package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netbattle/arena-backend/internal/ws"
)

func SetupRoutes(d *ws.Dispatcher) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", d.Handler())
	return r
}
