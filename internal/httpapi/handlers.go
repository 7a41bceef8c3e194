package httpapi

import "net/http"

// Healthz is the liveness probe; it carries no game semantics.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
