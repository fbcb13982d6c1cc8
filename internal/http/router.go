package http

import (
	nethttp "net/http"

	"github.com/mirrormods/scores-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/healthz", handler.Healthz)
	mux.HandleFunc("/view", handler.View)
	mux.HandleFunc("/games/", handler.Games)
	mux.HandleFunc("/standings/", handler.Standings)
	return mux
}
