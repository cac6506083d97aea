package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/preston-bernstein/lol-match-coach/internal/http/handlers"
)

// NewRouter registers method-scoped routes and wraps them with CORS.
// An empty origin list allows any origin.
func NewRouter(handler *handlers.Handler, allowedOrigins []string) nethttp.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	router.HandleFunc("/analyze", handler.Analyze).Methods(nethttp.MethodPost)
	router.HandleFunc("/analizar", handler.Analyze).Methods(nethttp.MethodPost)
	router.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	router.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         600,
	})
	return c.Handler(router)
}
