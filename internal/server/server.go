// Package server exposes the disambiguation engine over HTTP, adapted
// from the teacher's static-map web server: the same mux-plus-handlers
// shape, now fronting a stateless computation endpoint instead of a
// read-only data store, and guarded by an inbound rate limiter.
package server

import (
	"fmt"
	"net/http"

	"github.com/intelligrit/geodis/internal/gazetteer"
)

// Server serves the disambiguation API over a preloaded, read-only
// gazetteer. A single Dictionary is safe to share across concurrent
// requests — FindLocations only ever reads it (spec §5).
type Server struct {
	Dict  *gazetteer.Dictionary
	Addr  string
	Limit *RateLimiter
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/disambiguate", s.handleDisambiguate)
	mux.HandleFunc("/api/status", s.handleStatus)

	var handler http.Handler = mux
	if s.Limit != nil {
		handler = s.Limit.Middleware(mux)
	}

	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, handler)
}
