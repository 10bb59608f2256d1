// Package web serves the search API over HTTP.
package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"parkfinder/internal/search"
)

// Server hosts the HTTP API in front of a search service.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and HTTP server for the given listen address.
func NewServer(addr string, svc *search.Service) *Server {
	handler := &Handler{Service: svc}

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", handler.SearchPlaces).Methods(http.MethodGet)
	api.HandleFunc("/parks", handler.SearchCuratedParks).Methods(http.MethodGet)
	api.HandleFunc("/parks/{id}", handler.GetPark).Methods(http.MethodGet)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start runs the server until the context is canceled, then shuts it down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
