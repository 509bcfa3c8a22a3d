// Package server is the listing HTTP service: the REST API the terminal app
// reads from, the image assets, and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/angristan/homeshowcase/internal/store"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Options configures the listing server
type Options struct {
	// Directory served under /assets/. Empty disables asset serving.
	AssetsDir string
}

// Server serves one listing database
type Server struct {
	store  *store.Store
	router *mux.Router
	now    func() time.Time
}

// New creates a server over st
func New(st *store.Store, opts Options) *Server {
	s := &Server{
		store: st,
		now:   time.Now,
	}
	s.router = s.setupRouter(opts)
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter(opts Options) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger, metricsRecorder)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods("GET")
	api.HandleFunc("/property", s.getProperty).Methods("GET")
	api.HandleFunc("/property/full", s.getPropertyWithRooms).Methods("GET")
	api.HandleFunc("/rooms", s.listRooms).Methods("GET")
	api.HandleFunc("/rooms/{id:[0-9]+}", s.getRoom).Methods("GET")
	api.HandleFunc("/viewing-requests", s.createViewingRequest).Methods("POST")
	api.HandleFunc("/viewing-requests", s.listViewingRequests).Methods("GET")
	api.HandleFunc("/viewing-requests/{id:[0-9]+}", s.updateViewingStatus).Methods("PATCH")

	if opts.AssetsDir != "" {
		r.PathPrefix("/assets/").Handler(
			http.StripPrefix("/assets/", http.FileServer(http.Dir(opts.AssetsDir)))).Methods("GET", "HEAD")
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listing server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down listing server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
