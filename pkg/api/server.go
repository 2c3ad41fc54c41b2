// Package api exposes the distribution batch service over HTTP. The
// routes mirror the admin front-end's expectations: upload-and-parse,
// whole-batch save, latest-batch fetch, and single-cell edits.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hadesxkore/bhss-distribution/pkg/store"
)

// DefaultMaxUploadBytes caps multipart workbook uploads.
const DefaultMaxUploadBytes = 32 << 20

// Server routes distribution API requests to a Store.
type Server struct {
	store          store.Store
	maxUploadBytes int64
	router         chi.Router
}

// NewServer builds the HTTP surface over st. maxUploadBytes of 0 selects
// the default upload cap.
func NewServer(st store.Store, maxUploadBytes int64) *Server {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	s := &Server{store: st, maxUploadBytes: maxUploadBytes}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/admin/distribution/{commodity}", func(r chi.Router) {
		r.Post("/imports", s.handleImport)
		r.Post("/batches", s.handleSaveBatch)
		r.Get("/batches/latest", s.handleLatestBatch)
		r.Patch("/rows/{rowID}", s.handleUpdateRow)
	})

	s.router = r
	return s
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
