package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type RouterOptions struct {
	// AuthMiddleware guards every resource route. /healthz is always open.
	AuthMiddleware func(http.Handler) http.Handler
	// CORSOrigins enables CORS for the listed origins when non-empty.
	CORSOrigins []string
	Logger      *zap.Logger
}

// NewRouter constructs the API HTTP router without auth.
func NewRouter(s *Server) http.Handler {
	return NewRouterWithOptions(s, RouterOptions{})
}

// NewRouterWithOptions wires middleware and the resource routes onto s.
func NewRouterWithOptions(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.Logger != nil {
		r.Use(requestLogger(opts.Logger))
	}
	r.Use(middleware.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key", "X-Request-Id", "X-Debug-Subject"},
			ExposedHeaders:   []string{"X-Request-Id", "Idempotent-Replayed"},
			AllowCredentials: true,
		}).Handler)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if opts.AuthMiddleware != nil {
			r.Use(opts.AuthMiddleware)
		}

		r.Route("/clubs", func(r chi.Router) {
			r.Get("/", s.listClubs)
			r.Post("/", s.createClub)
			r.Get("/search", s.searchClubs)
			r.Get("/category", s.clubsByCategory)
			r.Get("/{id}", s.getClub)
			r.Put("/{id}", s.updateClub)
			r.Delete("/{id}", s.deleteClub)
		})
		r.Route("/applications", func(r chi.Router) {
			r.Get("/", s.listMemberships)
			r.Post("/", s.createMembership)
			r.Get("/{id}", s.getMembership)
			r.Delete("/{id}", s.deleteMembership)
		})
		r.Route("/admins", func(r chi.Router) {
			r.Get("/", s.listAdmins)
			r.Post("/", s.createAdmin)
			r.Get("/{id}", s.getAdmin)
			r.Put("/{id}", s.updateAdmin)
			r.Delete("/{id}", s.deleteAdmin)
		})
		r.Route("/board-members", func(r chi.Router) {
			r.Get("/", s.listBoardMembers)
			r.Post("/", s.createBoardMember)
			r.Get("/{id}", s.getBoardMember)
			r.Put("/{id}", s.updateBoardMember)
			r.Delete("/{id}", s.deleteBoardMember)
		})
		r.Route("/committees", func(r chi.Router) {
			r.Get("/", s.listCommittees)
			r.Post("/", s.createCommittee)
			r.Get("/{id}", s.getCommittee)
			r.Put("/{id}", s.updateCommittee)
			r.Delete("/{id}", s.deleteCommittee)
		})
	})
	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("took", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
