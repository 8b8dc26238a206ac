// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.welcome)
	router.Handle("/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.me)
				r.Post("/logout", h.logout)
			})
		})

		r.Route("/careers", func(r chi.Router) {
			r.Get("/", h.listCareers)
			r.Get("/search/by-skill", h.searchCareersBySkill)
			r.With(h.auth).Get("/recommendations", h.recommendCareers)
			r.Get("/{id}", h.getCareer)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createCareer)
				r.Put("/{id}", h.updateCareer)
				r.Delete("/{id}", h.deleteCareer)
			})
		})

		r.Route("/assessments", func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.submitAssessment)
			r.Get("/", h.listAssessments)
			r.Get("/{id}", h.getAssessment)
		})

		r.Route("/students", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listStudents)
			r.Get("/{id}", h.getStudent)
			r.Put("/{id}", h.updateStudent)
			r.Delete("/{id}", h.deleteStudent)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
