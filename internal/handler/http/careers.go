// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/career-compass/internal/utils"
	"github.com/MKhiriev/career-compass/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCareers(w http.ResponseWriter, r *http.Request) {
	careers, err := h.services.CareerService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, careers, http.StatusOK)
}

func (h *Handler) getCareer(w http.ResponseWriter, r *http.Request) {
	career, err := h.services.CareerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, career, http.StatusOK)
}

func (h *Handler) searchCareersBySkill(w http.ResponseWriter, r *http.Request) {
	careers, err := h.services.CareerService.SearchBySkill(r.Context(), r.URL.Query().Get("skill"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, careers, http.StatusOK)
}

// recommendCareers reads trait, type and skills (comma separated or
// repeated) from the query string.
func (h *Handler) recommendCareers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := models.RecommendationRequest{
		Trait:    strings.TrimSpace(query.Get("trait")),
		TypeCode: strings.TrimSpace(query.Get("type")),
		Skills:   splitList(query["skills"]),
	}

	careers, err := h.services.CareerService.Recommend(r.Context(), identity(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, careers, http.StatusOK)
}

func (h *Handler) createCareer(w http.ResponseWriter, r *http.Request) {
	var career models.Career
	if err := utils.DecodeJSON(r, &career); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.CareerService.Create(r.Context(), identity(r), career)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, created, http.StatusCreated)
}

func (h *Handler) updateCareer(w http.ResponseWriter, r *http.Request) {
	var update models.CareerUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.CareerService.Update(r.Context(), identity(r), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, updated, http.StatusOK)
}

func (h *Handler) deleteCareer(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CareerService.Delete(r.Context(), identity(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.Response{Success: true, Message: "Career deleted successfully"}, http.StatusOK)
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
