// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/career-compass/internal/utils"
	"github.com/MKhiriev/career-compass/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) submitAssessment(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAssessmentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	assessment, err := h.services.AssessmentService.Submit(r.Context(), identity(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, assessment, http.StatusCreated)
}

func (h *Handler) listAssessments(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.AssessmentService.ListForOwner(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, list, http.StatusOK)
}

func (h *Handler) getAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.services.AssessmentService.Get(r.Context(), identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, assessment, http.StatusOK)
}
