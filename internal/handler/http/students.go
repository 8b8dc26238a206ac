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

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.services.StudentService.List(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, students, http.StatusOK)
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.services.StudentService.Get(r.Context(), identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, student, http.StatusOK)
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	student, err := h.services.StudentService.Update(r.Context(), identity(r), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, student, http.StatusOK)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.services.StudentService.Delete(r.Context(), identity(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.Response{Success: true, Message: "Student deleted successfully"}, http.StatusOK)
}
