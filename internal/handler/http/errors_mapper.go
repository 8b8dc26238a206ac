// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/utils"
	"github.com/MKhiriev/career-compass/models"
)

var kindStatusMap = map[models.ErrorKind]int{
	models.KindInvalidInput:    http.StatusBadRequest,
	models.KindValidation:      http.StatusBadRequest,
	models.KindUnauthenticated: http.StatusUnauthorized,
	models.KindForbidden:       http.StatusForbidden,
	models.KindNotFound:        http.StatusNotFound,
	models.KindConflict:        http.StatusConflict,
	models.KindPersistence:     http.StatusInternalServerError,
	models.KindInternal:        http.StatusInternalServerError,
}

func statusFromError(err error) (int, models.ErrorKind) {
	kind := models.KindOf(err)
	status, ok := kindStatusMap[kind]
	if !ok {
		return http.StatusInternalServerError, models.KindInternal
	}
	return status, kind
}

// writeError answers with the error envelope. Server-side failures are
// logged and their message replaced so that no internals leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := statusFromError(err)
	message := err.Error()

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", string(kind)).Msg("request failed")
		message = errInternal.Error()
		if kind == models.KindPersistence {
			message = "storage operation failed"
		}
	} else {
		log.Debug().Err(err).Str("kind", string(kind)).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Error:   models.ErrorBody{Kind: kind, Message: message},
	}, status)
}

func writeData(w http.ResponseWriter, data any, status int) {
	utils.WriteJSON(w, models.Response{Success: true, Data: data}, status)
}
