// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler
// via [chi.Mux.MethodNotAllowed].
//
// Chi calls it only when the path matched a route and the method did not.
// It answers with the 404 error envelope instead of 405, hiding the
// existence of the route from callers that use an unsupported method.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}
