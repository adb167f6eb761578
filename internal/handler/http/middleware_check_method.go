// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-leave-desk/internal/app"
	"github.com/MKhiriev/go-leave-desk/internal/utils"
	"github.com/MKhiriev/go-leave-desk/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers 404 with a JSON error body, so a
// caller using the wrong method cannot tell that the path exists. Requests
// whose method does match (per [chi.Mux.Match], which also expands URL
// parameters) are handed back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
	}
}
