// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package api provides the HTTP handlers for the demo OAuth server.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/oauthcore/pkg/logger"
	"github.com/stacklok/oauthcore/pkg/oauth"
	"github.com/stacklok/oauthcore/pkg/oauth/memstore"
)

// Server exposes the token endpoint and a protected resource over HTTP.
type Server struct {
	store    *memstore.Store
	endpoint *oauth.TokenEndpoint[memstore.User]
	resource *oauth.ProtectedResource[memstore.User]
}

// NewServer creates a Server wired to the given store and grant engine.
func NewServer(
	store *memstore.Store,
	endpoint *oauth.TokenEndpoint[memstore.User],
	resource *oauth.ProtectedResource[memstore.User],
) *Server {
	return &Server{store: store, endpoint: endpoint, resource: resource}
}

// Routes registers the demo endpoints on the provided router.
func (s *Server) Routes(r chi.Router) {
	// Token endpoint (RFC 6749 section 3.2)
	r.Post("/oauth/token", s.TokenHandler)

	// Protected resource guarded by bearer token validation
	r.Get("/resource", s.ResourceHandler)

	// Development helper that mints an authorization code, standing in
	// for the user-facing authorization endpoint this demo doesn't have.
	r.Post("/dev/authcode", s.AuthCodeHandler)
}

// TokenHandler handles POST /oauth/token. The client authenticates via
// HTTP Basic auth or client_id/client_secret form parameters.
func (s *Server) TokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeOAuthError(w, oauth.NewInvalidRequestError("request body is malformed"))
		return
	}

	req := &oauth.AuthorizationRequest{
		GrantType:    r.PostFormValue("grant_type"),
		ClientID:     r.PostFormValue("client_id"),
		Scope:        r.PostFormValue("scope"),
		RedirectURI:  r.PostFormValue("redirect_uri"),
		Code:         r.PostFormValue("code"),
		RefreshToken: r.PostFormValue("refresh_token"),
		Headers:      r.Header,
		Params:       r.Form,
	}

	result, err := s.endpoint.Handle(r.Context(), req, clientCredential(r))
	if err != nil {
		writeOAuthError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, result)
}

// ResourceHandler handles GET /resource. It validates the bearer token
// and echoes the authorization context it resolved to.
func (s *Server) ResourceHandler(w http.ResponseWriter, r *http.Request) {
	auth, err := s.resource.Validate(r.Context(), &oauth.ProtectedResourceRequest{
		Headers: r.Header,
		Params:  r.URL.Query(),
	})
	if err != nil {
		writeOAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"user_id":   auth.User.ID,
		"username":  auth.User.Username,
		"client_id": auth.ClientID,
		"scope":     auth.Scope,
	})
}

// AuthCodeHandler handles POST /dev/authcode with username, client_id,
// scope, and redirect_uri form parameters.
func (s *Server) AuthCodeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeOAuthError(w, oauth.NewInvalidRequestError("request body is malformed"))
		return
	}

	code, err := s.store.IssueAuthCode(
		r.PostFormValue("username"),
		r.PostFormValue("client_id"),
		r.PostFormValue("scope"),
		r.PostFormValue("redirect_uri"),
	)
	if errors.Is(err, oauth.ErrNotFound) {
		writeOAuthError(w, oauth.NewInvalidRequestError("user is unknown"))
		return
	}
	if err != nil {
		writeOAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"code": code})
}

// clientCredential extracts the client credential from Basic auth or
// form parameters, in that order. Returns nil when neither is present.
func clientCredential(r *http.Request) *oauth.ClientCredential {
	if id, secret, ok := r.BasicAuth(); ok {
		return &oauth.ClientCredential{ClientID: id, ClientSecret: secret}
	}
	if id := r.PostFormValue("client_id"); id != "" {
		return &oauth.ClientCredential{ClientID: id, ClientSecret: r.PostFormValue("client_secret")}
	}
	return nil
}

// errorResponse is the RFC 6749 section 5.2 error body.
type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// writeOAuthError maps protocol errors to their RFC status code and
// body. Anything else is an infrastructure failure and becomes a 500.
func writeOAuthError(w http.ResponseWriter, err error) {
	var oauthErr *oauth.Error
	if errors.As(err, &oauthErr) {
		writeJSON(w, oauthErr.StatusCode, errorResponse{
			Error:       oauthErr.Type,
			Description: oauthErr.Description,
		})
		return
	}

	logger.Errorw("internal error handling request", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "server_error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorw("failed to encode response", "error", err)
	}
}
