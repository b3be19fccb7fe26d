// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"net/http"
	"net/url"
)

// AuthorizationRequest carries the parsed parameters of a single token
// request. The integrating layer builds one per inbound request (for
// example from a form-encoded POST body) and must treat it as read-only
// afterwards; the core never mutates it.
type AuthorizationRequest struct {
	// GrantType is the requested grant type string (see the GrantType constants)
	GrantType string

	// ClientID is the client identifier carried in the request itself,
	// as opposed to the one in the ClientCredential. Only the implicit
	// grant reads it.
	ClientID string

	// Scope is the requested scope, if any
	Scope string

	// RedirectURI is the redirect URI presented with an authorization code
	RedirectURI string

	// Code is the authorization code being exchanged
	Code string

	// RefreshToken is the refresh token being exchanged
	RefreshToken string

	// Headers are the inbound request headers
	Headers http.Header

	// Params are any extra request parameters not captured by the
	// dedicated fields
	Params url.Values
}

// Header returns the named request header value, or "" when the header
// map is nil or the header is absent.
func (r *AuthorizationRequest) Header(name string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(name)
}

// Param returns the named extra parameter value, or "" when the
// parameter map is nil or the parameter is absent.
func (r *AuthorizationRequest) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params.Get(name)
}

// ProtectedResourceRequest carries the headers and parameters of an
// inbound protected-resource access, from which a bearer token is
// located. One per request; read-only once built.
type ProtectedResourceRequest struct {
	// Headers are the inbound request headers
	Headers http.Header

	// Params are the inbound request parameters
	Params url.Values
}

// Header returns the named request header value, or "" when absent.
func (r *ProtectedResourceRequest) Header(name string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(name)
}

// Param returns the named request parameter value, or "" when absent.
func (r *ProtectedResourceRequest) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params.Get(name)
}

// ClientCredential is a client id and optional secret, supplied by the
// integrating layer after parsing Basic auth or body parameters.
type ClientCredential struct {
	// ClientID is the client identifier
	ClientID string

	// ClientSecret is the client secret; empty for public clients
	ClientSecret string
}
