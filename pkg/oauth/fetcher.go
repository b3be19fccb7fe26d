// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import "strings"

// TokenFetcher locates a bearer token within a protected-resource
// request. Matches reports whether the fetcher applies to the request
// at all; Fetch extracts the token string and fails with
// invalid_request when the matched location is malformed.
type TokenFetcher interface {
	Matches(req *ProtectedResourceRequest) bool
	Fetch(req *ProtectedResourceRequest) (string, error)
}

// defaultTokenFetchers is the ordered strategy list used when none is
// configured. Order matters: the header wins when both are present.
func defaultTokenFetchers() []TokenFetcher {
	return []TokenFetcher{AuthHeaderFetcher{}, RequestParameterFetcher{}}
}

// AuthHeaderFetcher reads a bearer token from the Authorization
// header. Both the "Bearer" and legacy "OAuth" schemes are accepted.
type AuthHeaderFetcher struct{}

// Matches implements TokenFetcher.
func (AuthHeaderFetcher) Matches(req *ProtectedResourceRequest) bool {
	scheme, _, _ := strings.Cut(strings.TrimSpace(req.Header("Authorization")), " ")
	return strings.EqualFold(scheme, "Bearer") || strings.EqualFold(scheme, "OAuth")
}

// Fetch implements TokenFetcher.
func (AuthHeaderFetcher) Fetch(req *ProtectedResourceRequest) (string, error) {
	_, rest, _ := strings.Cut(strings.TrimSpace(req.Header("Authorization")), " ")
	token := strings.TrimSpace(rest)
	if token == "" {
		return "", NewInvalidRequestError("access token in authorization header is malformed")
	}
	return token, nil
}

// RequestParameterFetcher reads a bearer token from the access_token
// request parameter (oauth_token is accepted as a legacy alias).
type RequestParameterFetcher struct{}

// Matches implements TokenFetcher.
func (RequestParameterFetcher) Matches(req *ProtectedResourceRequest) bool {
	return req.Param("access_token") != "" || req.Param("oauth_token") != ""
}

// Fetch implements TokenFetcher.
func (RequestParameterFetcher) Fetch(req *ProtectedResourceRequest) (string, error) {
	if token := req.Param("access_token"); token != "" {
		return token, nil
	}
	if token := req.Param("oauth_token"); token != "" {
		return token, nil
	}
	return "", NewInvalidRequestError("access token was not specified")
}
