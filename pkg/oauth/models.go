// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import "time"

// TokenTypeBearer is the only token type this core issues.
const TokenTypeBearer = "Bearer"

// AuthInfo is the resolved authorization context produced by a
// successful grant validation: a user value of the application's own
// type U bound to a client, a scope, and optionally the redirect URI
// recorded at code issuance. It is the unit of identity an access
// token is bound to, and the key the DataHandler stores tokens under.
type AuthInfo[U any] struct {
	// User is the application's resolved user value
	User U

	// ClientID is the client the authorization is bound to. Once bound
	// at issuance time it must match the presenting client on every
	// later use of a code or refresh token tied to this context.
	ClientID string

	// Scope is the granted scope, if any
	Scope string

	// RedirectURI is the redirect URI bound at code-issuance time, if
	// any. When set, the token request must present the same value.
	RedirectURI string
}

// AccessToken is a stored opaque access token. It is owned by the
// DataHandler; the core only reads it and commands its creation or
// refresh.
type AccessToken struct {
	// Token is the opaque token string
	Token string

	// RefreshToken is the linked refresh token string, if any
	RefreshToken string

	// Scope is the scope the token was issued with, if any
	Scope string

	// ExpiresIn is the token lifetime from CreatedAt. Zero means the
	// token never expires.
	ExpiresIn time.Duration

	// CreatedAt is when the token was created or last refreshed
	CreatedAt time.Time
}

// IsExpired reports whether the token's validity window has elapsed.
// Tokens without a lifetime never expire.
func (t *AccessToken) IsExpired() bool {
	if t.ExpiresIn <= 0 {
		return false
	}
	return time.Now().After(t.CreatedAt.Add(t.ExpiresIn))
}

// GrantResult is the externally visible success value of a grant. The
// JSON shape matches the RFC 6749 §5.1 token response so integrating
// layers can serialize it directly.
type GrantResult struct {
	// TokenType is always TokenTypeBearer
	TokenType string `json:"token_type"`

	// AccessToken is the issued opaque access token string
	AccessToken string `json:"access_token"`

	// ExpiresIn is the remaining token lifetime in seconds; nil when
	// the token never expires
	ExpiresIn *int64 `json:"expires_in,omitempty"`

	// RefreshToken is the linked refresh token, if one was issued
	RefreshToken string `json:"refresh_token,omitempty"`

	// Scope is the granted scope, if any
	Scope string `json:"scope,omitempty"`
}
