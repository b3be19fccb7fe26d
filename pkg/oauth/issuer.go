// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"errors"
	"time"
)

// IssuancePolicy customizes the shared issuance routine. The zero
// value gives the standard behavior: reuse an unexpired stored token,
// refresh an expired one that carries a refresh token, create a fresh
// token otherwise. Only the implicit grant deviates from the defaults.
type IssuancePolicy struct {
	// ShouldReuse reports whether an existing, unexpired stored token
	// may be returned unchanged. Defaults to always true.
	ShouldReuse func(t *AccessToken) bool

	// ShouldRefresh reports whether an expired stored token should be
	// refreshed rather than replaced by a new one. Defaults to true
	// when the token carries a refresh token.
	ShouldRefresh func(t *AccessToken) bool

	// ShapeResult normalizes an issued token into the GrantResult
	// returned to the caller. Defaults to NewGrantResult.
	ShapeResult func(t *AccessToken) *GrantResult
}

func (p IssuancePolicy) shouldReuse(t *AccessToken) bool {
	if p.ShouldReuse == nil {
		return true
	}
	return p.ShouldReuse(t)
}

func (p IssuancePolicy) shouldRefresh(t *AccessToken) bool {
	if p.ShouldRefresh == nil {
		return t.RefreshToken != ""
	}
	return p.ShouldRefresh(t)
}

func (p IssuancePolicy) shapeResult(t *AccessToken) *GrantResult {
	if p.ShapeResult == nil {
		return NewGrantResult(t)
	}
	return p.ShapeResult(t)
}

// NewGrantResult normalizes a stored access token into the token
// response model. ExpiresIn is the remaining lifetime in seconds,
// omitted for non-expiring tokens.
func NewGrantResult(t *AccessToken) *GrantResult {
	result := &GrantResult{
		TokenType:    TokenTypeBearer,
		AccessToken:  t.Token,
		RefreshToken: t.RefreshToken,
		Scope:        t.Scope,
	}
	if t.ExpiresIn > 0 {
		remaining := int64(time.Until(t.CreatedAt.Add(t.ExpiresIn)) / time.Second)
		if remaining < 0 {
			remaining = 0
		}
		result.ExpiresIn = &remaining
	}
	return result
}

// issueAccessToken is the shared issuance routine used by every grant
// except refresh_token, which always forces a new token through the
// handler's refresh operation instead.
//
// An existing unexpired token for the same authorization context is
// reused unchanged so repeated requests do not churn tokens; an
// expired token is refreshed when it carries a refresh token and
// replaced otherwise. Expired tokens are never returned.
func issueAccessToken[U any](ctx context.Context, handler DataHandler[U], auth *AuthInfo[U], policy IssuancePolicy) (*GrantResult, error) {
	stored, err := handler.GetStoredAccessToken(ctx, auth)

	var token *AccessToken
	switch {
	case errors.Is(err, ErrNotFound):
		token, err = handler.CreateAccessToken(ctx, auth)
	case err != nil:
		return nil, err
	case !handler.IsAccessTokenExpired(stored):
		if policy.shouldReuse(stored) {
			token = stored
		} else {
			token, err = handler.CreateAccessToken(ctx, auth)
		}
	case policy.shouldRefresh(stored):
		token, err = handler.RefreshAccessToken(ctx, auth, stored.RefreshToken)
	default:
		token, err = handler.CreateAccessToken(ctx, auth)
	}
	if err != nil {
		return nil, err
	}

	return policy.shapeResult(token), nil
}
