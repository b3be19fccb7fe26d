// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"errors"
	"log/slog"
)

// ProtectedResource validates a bearer token presented on a resource
// request and resolves it back to the authorization context that
// produced it. It is safe for concurrent use.
type ProtectedResource[U any] struct {
	handler  DataHandler[U]
	fetchers []TokenFetcher
	logger   *slog.Logger
}

// ProtectedResourceOption configures a ProtectedResource instance.
type ProtectedResourceOption[U any] func(*ProtectedResource[U])

// WithTokenFetchers replaces the default ordered fetcher list
// (Authorization header first, then request parameter).
func WithTokenFetchers[U any](fetchers ...TokenFetcher) ProtectedResourceOption[U] {
	return func(p *ProtectedResource[U]) {
		p.fetchers = fetchers
	}
}

// WithResourceLogger sets the logger used by the validator.
func WithResourceLogger[U any](logger *slog.Logger) ProtectedResourceOption[U] {
	return func(p *ProtectedResource[U]) {
		p.logger = logger
	}
}

// NewProtectedResource creates a validator backed by the given
// DataHandler.
func NewProtectedResource[U any](handler DataHandler[U], opts ...ProtectedResourceOption[U]) *ProtectedResource[U] {
	p := &ProtectedResource[U]{handler: handler}
	for _, opt := range opts {
		opt(p)
	}
	if p.fetchers == nil {
		p.fetchers = defaultTokenFetchers()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Validate locates the bearer token on the request, checks it against
// storage and expiry, and returns the bound authorization context.
// Protocol failures are returned as *Error; DataHandler infrastructure
// failures pass through unchanged.
func (p *ProtectedResource[U]) Validate(ctx context.Context, req *ProtectedResourceRequest) (*AuthInfo[U], error) {
	var fetcher TokenFetcher
	for _, f := range p.fetchers {
		if f.Matches(req) {
			fetcher = f
			break
		}
	}
	if fetcher == nil {
		return nil, NewInvalidRequestError("access token was not specified")
	}

	tokenString, err := fetcher.Fetch(req)
	if err != nil {
		return nil, err
	}

	token, err := p.handler.FindAccessToken(ctx, tokenString)
	if errors.Is(err, ErrNotFound) {
		return nil, NewInvalidTokenError("access token is invalid")
	}
	if err != nil {
		return nil, err
	}
	if p.handler.IsAccessTokenExpired(token) {
		p.logger.Debug("rejecting expired access token")
		return nil, NewExpiredTokenError("access token has expired")
	}

	auth, err := p.handler.FindAuthInfoByAccessToken(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return nil, NewInvalidTokenError("invalid access token")
	}
	if err != nil {
		return nil, err
	}
	return auth, nil
}
