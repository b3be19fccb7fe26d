// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

//go:generate mockgen -destination=mocks/mock_handler.go -package=mocks -source=handler.go DataHandler

import "context"

// DataHandler is the capability boundary the core calls out to. The
// integrating application implements it on top of its own storage and
// authentication systems; the core itself holds no state.
//
// Lookup operations signal "does not resolve" by returning ErrNotFound
// (possibly wrapped), which the core maps to the protocol error
// appropriate for the operation in progress. Every other error is an
// infrastructure failure and propagates to the caller unchanged.
//
// Implementations must be safe for concurrent use; the core issues the
// calls for a single request strictly sequentially but handles
// independent requests without coordination.
type DataHandler[U any] interface {
	// FindAuthInfoByCode looks up the authorization context bound to an
	// authorization code.
	FindAuthInfoByCode(ctx context.Context, code string) (*AuthInfo[U], error)

	// FindAuthInfoByRefreshToken looks up the authorization context
	// bound to a refresh token.
	FindAuthInfoByRefreshToken(ctx context.Context, refreshToken string) (*AuthInfo[U], error)

	// FindAuthInfoByAccessToken resolves the authorization context
	// bound to a validated access token.
	FindAuthInfoByAccessToken(ctx context.Context, token *AccessToken) (*AuthInfo[U], error)

	// DeleteAuthCode removes a consumed authorization code.
	DeleteAuthCode(ctx context.Context, code string) error

	// FindAccessToken looks up a stored access token by its opaque
	// token string.
	FindAccessToken(ctx context.Context, token string) (*AccessToken, error)

	// GetStoredAccessToken returns the access token previously issued
	// for the given authorization context, if one exists.
	GetStoredAccessToken(ctx context.Context, auth *AuthInfo[U]) (*AccessToken, error)

	// CreateAccessToken creates and stores a new access token for the
	// given authorization context.
	CreateAccessToken(ctx context.Context, auth *AuthInfo[U]) (*AccessToken, error)

	// RefreshAccessToken replaces an expired token with a fresh one
	// linked to the same authorization context.
	RefreshAccessToken(ctx context.Context, auth *AuthInfo[U], refreshToken string) (*AccessToken, error)

	// IsAccessTokenExpired reports whether a stored token should be
	// considered expired. Implementations usually delegate to the
	// token's own IsExpired but may apply stricter policy.
	IsAccessTokenExpired(token *AccessToken) bool

	// FindUser authenticates a resource owner by username and password.
	FindUser(ctx context.Context, username, password string) (U, error)

	// FindClientUser resolves the identity representing the client
	// itself for the client_credentials grant, scoped by the requested
	// scope.
	FindClientUser(ctx context.Context, cred ClientCredential, scope string) (U, error)

	// FindUserFromRequest resolves a user directly from an
	// implicit-grant authorization request.
	FindUserFromRequest(ctx context.Context, req *AuthorizationRequest) (U, error)
}
