// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
)

// Grant type strings from RFC 6749.
const (
	// GrantTypeAuthorizationCode exchanges an authorization code for a token
	GrantTypeAuthorizationCode = "authorization_code"

	// GrantTypeRefreshToken exchanges a refresh token for a new access token
	GrantTypeRefreshToken = "refresh_token"

	// GrantTypePassword exchanges resource-owner credentials for a token
	GrantTypePassword = "password"

	// GrantTypeClientCredentials issues a token for the client's own identity
	GrantTypeClientCredentials = "client_credentials"

	// GrantTypeImplicit issues a short-lived token directly to a public client
	GrantTypeImplicit = "implicit"
)

// GrantHandler is the strategy contract shared by all grant types:
// validate the request and the presenting client, then delegate to the
// shared issuance routine. Strategies are stateless; all I/O goes
// through the DataHandler.
type GrantHandler[U any] interface {
	Handle(ctx context.Context, req *AuthorizationRequest, cred *ClientCredential, handler DataHandler[U]) (*GrantResult, error)
}

// TokenEndpoint dispatches a token request to the grant handler
// matching its grant type. It is safe for concurrent use.
type TokenEndpoint[U any] struct {
	handler            DataHandler[U]
	logger             *slog.Logger
	publicPasswordAuth bool
}

// TokenEndpointOption configures a TokenEndpoint instance.
type TokenEndpointOption[U any] func(*TokenEndpoint[U])

// WithLogger sets the logger used by the endpoint and its grant
// handlers.
func WithLogger[U any](logger *slog.Logger) TokenEndpointOption[U] {
	return func(e *TokenEndpoint[U]) {
		e.logger = logger
	}
}

// WithPublicPasswordClients allows the password grant to be used
// without a client credential. By default the credential is required.
func WithPublicPasswordClients[U any]() TokenEndpointOption[U] {
	return func(e *TokenEndpoint[U]) {
		e.publicPasswordAuth = true
	}
}

// NewTokenEndpoint creates a TokenEndpoint backed by the given
// DataHandler.
func NewTokenEndpoint[U any](handler DataHandler[U], opts ...TokenEndpointOption[U]) *TokenEndpoint[U] {
	e := &TokenEndpoint[U]{handler: handler}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Handle validates the grant carried by the request and returns the
// normalized token response. Protocol failures are returned as *Error;
// DataHandler infrastructure failures pass through unchanged.
func (e *TokenEndpoint[U]) Handle(ctx context.Context, req *AuthorizationRequest, cred *ClientCredential) (*GrantResult, error) {
	var grant GrantHandler[U]
	switch req.GrantType {
	case GrantTypeAuthorizationCode:
		grant = &AuthorizationCodeGrant[U]{Logger: e.logger}
	case GrantTypeRefreshToken:
		grant = &RefreshTokenGrant[U]{}
	case GrantTypePassword:
		grant = &PasswordGrant[U]{AllowPublicClient: e.publicPasswordAuth}
	case GrantTypeClientCredentials:
		grant = &ClientCredentialsGrant[U]{}
	case GrantTypeImplicit:
		grant = &ImplicitGrant[U]{}
	default:
		return nil, NewUnsupportedGrantTypeError("grant type is not supported: " + req.GrantType)
	}

	e.logger.Debug("handling token request", "grant_type", req.GrantType)
	return grant.Handle(ctx, req, cred, e.handler)
}

// AuthorizationCodeGrant exchanges an authorization code for an access
// token, verifying the client binding and the redirect URI recorded at
// code issuance.
type AuthorizationCodeGrant[U any] struct {
	// Logger receives the warning when deleting a consumed code fails;
	// nil falls back to slog.Default.
	Logger *slog.Logger
}

// Handle implements GrantHandler.
func (g *AuthorizationCodeGrant[U]) Handle(ctx context.Context, req *AuthorizationRequest, cred *ClientCredential, handler DataHandler[U]) (*GrantResult, error) {
	if cred == nil || cred.ClientID == "" {
		return nil, NewInvalidRequestError("client credential was not specified")
	}
	if req.Code == "" {
		return nil, NewInvalidRequestError("authorization code was not specified")
	}

	auth, err := handler.FindAuthInfoByCode(ctx, req.Code)
	if errors.Is(err, ErrNotFound) {
		return nil, NewInvalidGrantError("authorization code is invalid")
	}
	if err != nil {
		return nil, err
	}
	if auth.ClientID != cred.ClientID {
		return nil, NewInvalidClientError("authorization code was issued to another client")
	}
	// The check only applies when a redirect URI was bound at
	// code-issuance time.
	if auth.RedirectURI != "" && auth.RedirectURI != req.RedirectURI {
		return nil, NewRedirectURIMismatchError("redirect URI does not match the one bound to the authorization code")
	}

	result, err := issueAccessToken(ctx, handler, auth, IssuancePolicy{})
	if err != nil {
		return nil, err
	}

	// The code is consumed once the token is out; deletion is best
	// effort and must not fail the grant.
	if err := handler.DeleteAuthCode(ctx, req.Code); err != nil {
		logger := g.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("failed to delete consumed authorization code", "error", err)
	}

	return result, nil
}

// RefreshTokenGrant exchanges a refresh token for a new access token.
// It bypasses the shared issuance routine: a refresh request always
// forces a new token through the handler's refresh operation.
type RefreshTokenGrant[U any] struct{}

// Handle implements GrantHandler.
func (*RefreshTokenGrant[U]) Handle(ctx context.Context, req *AuthorizationRequest, cred *ClientCredential, handler DataHandler[U]) (*GrantResult, error) {
	if cred == nil || cred.ClientID == "" {
		return nil, NewInvalidRequestError("client credential was not specified")
	}
	if req.RefreshToken == "" {
		return nil, NewInvalidRequestError("refresh token was not specified")
	}

	auth, err := handler.FindAuthInfoByRefreshToken(ctx, req.RefreshToken)
	if errors.Is(err, ErrNotFound) {
		return nil, NewInvalidGrantError("refresh token is invalid")
	}
	if err != nil {
		return nil, err
	}
	if auth.ClientID != cred.ClientID {
		return nil, NewInvalidClientError("refresh token was issued to another client")
	}

	token, err := handler.RefreshAccessToken(ctx, auth, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return NewGrantResult(token), nil
}

// PasswordGrant exchanges resource-owner credentials for an access
// token. The credentials arrive in an Authorization header whose value
// base64-decodes to "username:password".
type PasswordGrant[U any] struct {
	// AllowPublicClient waives the client credential requirement.
	AllowPublicClient bool
}

// Handle implements GrantHandler.
func (g *PasswordGrant[U]) Handle(ctx context.Context, req *AuthorizationRequest, cred *ClientCredential, handler DataHandler[U]) (*GrantResult, error) {
	if !g.AllowPublicClient && (cred == nil || cred.ClientID == "") {
		return nil, NewInvalidRequestError("client credential was not specified")
	}

	username, password, err := decodeUserCredentials(req.Header("Authorization"))
	if err != nil {
		return nil, err
	}

	user, err := handler.FindUser(ctx, username, password)
	if errors.Is(err, ErrNotFound) {
		return nil, NewInvalidGrantError("username or password is incorrect")
	}
	if err != nil {
		return nil, err
	}

	auth := &AuthInfo[U]{User: user, Scope: req.Scope}
	if cred != nil {
		auth.ClientID = cred.ClientID
	}
	return issueAccessToken(ctx, handler, auth, IssuancePolicy{})
}

// decodeUserCredentials extracts username and password from an
// Authorization header value carrying base64("username:password"),
// with or without a Basic scheme prefix. The decoded value must be
// exactly two colon-separated segments.
func decodeUserCredentials(header string) (string, string, error) {
	if header == "" {
		return "", "", NewInvalidRequestError("user credentials were not specified")
	}
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Basic") {
		header = strings.TrimSpace(rest)
	}
	decoded, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return "", "", NewInvalidRequestError("user credential encoding is malformed")
	}
	parts := strings.Split(string(decoded), ":")
	if len(parts) != 2 {
		return "", "", NewInvalidRequestError("user credential encoding is malformed")
	}
	return parts[0], parts[1], nil
}

// ClientCredentialsGrant issues a token for the identity representing
// the client itself.
type ClientCredentialsGrant[U any] struct{}

// Handle implements GrantHandler.
func (*ClientCredentialsGrant[U]) Handle(ctx context.Context, req *AuthorizationRequest, cred *ClientCredential, handler DataHandler[U]) (*GrantResult, error) {
	if cred == nil || cred.ClientID == "" {
		return nil, NewInvalidRequestError("client credential was not specified")
	}

	user, err := handler.FindClientUser(ctx, *cred, req.Scope)
	if errors.Is(err, ErrNotFound) {
		return nil, NewInvalidGrantError("client credentials are invalid")
	}
	if err != nil {
		return nil, err
	}

	auth := &AuthInfo[U]{User: user, ClientID: cred.ClientID, Scope: req.Scope}
	return issueAccessToken(ctx, handler, auth, IssuancePolicy{})
}

// ImplicitGrant issues a token directly to a public client identified
// only by the client id on the request. A previously issued token for
// the same context is always replaced, never reused, and the result
// never carries a refresh token.
type ImplicitGrant[U any] struct{}

// Handle implements GrantHandler.
func (*ImplicitGrant[U]) Handle(ctx context.Context, req *AuthorizationRequest, _ *ClientCredential, handler DataHandler[U]) (*GrantResult, error) {
	if req.ClientID == "" {
		return nil, NewInvalidRequestError("client id was not specified")
	}

	user, err := handler.FindUserFromRequest(ctx, req)
	if errors.Is(err, ErrNotFound) {
		return nil, NewInvalidGrantError("user could not be authenticated")
	}
	if err != nil {
		return nil, err
	}

	auth := &AuthInfo[U]{User: user, ClientID: req.ClientID, Scope: req.Scope}
	policy := IssuancePolicy{
		ShouldReuse:   func(*AccessToken) bool { return false },
		ShouldRefresh: func(*AccessToken) bool { return false },
		ShapeResult: func(t *AccessToken) *GrantResult {
			result := NewGrantResult(t)
			result.RefreshToken = ""
			return result
		},
	}
	return issueAccessToken(ctx, handler, auth, policy)
}
