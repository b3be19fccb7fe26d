// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"fmt"
	"time"
)

// testUser is the application user type used across the package tests.
type testUser struct {
	ID string
}

// fakeDataHandler is an in-memory DataHandler with deterministic token
// strings and call counters, rich enough to drive the grant and
// issuance flows end to end.
type fakeDataHandler struct {
	authInfoByCode    map[string]*AuthInfo[testUser]
	authInfoByRefresh map[string]*AuthInfo[testUser]
	authInfoByToken   map[string]*AuthInfo[testUser]
	storedTokens      map[string]*AccessToken
	tokensByString    map[string]*AccessToken
	users             map[string]string
	clients           map[string]string
	tokenTTL          time.Duration

	deletedCodes  []string
	createCalls   int
	refreshCalls  int
	deleteCodeErr error
	failWith      error
}

func newFakeDataHandler() *fakeDataHandler {
	return &fakeDataHandler{
		authInfoByCode:    make(map[string]*AuthInfo[testUser]),
		authInfoByRefresh: make(map[string]*AuthInfo[testUser]),
		authInfoByToken:   make(map[string]*AuthInfo[testUser]),
		storedTokens:      make(map[string]*AccessToken),
		tokensByString:    make(map[string]*AccessToken),
		users:             make(map[string]string),
		clients:           make(map[string]string),
		tokenTTL:          time.Hour,
	}
}

func (f *fakeDataHandler) key(auth *AuthInfo[testUser]) string {
	return auth.ClientID + "/" + auth.User.ID
}

func (f *fakeDataHandler) FindAuthInfoByCode(_ context.Context, code string) (*AuthInfo[testUser], error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	auth, ok := f.authInfoByCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	return auth, nil
}

func (f *fakeDataHandler) FindAuthInfoByRefreshToken(_ context.Context, refreshToken string) (*AuthInfo[testUser], error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	auth, ok := f.authInfoByRefresh[refreshToken]
	if !ok {
		return nil, ErrNotFound
	}
	return auth, nil
}

func (f *fakeDataHandler) FindAuthInfoByAccessToken(_ context.Context, token *AccessToken) (*AuthInfo[testUser], error) {
	auth, ok := f.authInfoByToken[token.Token]
	if !ok {
		return nil, ErrNotFound
	}
	return auth, nil
}

func (f *fakeDataHandler) DeleteAuthCode(_ context.Context, code string) error {
	if f.deleteCodeErr != nil {
		return f.deleteCodeErr
	}
	delete(f.authInfoByCode, code)
	f.deletedCodes = append(f.deletedCodes, code)
	return nil
}

func (f *fakeDataHandler) FindAccessToken(_ context.Context, token string) (*AccessToken, error) {
	t, ok := f.tokensByString[token]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (f *fakeDataHandler) GetStoredAccessToken(_ context.Context, auth *AuthInfo[testUser]) (*AccessToken, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	token, ok := f.storedTokens[f.key(auth)]
	if !ok {
		return nil, ErrNotFound
	}
	return token, nil
}

func (f *fakeDataHandler) CreateAccessToken(_ context.Context, auth *AuthInfo[testUser]) (*AccessToken, error) {
	f.createCalls++
	token := &AccessToken{
		Token:        fmt.Sprintf("token-%d", f.createCalls),
		RefreshToken: fmt.Sprintf("refresh-%d", f.createCalls),
		Scope:        auth.Scope,
		ExpiresIn:    f.tokenTTL,
		CreatedAt:    time.Now(),
	}
	f.store(auth, token)
	return token, nil
}

func (f *fakeDataHandler) RefreshAccessToken(_ context.Context, auth *AuthInfo[testUser], _ string) (*AccessToken, error) {
	f.refreshCalls++
	token := &AccessToken{
		Token:        fmt.Sprintf("refreshed-token-%d", f.refreshCalls),
		RefreshToken: fmt.Sprintf("refreshed-refresh-%d", f.refreshCalls),
		Scope:        auth.Scope,
		ExpiresIn:    f.tokenTTL,
		CreatedAt:    time.Now(),
	}
	f.store(auth, token)
	return token, nil
}

func (f *fakeDataHandler) IsAccessTokenExpired(token *AccessToken) bool {
	return token.IsExpired()
}

func (f *fakeDataHandler) FindUser(_ context.Context, username, password string) (testUser, error) {
	stored, ok := f.users[username]
	if !ok || stored != password {
		return testUser{}, ErrNotFound
	}
	return testUser{ID: username}, nil
}

func (f *fakeDataHandler) FindClientUser(_ context.Context, cred ClientCredential, _ string) (testUser, error) {
	secret, ok := f.clients[cred.ClientID]
	if !ok || secret != cred.ClientSecret {
		return testUser{}, ErrNotFound
	}
	return testUser{ID: "client:" + cred.ClientID}, nil
}

func (f *fakeDataHandler) FindUserFromRequest(ctx context.Context, req *AuthorizationRequest) (testUser, error) {
	return f.FindUser(ctx, req.Param("username"), req.Param("password"))
}

// store records a token under its authorization context and indexes,
// dropping any token it replaces.
func (f *fakeDataHandler) store(auth *AuthInfo[testUser], token *AccessToken) {
	key := f.key(auth)
	if old, ok := f.storedTokens[key]; ok {
		delete(f.tokensByString, old.Token)
		delete(f.authInfoByToken, old.Token)
	}
	f.storedTokens[key] = token
	f.tokensByString[token.Token] = token
	f.authInfoByToken[token.Token] = auth
}

// seedToken installs a pre-existing stored token for the given context.
func (f *fakeDataHandler) seedToken(auth *AuthInfo[testUser], token *AccessToken) {
	f.store(auth, token)
}
