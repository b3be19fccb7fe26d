// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package memstore provides an in-memory reference implementation of
// the oauth.DataHandler capability boundary. It is thread-safe and
// suitable for development and testing; production deployments should
// implement DataHandler on top of a persistent backend instead.
package memstore

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stacklok/oauthcore/pkg/oauth"
)

const (
	// DefaultTokenTTL is the default access token lifetime.
	DefaultTokenTTL = time.Hour

	// DefaultCodeTTL is the default authorization code lifetime.
	DefaultCodeTTL = 10 * time.Minute

	// defaultCleanupInterval is how often the background cleanup runs.
	defaultCleanupInterval = time.Minute
)

// User is the account model the store binds issued tokens to.
type User struct {
	// ID uniquely identifies the account
	ID string

	// Username is the login name
	Username string

	// Password is the login password. Stored in the clear; this is a
	// development backend, not a credential vault.
	Password string
}

// codeEntry tracks an issued authorization code and its creation time
// for TTL expiry.
type codeEntry struct {
	auth      *oauth.AuthInfo[User]
	createdAt time.Time
}

// Store implements oauth.DataHandler[User] with in-memory maps.
//
// Tokens are opaque UUID strings. Each authorization context (client
// id + user id) holds at most one live access token; creating a new
// token for a context drops the indexes of the one it replaces.
type Store struct {
	mu sync.RWMutex

	// users maps username -> account.
	users map[string]User

	// clients maps client id -> client secret.
	clients map[string]string

	// authCodes maps authorization code -> bound context. Codes are
	// one-time-use; the grant engine deletes them after exchange.
	authCodes map[string]*codeEntry

	// tokens maps context key -> the live access token for that context.
	tokens map[string]*oauth.AccessToken

	// tokensByString maps token string -> token for O(1) bearer lookup.
	tokensByString map[string]*oauth.AccessToken

	// authByToken maps token string -> bound context.
	authByToken map[string]*oauth.AuthInfo[User]

	// authByRefresh maps refresh token string -> bound context.
	authByRefresh map[string]*oauth.AuthInfo[User]

	// tokenTTL is the lifetime stamped on issued access tokens.
	tokenTTL time.Duration

	// codeTTL is the lifetime of issued authorization codes.
	codeTTL time.Duration

	// cleanupInterval is how often the background cleanup runs.
	cleanupInterval time.Duration

	// stopCleanup signals the cleanup goroutine to stop.
	stopCleanup chan struct{}

	// cleanupDone is closed when the cleanup goroutine has fully stopped.
	cleanupDone chan struct{}
}

// Option configures a Store instance.
type Option func(*Store)

// WithTokenTTL sets the lifetime of issued access tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.tokenTTL = ttl
	}
}

// WithCodeTTL sets the lifetime of issued authorization codes.
func WithCodeTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.codeTTL = ttl
	}
}

// WithCleanupInterval sets a custom cleanup interval.
func WithCleanupInterval(interval time.Duration) Option {
	return func(s *Store) {
		s.cleanupInterval = interval
	}
}

// New creates a Store with initialized maps and starts the background
// cleanup goroutine. Call Close to stop it.
func New(opts ...Option) *Store {
	s := &Store{
		users:           make(map[string]User),
		clients:         make(map[string]string),
		authCodes:       make(map[string]*codeEntry),
		tokens:          make(map[string]*oauth.AccessToken),
		tokensByString:  make(map[string]*oauth.AccessToken),
		authByToken:     make(map[string]*oauth.AuthInfo[User]),
		authByRefresh:   make(map[string]*oauth.AuthInfo[User]),
		tokenTTL:        DefaultTokenTTL,
		codeTTL:         DefaultCodeTTL,
		cleanupInterval: defaultCleanupInterval,
		stopCleanup:     make(chan struct{}),
		cleanupDone:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()
	return s
}

// Close stops the background cleanup goroutine and waits for it to
// finish.
func (s *Store) Close() {
	close(s.stopCleanup)
	<-s.cleanupDone
}

// AddUser registers an account.
func (s *Store) AddUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = user
}

// AddClient registers a client id and secret.
func (s *Store) AddClient(clientID, secret string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[clientID] = secret
}

// IssueAuthCode creates an authorization code binding the named user
// to the client, scope, and redirect URI. The redirect URI may be
// empty, in which case no redirect check applies at exchange time.
func (s *Store) IssueAuthCode(username, clientID, scope, redirectURI string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return "", oauth.ErrNotFound
	}

	code := uuid.NewString()
	s.authCodes[code] = &codeEntry{
		auth: &oauth.AuthInfo[User]{
			User:        user,
			ClientID:    clientID,
			Scope:       scope,
			RedirectURI: redirectURI,
		},
		createdAt: time.Now(),
	}
	return code, nil
}

// FindAuthInfoByCode implements oauth.DataHandler.
func (s *Store) FindAuthInfoByCode(_ context.Context, code string) (*oauth.AuthInfo[User], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.authCodes[code]
	if !ok || s.codeExpired(entry) {
		return nil, oauth.ErrNotFound
	}
	return entry.auth, nil
}

// DeleteAuthCode implements oauth.DataHandler.
func (s *Store) DeleteAuthCode(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.authCodes, code)
	return nil
}

// FindAuthInfoByRefreshToken implements oauth.DataHandler.
func (s *Store) FindAuthInfoByRefreshToken(_ context.Context, refreshToken string) (*oauth.AuthInfo[User], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auth, ok := s.authByRefresh[refreshToken]
	if !ok {
		return nil, oauth.ErrNotFound
	}
	return auth, nil
}

// FindAuthInfoByAccessToken implements oauth.DataHandler.
func (s *Store) FindAuthInfoByAccessToken(_ context.Context, token *oauth.AccessToken) (*oauth.AuthInfo[User], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auth, ok := s.authByToken[token.Token]
	if !ok {
		return nil, oauth.ErrNotFound
	}
	return auth, nil
}

// FindAccessToken implements oauth.DataHandler.
func (s *Store) FindAccessToken(_ context.Context, token string) (*oauth.AccessToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tokensByString[token]
	if !ok {
		return nil, oauth.ErrNotFound
	}
	return t, nil
}

// GetStoredAccessToken implements oauth.DataHandler.
func (s *Store) GetStoredAccessToken(_ context.Context, auth *oauth.AuthInfo[User]) (*oauth.AccessToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[contextKey(auth)]
	if !ok {
		return nil, oauth.ErrNotFound
	}
	return token, nil
}

// CreateAccessToken implements oauth.DataHandler.
func (s *Store) CreateAccessToken(_ context.Context, auth *oauth.AuthInfo[User]) (*oauth.AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueLocked(auth), nil
}

// RefreshAccessToken implements oauth.DataHandler. The replacement
// token stays linked to the same authorization context; the old
// refresh token is invalidated.
func (s *Store) RefreshAccessToken(_ context.Context, auth *oauth.AuthInfo[User], refreshToken string) (*oauth.AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authByRefresh[refreshToken]; !ok {
		return nil, oauth.ErrNotFound
	}
	delete(s.authByRefresh, refreshToken)
	return s.issueLocked(auth), nil
}

// IsAccessTokenExpired implements oauth.DataHandler.
func (s *Store) IsAccessTokenExpired(token *oauth.AccessToken) bool {
	return token.IsExpired()
}

// FindUser implements oauth.DataHandler.
func (s *Store) FindUser(_ context.Context, username, password string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return User{}, oauth.ErrNotFound
	}
	return user, nil
}

// FindClientUser implements oauth.DataHandler. The client itself is
// represented as a synthetic account.
func (s *Store) FindClientUser(_ context.Context, cred oauth.ClientCredential, _ string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.clients[cred.ClientID]
	if !ok || subtle.ConstantTimeCompare([]byte(secret), []byte(cred.ClientSecret)) != 1 {
		return User{}, oauth.ErrNotFound
	}
	return User{ID: "client:" + cred.ClientID, Username: cred.ClientID}, nil
}

// FindUserFromRequest implements oauth.DataHandler for the implicit
// grant by reading username and password request parameters.
func (s *Store) FindUserFromRequest(ctx context.Context, req *oauth.AuthorizationRequest) (User, error) {
	return s.FindUser(ctx, req.Param("username"), req.Param("password"))
}

// issueLocked mints a fresh token for the context and reindexes it,
// dropping the indexes of any token it replaces. Caller holds mu.
func (s *Store) issueLocked(auth *oauth.AuthInfo[User]) *oauth.AccessToken {
	key := contextKey(auth)
	if old, ok := s.tokens[key]; ok {
		delete(s.tokensByString, old.Token)
		delete(s.authByToken, old.Token)
		delete(s.authByRefresh, old.RefreshToken)
	}

	token := &oauth.AccessToken{
		Token:        uuid.NewString(),
		RefreshToken: uuid.NewString(),
		Scope:        auth.Scope,
		ExpiresIn:    s.tokenTTL,
		CreatedAt:    time.Now(),
	}
	s.tokens[key] = token
	s.tokensByString[token.Token] = token
	s.authByToken[token.Token] = auth
	s.authByRefresh[token.RefreshToken] = auth
	return token
}

func contextKey(auth *oauth.AuthInfo[User]) string {
	return auth.ClientID + "/" + auth.User.ID
}

func (s *Store) codeExpired(entry *codeEntry) bool {
	if s.codeTTL <= 0 {
		return false
	}
	return time.Since(entry.createdAt) > s.codeTTL
}

// cleanupLoop periodically removes expired entries until Close is
// called.
func (s *Store) cleanupLoop() {
	defer close(s.cleanupDone)

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCleanup:
			return
		case <-ticker.C:
			s.purgeExpired()
		}
	}
}

// purgeExpired drops expired authorization codes and access tokens.
// Expired tokens that still carry a refresh token are kept so the
// refresh_token grant can exchange them.
func (s *Store) purgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for code, entry := range s.authCodes {
		if s.codeExpired(entry) {
			delete(s.authCodes, code)
		}
	}
	for key, token := range s.tokens {
		if token.IsExpired() && token.RefreshToken == "" {
			delete(s.tokens, key)
			delete(s.tokensByString, token.Token)
			delete(s.authByToken, token.Token)
		}
	}
}
