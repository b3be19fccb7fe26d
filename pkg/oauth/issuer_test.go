// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthInfo() *AuthInfo[testUser] {
	return &AuthInfo[testUser]{User: testUser{ID: "u1"}, ClientID: "c1", Scope: "read"}
}

func TestIssueAccessTokenCreatesWhenNoneStored(t *testing.T) {
	t.Parallel()

	handler := newFakeDataHandler()
	result, err := issueAccessToken(context.Background(), handler, testAuthInfo(), IssuancePolicy{})
	require.NoError(t, err)

	assert.Equal(t, TokenTypeBearer, result.TokenType)
	assert.Equal(t, "token-1", result.AccessToken)
	assert.Equal(t, "refresh-1", result.RefreshToken)
	assert.Equal(t, "read", result.Scope)
	require.NotNil(t, result.ExpiresIn)
	assert.InDelta(t, 3600, *result.ExpiresIn, 2)
	assert.Equal(t, 1, handler.createCalls)
}

func TestIssueAccessTokenReusesUnexpiredToken(t *testing.T) {
	t.Parallel()

	handler := newFakeDataHandler()
	auth := testAuthInfo()
	handler.seedToken(auth, &AccessToken{
		Token:        "existing",
		RefreshToken: "existing-refresh",
		Scope:        "read",
		ExpiresIn:    time.Hour,
		CreatedAt:    time.Now(),
	})

	for i := 0; i < 3; i++ {
		result, err := issueAccessToken(context.Background(), handler, auth, IssuancePolicy{})
		require.NoError(t, err)
		assert.Equal(t, "existing", result.AccessToken)
	}
	assert.Zero(t, handler.createCalls)
	assert.Zero(t, handler.refreshCalls)
}

func TestIssueAccessTokenRefreshesExpiredTokenWithRefreshToken(t *testing.T) {
	t.Parallel()

	handler := newFakeDataHandler()
	auth := testAuthInfo()
	handler.seedToken(auth, &AccessToken{
		Token:        "stale",
		RefreshToken: "stale-refresh",
		ExpiresIn:    time.Minute,
		CreatedAt:    time.Now().Add(-time.Hour),
	})

	result, err := issueAccessToken(context.Background(), handler, auth, IssuancePolicy{})
	require.NoError(t, err)

	assert.Equal(t, "refreshed-token-1", result.AccessToken)
	assert.Equal(t, 1, handler.refreshCalls)
	assert.Zero(t, handler.createCalls)
}

func TestIssueAccessTokenRecreatesExpiredTokenWithoutRefreshToken(t *testing.T) {
	t.Parallel()

	handler := newFakeDataHandler()
	auth := testAuthInfo()
	handler.seedToken(auth, &AccessToken{
		Token:     "stale",
		ExpiresIn: time.Minute,
		CreatedAt: time.Now().Add(-time.Hour),
	})

	result, err := issueAccessToken(context.Background(), handler, auth, IssuancePolicy{})
	require.NoError(t, err)

	assert.Equal(t, "token-1", result.AccessToken)
	assert.Equal(t, 1, handler.createCalls)
	assert.Zero(t, handler.refreshCalls)
}

func TestIssueAccessTokenPolicyOverrides(t *testing.T) {
	t.Parallel()

	handler := newFakeDataHandler()
	auth := testAuthInfo()
	handler.seedToken(auth, &AccessToken{
		Token:        "existing",
		RefreshToken: "existing-refresh",
		ExpiresIn:    time.Hour,
		CreatedAt:    time.Now(),
	})

	policy := IssuancePolicy{
		ShouldReuse: func(*AccessToken) bool { return false },
		ShapeResult: func(tok *AccessToken) *GrantResult {
			result := NewGrantResult(tok)
			result.RefreshToken = ""
			return result
		},
	}
	result, err := issueAccessToken(context.Background(), handler, auth, policy)
	require.NoError(t, err)

	assert.Equal(t, "token-1", result.AccessToken, "unexpired token must be replaced when the policy forbids reuse")
	assert.Empty(t, result.RefreshToken)
	assert.Equal(t, 1, handler.createCalls)
}

func TestIssueAccessTokenPropagatesHandlerFailure(t *testing.T) {
	t.Parallel()

	handler := newFakeDataHandler()
	infra := errors.New("storage outage")
	handler.failWith = infra

	_, err := issueAccessToken(context.Background(), handler, testAuthInfo(), IssuancePolicy{})
	require.ErrorIs(t, err, infra)
	var protocolErr *Error
	assert.False(t, errors.As(err, &protocolErr), "infrastructure failures must not be coerced into protocol errors")
}

func TestNewGrantResult(t *testing.T) {
	t.Parallel()

	t.Run("expiring token reports remaining seconds", func(t *testing.T) {
		t.Parallel()
		result := NewGrantResult(&AccessToken{
			Token:     "tok",
			ExpiresIn: time.Hour,
			CreatedAt: time.Now().Add(-30 * time.Minute),
		})
		require.NotNil(t, result.ExpiresIn)
		assert.InDelta(t, 1800, *result.ExpiresIn, 2)
	})

	t.Run("non-expiring token omits expires_in", func(t *testing.T) {
		t.Parallel()
		result := NewGrantResult(&AccessToken{Token: "tok"})
		assert.Nil(t, result.ExpiresIn)
	})
}

func TestAccessTokenIsExpired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   AccessToken
		expired bool
	}{
		{"no lifetime never expires", AccessToken{CreatedAt: time.Now().Add(-24 * time.Hour)}, false},
		{"within lifetime", AccessToken{ExpiresIn: time.Hour, CreatedAt: time.Now()}, false},
		{"past lifetime", AccessToken{ExpiresIn: time.Minute, CreatedAt: time.Now().Add(-time.Hour)}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expired, tt.token.IsExpired())
		})
	}
}
