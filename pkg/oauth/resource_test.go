// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedResourceValidate(t *testing.T) {
	t.Parallel()

	newHandler := func() *fakeDataHandler {
		handler := newFakeDataHandler()
		auth := &AuthInfo[testUser]{User: testUser{ID: "u1"}, ClientID: "c1", Scope: "read"}
		handler.seedToken(auth, &AccessToken{
			Token:     "valid",
			ExpiresIn: time.Hour,
			CreatedAt: time.Now(),
		})
		handler.tokensByString["expired"] = &AccessToken{
			Token:     "expired",
			ExpiresIn: time.Minute,
			CreatedAt: time.Now().Add(-time.Hour),
		}
		handler.tokensByString["orphaned"] = &AccessToken{
			Token:     "orphaned",
			ExpiresIn: time.Hour,
			CreatedAt: time.Now(),
		}
		return handler
	}

	tests := []struct {
		name      string
		req       *ProtectedResourceRequest
		assertErr func(error) bool
	}{
		{
			name:      "no token anywhere",
			req:       resourceRequest("", nil),
			assertErr: IsInvalidRequest,
		},
		{
			name:      "unknown token",
			req:       resourceRequest("Bearer ghost", nil),
			assertErr: IsInvalidToken,
		},
		{
			name:      "expired token",
			req:       resourceRequest("Bearer expired", nil),
			assertErr: IsExpiredToken,
		},
		{
			name:      "token without resolvable context",
			req:       resourceRequest("Bearer orphaned", nil),
			assertErr: IsInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resource := NewProtectedResource[testUser](newHandler())
			_, err := resource.Validate(context.Background(), tt.req)
			assert.True(t, tt.assertErr(err), "unexpected error: %v", err)
		})
	}

	t.Run("valid token resolves its context", func(t *testing.T) {
		t.Parallel()
		resource := NewProtectedResource[testUser](newHandler())
		auth, err := resource.Validate(context.Background(), resourceRequest("Bearer valid", nil))
		require.NoError(t, err)
		assert.Equal(t, "u1", auth.User.ID)
		assert.Equal(t, "c1", auth.ClientID)
		assert.Equal(t, "read", auth.Scope)
	})

	t.Run("token in request parameter", func(t *testing.T) {
		t.Parallel()
		resource := NewProtectedResource[testUser](newHandler())
		auth, err := resource.Validate(context.Background(), resourceRequest("", url.Values{"access_token": {"valid"}}))
		require.NoError(t, err)
		assert.Equal(t, "u1", auth.User.ID)
	})

	t.Run("header takes precedence over parameter", func(t *testing.T) {
		t.Parallel()
		resource := NewProtectedResource[testUser](newHandler())
		_, err := resource.Validate(context.Background(), resourceRequest("Bearer ghost", url.Values{"access_token": {"valid"}}))
		assert.True(t, IsInvalidToken(err), "the header token must win even when a valid parameter token is present")
	})

	t.Run("custom fetcher list", func(t *testing.T) {
		t.Parallel()
		resource := NewProtectedResource(newHandler(), WithTokenFetchers[testUser](RequestParameterFetcher{}))
		auth, err := resource.Validate(context.Background(), resourceRequest("Bearer ghost", url.Values{"access_token": {"valid"}}))
		require.NoError(t, err)
		assert.Equal(t, "u1", auth.User.ID)
	})
}
