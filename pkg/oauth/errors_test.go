// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *Error
		errType    string
		statusCode int
		predicate  func(error) bool
	}{
		{"invalid request", NewInvalidRequestError("x"), ErrInvalidRequest, http.StatusBadRequest, IsInvalidRequest},
		{"invalid client", NewInvalidClientError("x"), ErrInvalidClient, http.StatusUnauthorized, IsInvalidClient},
		{"invalid grant", NewInvalidGrantError("x"), ErrInvalidGrant, http.StatusBadRequest, IsInvalidGrant},
		{"invalid token", NewInvalidTokenError("x"), ErrInvalidToken, http.StatusUnauthorized, IsInvalidToken},
		{"expired token", NewExpiredTokenError("x"), ErrExpiredToken, http.StatusUnauthorized, IsExpiredToken},
		{"redirect uri mismatch", NewRedirectURIMismatchError("x"), ErrRedirectURIMismatch, http.StatusBadRequest, IsRedirectURIMismatch},
		{"unsupported grant type", NewUnsupportedGrantTypeError("x"), ErrUnsupportedGrantType, http.StatusBadRequest, IsUnsupportedGrantType},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.errType, tt.err.Type)
			assert.Equal(t, tt.statusCode, tt.err.StatusCode)
			assert.True(t, tt.predicate(tt.err))
			assert.False(t, tt.predicate(errors.New("unrelated")))
		})
	}
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handling token request: %w", NewInvalidGrantError("code is invalid"))
	assert.True(t, IsInvalidGrant(wrapped))
	assert.False(t, IsInvalidClient(wrapped))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &Error{Type: ErrInvalidToken, Description: "bad token", Cause: cause}
	assert.Contains(t, err.Error(), "invalid_token")
	assert.Contains(t, err.Error(), "boom")
	require.ErrorIs(t, err, cause)
}
