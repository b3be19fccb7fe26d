// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types, following the RFC 6749 §5.2 and RFC 6750 §3.1 error
// code registries.
const (
	// ErrInvalidRequest is returned when required request data is missing or malformed
	ErrInvalidRequest = "invalid_request"

	// ErrInvalidClient is returned when the presenting client does not match the client bound to the grant
	ErrInvalidClient = "invalid_client"

	// ErrInvalidGrant is returned when the referenced grant does not resolve or is unacceptable
	ErrInvalidGrant = "invalid_grant"

	// ErrInvalidToken is returned when a presented access token does not exist or does not resolve to a context
	ErrInvalidToken = "invalid_token"

	// ErrExpiredToken is returned when a presented access token exists but its validity window has elapsed
	ErrExpiredToken = "expired_token"

	// ErrRedirectURIMismatch is returned when the redirect URI does not match the one bound at code issuance
	ErrRedirectURIMismatch = "redirect_uri_mismatch"

	// ErrUnsupportedGrantType is returned when the requested grant type matches no known strategy
	ErrUnsupportedGrantType = "unsupported_grant_type"
)

// ErrNotFound is the sentinel a DataHandler returns when a code, token,
// user, or authorization context does not resolve. The core maps it to
// the appropriate protocol error for the operation in progress. Any
// other error from a DataHandler is treated as an infrastructure
// failure and propagates to the caller untouched, never coerced into
// the protocol taxonomy.
var ErrNotFound = errors.New("oauth: not found")

// Error is a protocol error terminal for the request in progress. It
// carries the machine-readable RFC 6749 error code and a suggested
// HTTP status; the integrating layer decides how to shape the response
// body and may override the status.
type Error struct {
	// Type is the machine-readable error code
	Type string

	// Description is the human-readable error description
	Description string

	// StatusCode is the suggested HTTP status for the response
	StatusCode int

	// Cause is the underlying error, if any
	Cause error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Description, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Description)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewInvalidRequestError creates a new invalid_request error.
func NewInvalidRequestError(description string) *Error {
	return &Error{Type: ErrInvalidRequest, Description: description, StatusCode: http.StatusBadRequest}
}

// NewInvalidClientError creates a new invalid_client error.
func NewInvalidClientError(description string) *Error {
	return &Error{Type: ErrInvalidClient, Description: description, StatusCode: http.StatusUnauthorized}
}

// NewInvalidGrantError creates a new invalid_grant error.
func NewInvalidGrantError(description string) *Error {
	return &Error{Type: ErrInvalidGrant, Description: description, StatusCode: http.StatusBadRequest}
}

// NewInvalidTokenError creates a new invalid_token error.
func NewInvalidTokenError(description string) *Error {
	return &Error{Type: ErrInvalidToken, Description: description, StatusCode: http.StatusUnauthorized}
}

// NewExpiredTokenError creates a new expired_token error.
func NewExpiredTokenError(description string) *Error {
	return &Error{Type: ErrExpiredToken, Description: description, StatusCode: http.StatusUnauthorized}
}

// NewRedirectURIMismatchError creates a new redirect_uri_mismatch error.
func NewRedirectURIMismatchError(description string) *Error {
	return &Error{Type: ErrRedirectURIMismatch, Description: description, StatusCode: http.StatusBadRequest}
}

// NewUnsupportedGrantTypeError creates a new unsupported_grant_type error.
func NewUnsupportedGrantTypeError(description string) *Error {
	return &Error{Type: ErrUnsupportedGrantType, Description: description, StatusCode: http.StatusBadRequest}
}

func isErrorType(err error, errorType string) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errorType
}

// IsInvalidRequest checks if the error is an invalid_request error.
func IsInvalidRequest(err error) bool {
	return isErrorType(err, ErrInvalidRequest)
}

// IsInvalidClient checks if the error is an invalid_client error.
func IsInvalidClient(err error) bool {
	return isErrorType(err, ErrInvalidClient)
}

// IsInvalidGrant checks if the error is an invalid_grant error.
func IsInvalidGrant(err error) bool {
	return isErrorType(err, ErrInvalidGrant)
}

// IsInvalidToken checks if the error is an invalid_token error.
func IsInvalidToken(err error) bool {
	return isErrorType(err, ErrInvalidToken)
}

// IsExpiredToken checks if the error is an expired_token error.
func IsExpiredToken(err error) bool {
	return isErrorType(err, ErrExpiredToken)
}

// IsRedirectURIMismatch checks if the error is a redirect_uri_mismatch error.
func IsRedirectURIMismatch(err error) bool {
	return isErrorType(err, ErrRedirectURIMismatch)
}

// IsUnsupportedGrantType checks if the error is an unsupported_grant_type error.
func IsUnsupportedGrantType(err error) bool {
	return isErrorType(err, ErrUnsupportedGrantType)
}
