// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package oauth implements the server-side grant-processing and
// resource-protection core of the OAuth 2.0 Authorization Framework
// (RFC 6749).
//
// The package deliberately owns only the protocol state machine: grant
// dispatch, grant validation, the shared token issuance routine, and
// bearer-token validation for protected resources. Everything with a
// side effect lives behind the DataHandler capability interface, which
// the integrating application implements on top of its own storage and
// authentication systems. Tokens are opaque identifiers; no signing or
// encoding scheme is imposed here.
//
// The two entry points are TokenEndpoint, which turns an
// AuthorizationRequest into a GrantResult (or a typed *Error), and
// ProtectedResource, which resolves a bearer token presented on a
// ProtectedResourceRequest back to the AuthInfo that produced it.
package oauth
