// Package auth manages credentials for the remote folder source: a
// long-lived service credential, or a user token obtained through an
// out-of-band interactive authorization and renewed via its refresh token.
package auth

import "errors"

// ErrAuthorizationFailed indicates that no usable credential exists or that
// an interactive code exchange was rejected. The caller must restart the
// flow with BeginInteractiveAuth.
var ErrAuthorizationFailed = errors.New("authorization failed")

// ErrRefreshFailed indicates a refresh that was not attempted (missing
// refresh token, token not expired) or that the server rejected. Refresh
// tokens are single-use, so a failed refresh is never retried.
var ErrRefreshFailed = errors.New("token refresh failed")
