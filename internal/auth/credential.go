package auth

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// Credential is the session's authentication material.
type Credential interface {
	// Valid reports whether the credential can authenticate a request at
	// the given instant without further work.
	Valid(now time.Time) bool
}

// ServiceCredential is opaque, non-expiring key material tied to an
// application identity. It satisfies the drive client's token source
// directly.
type ServiceCredential string

// Valid always reports true; service credentials do not expire.
func (ServiceCredential) Valid(time.Time) bool { return true }

// Token returns the key material unchanged.
func (s ServiceCredential) Token(context.Context) (string, error) {
	return string(s), nil
}

// UserToken is a short-lived credential obtained interactively, optionally
// renewable through its refresh token.
type UserToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry"`
}

// Valid reports whether the access token is present and unexpired. A zero
// expiry means the server did not report one and the token is taken at face
// value.
func (t *UserToken) Valid(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	return t.Expiry.IsZero() || now.Before(t.Expiry)
}

// fromOAuth2 converts an exchanged oauth2 token into our cacheable form.
func fromOAuth2(tok *oauth2.Token) *UserToken {
	return &UserToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
}
