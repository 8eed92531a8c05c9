package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes requested for the remote folder source. Read-only is all the
// slideshow ever needs.
var Scopes = []string{"https://www.googleapis.com/auth/drive.readonly"}

// oobRedirectURL selects the out-of-band flow: the provider displays the
// authorization code for the user to paste back instead of redirecting.
const oobRedirectURL = "urn:ietf:wg:oauth:2.0:oob"

// Flow is an in-progress interactive authorization. It is single-use: a
// rejected code exchange invalidates it and the caller must begin again.
type Flow struct {
	cfg   *oauth2.Config
	state string
}

// Config exposes the parsed oauth2 configuration, for building a Manager
// once the flow completes.
func (f *Flow) Config() *oauth2.Config { return f.cfg }

// ConfigFromClientSecret parses a client secret document into an oauth2
// configuration for the out-of-band flow. The document is consumed as bytes;
// nothing is staged on disk.
func ConfigFromClientSecret(clientSecretJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(clientSecretJSON, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid client secret document: %w", ErrAuthorizationFailed, err)
	}
	cfg.RedirectURL = oobRedirectURL
	return cfg, nil
}

// BeginInteractiveAuth parses a client secret document and constructs the
// authorization URL for the out-of-band flow. It does not block.
func BeginInteractiveAuth(clientSecretJSON []byte) (string, *Flow, error) {
	cfg, err := ConfigFromClientSecret(clientSecretJSON)
	if err != nil {
		return "", nil, err
	}

	f := &Flow{cfg: cfg, state: randomState()}
	authURL := cfg.AuthCodeURL(f.state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
	return authURL, f, nil
}

// CompleteInteractiveAuth exchanges a user-pasted authorization code for a
// token. An invalid or expired code yields ErrAuthorizationFailed.
func CompleteInteractiveAuth(ctx context.Context, f *Flow, code string) (*UserToken, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty authorization code", ErrAuthorizationFailed)
	}
	tok, err := f.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange rejected: %w", ErrAuthorizationFailed, err)
	}
	return fromOAuth2(tok), nil
}

func randomState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "driveframe"
	}
	return hex.EncodeToString(b)
}
