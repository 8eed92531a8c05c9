package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Refresh exchanges tok's refresh token for a fresh access token. It is
// valid only when a refresh token is present and the current token is
// expired; asking speculatively is an error because refresh tokens are
// single-use. A rejected exchange is surfaced as ErrRefreshFailed and must
// lead to a new interactive authorization, not a retry.
func Refresh(ctx context.Context, cfg *oauth2.Config, tok *UserToken, now time.Time) (*UserToken, error) {
	if tok == nil || tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token", ErrRefreshFailed)
	}
	if tok.Valid(now) {
		return nil, fmt.Errorf("%w: current token has not expired", ErrRefreshFailed)
	}

	src := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: tok.RefreshToken})
	fresh, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	out := fromOAuth2(fresh)
	if out.RefreshToken == "" {
		// The provider may omit the refresh token on renewal; keep the
		// one we have.
		out.RefreshToken = tok.RefreshToken
	}
	return out, nil
}

// Manager owns the user credential for one session. It restores the cached
// token on creation, hands out access tokens on demand, refreshes exactly
// when a request finds the token expired, and persists every change back to
// the cache. It satisfies the drive client's token source.
type Manager struct {
	cfg       *oauth2.Config
	cachePath string
	now       func() time.Time

	mu  sync.Mutex
	tok *UserToken
}

// NewManager builds a Manager over the token cache at cachePath. cfg carries
// the client identity and token endpoint used for refresh.
func NewManager(cfg *oauth2.Config, cachePath string) *Manager {
	return &Manager{
		cfg:       cfg,
		cachePath: cachePath,
		now:       time.Now,
		tok:       LoadCached(cachePath),
	}
}

// Credential returns a copy of the current user token, or nil when the
// session holds none.
func (m *Manager) Credential() *UserToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tok == nil {
		return nil
	}
	cp := *m.tok
	return &cp
}

// SetToken installs a token obtained from a completed interactive flow and
// persists it.
func (m *Manager) SetToken(tok *UserToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = tok
	return SaveCached(m.cachePath, tok)
}

// Logout discards the credential and clears the cache.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = nil
	return ClearCached(m.cachePath)
}

// Token returns a valid access token, refreshing first if the cached one has
// expired. With no credential at all it returns ErrAuthorizationFailed so
// the caller can start an interactive flow.
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tok == nil || m.tok.AccessToken == "" {
		return "", fmt.Errorf("%w: no cached credential, interactive login required", ErrAuthorizationFailed)
	}

	now := m.now()
	if m.tok.Valid(now) {
		return m.tok.AccessToken, nil
	}

	if m.tok.RefreshToken == "" {
		return "", fmt.Errorf("%w: token expired and no refresh token held", ErrAuthorizationFailed)
	}

	fresh, err := Refresh(ctx, m.cfg, m.tok, now)
	if err != nil {
		return "", err
	}
	m.tok = fresh
	if err := SaveCached(m.cachePath, fresh); err != nil {
		return "", fmt.Errorf("failed to persist refreshed token: %w", err)
	}
	return fresh.AccessToken, nil
}
