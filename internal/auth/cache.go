package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadCached restores a previously saved user token. A missing, empty, or
// corrupt cache degrades to nil (no credential); a corrupt file is removed
// so the next save starts clean. It never returns an error.
func LoadCached(path string) *UserToken {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}

	var tok UserToken
	if err := json.Unmarshal(data, &tok); err != nil {
		os.Remove(path)
		return nil
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil
	}
	return &tok
}

// SaveCached serializes tok to path with user-only permissions, creating the
// parent directory if needed.
func SaveCached(path string, tok *UserToken) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// ClearCached removes the token cache. A missing file is not an error.
func ClearCached(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
