package cli

import (
	"fmt"
	"os"

	"github.com/driveframe/driveframe/internal/auth"
	"github.com/driveframe/driveframe/internal/config"
	"github.com/driveframe/driveframe/internal/drive"
	"github.com/driveframe/driveframe/internal/pathutil"
)

// loadConfig reads the config file named by --config, or the default.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newTokenSource builds the credential for remote operations. A service key
// (flag, env, or config) wins; otherwise the cached user token is used and
// refreshed as needed.
func newTokenSource(cfg *config.Config) (drive.TokenSource, error) {
	if key := config.ResolveServiceKey(serviceKey, cfg); key != "" {
		return auth.ServiceCredential(key), nil
	}

	if cfg.Drive.ClientSecretFile == "" {
		return nil, fmt.Errorf("no credentials configured: set drive.client_secret_file or a service key")
	}
	secretPath, err := pathutil.ResolveAbsolutePath(cfg.Drive.ClientSecretFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client secret path: %w", err)
	}
	secret, err := os.ReadFile(secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file: %w", err)
	}
	oauthCfg, err := auth.ConfigFromClientSecret(secret)
	if err != nil {
		return nil, err
	}

	tokenPath, err := config.DefaultTokenCachePath()
	if err != nil {
		return nil, err
	}
	return auth.NewManager(oauthCfg, tokenPath), nil
}

// newDriveClient builds an authenticated drive client from the config.
func newDriveClient(cfg *config.Config) (*drive.Client, error) {
	tokens, err := newTokenSource(cfg)
	if err != nil {
		return nil, err
	}
	return drive.NewClient(tokens), nil
}

// resolveLocalDir resolves the configured local source directory to an
// absolute path.
func resolveLocalDir(cfg *config.Config) (string, error) {
	if cfg.Local.Directory == "" {
		return "", fmt.Errorf("no local directory configured: set local.directory in the config")
	}
	return pathutil.ResolveAbsolutePath(cfg.Local.Directory)
}

// resolveFolderID extracts the folder identifier from the argument, falling
// back to the configured folder.
func resolveFolderID(cfg *config.Config, arg string) (string, error) {
	ref := arg
	if ref == "" {
		ref = cfg.Drive.Folder
	}
	if ref == "" {
		return "", fmt.Errorf("no folder given: pass a folder URL or set drive.folder in the config")
	}
	return drive.ExtractFolderID(ref)
}
