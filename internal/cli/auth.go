// Package cli provides authentication commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/driveframe/driveframe/internal/auth"
	"github.com/driveframe/driveframe/internal/config"
	"github.com/driveframe/driveframe/internal/pathutil"
)

// newLoginCmd creates the 'login' command.
func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize access to the remote folder interactively",
		Long: `Run the out-of-band authorization flow: driveframe prints an
authorization URL, you open it in a browser, approve read-only access, and
paste the displayed code back here. The resulting token is cached for later
runs and refreshed automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Drive.ClientSecretFile == "" {
				return fmt.Errorf("drive.client_secret_file is not configured; run 'driveframe config init' first")
			}

			secretPath, err := pathutil.ResolveAbsolutePath(cfg.Drive.ClientSecretFile)
			if err != nil {
				return fmt.Errorf("failed to resolve client secret path: %w", err)
			}
			secret, err := os.ReadFile(secretPath)
			if err != nil {
				return fmt.Errorf("failed to read client secret file: %w", err)
			}

			authURL, flow, err := auth.BeginInteractiveAuth(secret)
			if err != nil {
				return err
			}

			fmt.Println("Open this URL in a browser and approve access:")
			fmt.Println()
			fmt.Println("  " + authURL)
			fmt.Println()

			code, err := promptAuthCode()
			if err != nil {
				return err
			}

			tok, err := auth.CompleteInteractiveAuth(cmd.Context(), flow, code)
			if err != nil {
				return fmt.Errorf("login failed, start over with 'driveframe login': %w", err)
			}

			tokenPath, err := config.DefaultTokenCachePath()
			if err != nil {
				return err
			}
			if err := auth.SaveCached(tokenPath, tok); err != nil {
				return fmt.Errorf("failed to cache token: %w", err)
			}

			logger.Infof("Logged in; token cached at %s", tokenPath)
			return nil
		},
	}
}

// newLogoutCmd creates the 'logout' command.
func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the cached credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenPath, err := config.DefaultTokenCachePath()
			if err != nil {
				return err
			}
			if err := auth.ClearCached(tokenPath); err != nil {
				return fmt.Errorf("failed to clear token cache: %w", err)
			}
			logger.Infof("Logged out")
			return nil
		},
	}
}

// newStatusCmd creates the 'status' command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the configured source and credential state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Source:    %s\n", cfg.Source)
			if cfg.Source == config.SourceLocal {
				fmt.Printf("Directory: %s\n", cfg.Local.Directory)
				return nil
			}

			fmt.Printf("Folder:    %s\n", cfg.Drive.Folder)
			if key := config.ResolveServiceKey(serviceKey, cfg); key != "" {
				fmt.Println("Credential: service key")
				return nil
			}

			tokenPath, err := config.DefaultTokenCachePath()
			if err != nil {
				return err
			}
			tok := auth.LoadCached(tokenPath)
			switch {
			case tok == nil:
				fmt.Println("Credential: none (run 'driveframe login')")
			case tok.Valid(time.Now()):
				fmt.Printf("Credential: user token, valid until %s\n", tok.Expiry.Format(time.RFC3339))
			case tok.RefreshToken != "":
				fmt.Println("Credential: user token, expired (will refresh on next use)")
			default:
				fmt.Println("Credential: user token, expired and not refreshable (run 'driveframe login')")
			}
			return nil
		},
	}
}
