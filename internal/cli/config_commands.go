// Package cli provides configuration commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driveframe/driveframe/internal/config"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage driveframe configuration",
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())

	return configCmd
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var source string
	var folder string
	var clientSecretFile string
	var directory string
	var intervalSeconds int

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file",
		Long: `Write the configuration file, creating the config directory if
needed. Existing values not set by a flag are preserved.

Examples:
  driveframe config init --folder "https://drive.google.com/drive/folders/1AbC" \
      --client-secret ~/.config/driveframe/client_secret.json

  driveframe config init --source local --directory ~/Pictures`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if source != "" {
				cfg.Source = source
			}
			if folder != "" {
				cfg.Drive.Folder = folder
			}
			if clientSecretFile != "" {
				cfg.Drive.ClientSecretFile = clientSecretFile
			}
			if directory != "" {
				cfg.Local.Directory = directory
			}
			if intervalSeconds > 0 {
				cfg.Slideshow.IntervalSeconds = intervalSeconds
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(cfg, cfgFile); err != nil {
				return err
			}

			path := cfgFile
			if path == "" {
				path, _ = config.DefaultConfigPath()
			}
			logger.Infof("Config written to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Media source: remote or local")
	cmd.Flags().StringVar(&folder, "folder", "", "Remote folder URL or identifier")
	cmd.Flags().StringVar(&clientSecretFile, "client-secret", "", "Path to the OAuth client secret document")
	cmd.Flags().StringVar(&directory, "directory", "", "Local media directory")
	cmd.Flags().IntVar(&intervalSeconds, "interval", 0, "Seconds per file")

	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("source             = %s\n", cfg.Source)
			fmt.Printf("drive.folder       = %s\n", cfg.Drive.Folder)
			fmt.Printf("drive.client_secret_file = %s\n", cfg.Drive.ClientSecretFile)
			if cfg.Drive.ServiceKey != "" {
				fmt.Printf("drive.service_key  = (set)\n")
			} else {
				fmt.Printf("drive.service_key  = \n")
			}
			fmt.Printf("local.directory    = %s\n", cfg.Local.Directory)
			fmt.Printf("slideshow.interval_seconds = %d\n", cfg.Slideshow.IntervalSeconds)
			fmt.Printf("slideshow.loop     = %t\n", cfg.Slideshow.Loop)

			if err := cfg.Validate(); err != nil {
				fmt.Printf("\nwarning: %v\n", err)
			}
			return nil
		},
	}
}
