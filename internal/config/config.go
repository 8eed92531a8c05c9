// Package config provides configuration management for driveframe.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

// Source selects where media is listed from.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Config is the session configuration.
//
// INI format (~/.config/driveframe/config):
//
//	[driveframe]
//	source = remote
//
//	[drive]
//	folder = https://drive.google.com/drive/folders/<id>
//	client_secret_file = ~/.config/driveframe/client_secret.json
//	service_key =
//
//	[local]
//	directory = /srv/photos
//
//	[slideshow]
//	interval_seconds = 3
//	loop = true
type Config struct {
	// Source is "remote" (cloud folder) or "local" (directory on disk).
	Source string `ini:"source"`

	Drive     DriveConfig
	Local     LocalConfig
	Slideshow SlideshowConfig
}

// DriveConfig configures the remote folder source.
type DriveConfig struct {
	// Folder is the folder URL or bare identifier to list.
	Folder string `ini:"folder"`

	// ClientSecretFile points at the OAuth client secret document used
	// for interactive authorization.
	ClientSecretFile string `ini:"client_secret_file"`

	// ServiceKey is a non-expiring service credential. When set, no
	// interactive authorization is needed.
	ServiceKey string `ini:"service_key"`
}

// LocalConfig configures the local directory source.
type LocalConfig struct {
	Directory string `ini:"directory"`
}

// SlideshowConfig configures playback defaults.
type SlideshowConfig struct {
	// IntervalSeconds is the auto-advance period. Minimum 1.
	IntervalSeconds int `ini:"interval_seconds"`

	// Loop wraps playback back to the first file after the last.
	Loop bool `ini:"loop"`
}

// Validation errors
var (
	ErrInvalidSource      = errors.New("source must be \"remote\" or \"local\"")
	ErrMissingFolder      = errors.New("drive folder is required for the remote source")
	ErrMissingCredentials = errors.New("either client_secret_file or service_key is required for the remote source")
	ErrMissingDirectory   = errors.New("local directory is required for the local source")
	ErrInvalidInterval    = errors.New("interval_seconds must be at least 1")
)

// DefaultConfigDir returns ~/.config/driveframe.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "driveframe"), nil
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config"), nil
}

// DefaultTokenCachePath returns where the session's user token is cached.
func DefaultTokenCachePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token.json"), nil
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Source: SourceRemote,
		Slideshow: SlideshowConfig{
			IntervalSeconds: 3,
			Loop:            true,
		},
	}
}

// Load reads configuration from an INI file. A missing file yields defaults
// and no error; an unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	root := iniFile.Section("driveframe")
	cfg.Source = root.Key("source").MustString(cfg.Source)

	driveSection := iniFile.Section("drive")
	cfg.Drive.Folder = driveSection.Key("folder").String()
	cfg.Drive.ClientSecretFile = driveSection.Key("client_secret_file").String()
	cfg.Drive.ServiceKey = driveSection.Key("service_key").String()

	localSection := iniFile.Section("local")
	cfg.Local.Directory = localSection.Key("directory").String()

	showSection := iniFile.Section("slideshow")
	cfg.Slideshow.IntervalSeconds = showSection.Key("interval_seconds").MustInt(cfg.Slideshow.IntervalSeconds)
	cfg.Slideshow.Loop = showSection.Key("loop").MustBool(cfg.Slideshow.Loop)

	return cfg, nil
}

// Save writes the configuration to an INI file with user-only permissions,
// via a temporary file and atomic rename.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()

	root := iniFile.Section("driveframe")
	root.Key("source").SetValue(cfg.Source)

	driveSection := iniFile.Section("drive")
	driveSection.Key("folder").SetValue(cfg.Drive.Folder)
	driveSection.Key("client_secret_file").SetValue(cfg.Drive.ClientSecretFile)
	driveSection.Key("service_key").SetValue(cfg.Drive.ServiceKey)

	localSection := iniFile.Section("local")
	localSection.Key("directory").SetValue(cfg.Local.Directory)

	showSection := iniFile.Section("slideshow")
	showSection.Key("interval_seconds").SetValue(fmt.Sprintf("%d", cfg.Slideshow.IntervalSeconds))
	showSection.Key("loop").SetValue(fmt.Sprintf("%t", cfg.Slideshow.Loop))

	tmpPath := path + ".tmp"
	if err := iniFile.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set config permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks that the configured source is usable.
func (cfg *Config) Validate() error {
	switch cfg.Source {
	case SourceRemote:
		if strings.TrimSpace(cfg.Drive.Folder) == "" {
			return ErrMissingFolder
		}
		if strings.TrimSpace(cfg.Drive.ClientSecretFile) == "" && strings.TrimSpace(cfg.Drive.ServiceKey) == "" {
			return ErrMissingCredentials
		}
	case SourceLocal:
		if strings.TrimSpace(cfg.Local.Directory) == "" {
			return ErrMissingDirectory
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSource, cfg.Source)
	}

	if cfg.Slideshow.IntervalSeconds < 1 {
		return ErrInvalidInterval
	}
	return nil
}

// Interval returns the auto-advance period as a duration.
func (cfg *Config) Interval() time.Duration {
	return time.Duration(cfg.Slideshow.IntervalSeconds) * time.Second
}

// ResolveServiceKey returns the service credential by priority: the explicit
// flag value, the DRIVEFRAME_SERVICE_KEY environment variable, then the
// config file. Empty when none is set.
func ResolveServiceKey(flagValue string, cfg *Config) string {
	if flagValue != "" {
		return flagValue
	}
	if key := os.Getenv("DRIVEFRAME_SERVICE_KEY"); key != "" {
		return key
	}
	return cfg.Drive.ServiceKey
}
