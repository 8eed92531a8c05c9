package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.Source != SourceRemote {
		t.Errorf("default source = %q, want remote", cfg.Source)
	}
	if cfg.Slideshow.IntervalSeconds != 3 {
		t.Errorf("default interval = %d, want 3", cfg.Slideshow.IntervalSeconds)
	}
	if !cfg.Slideshow.Loop {
		t.Error("default loop should be true")
	}
	if cfg.Interval() != 3*time.Second {
		t.Errorf("Interval() = %v, want 3s", cfg.Interval())
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceRemote || cfg.Slideshow.IntervalSeconds != 3 {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte("[unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	want := New()
	want.Source = SourceLocal
	want.Drive.Folder = "https://drive.google.com/drive/folders/abc123"
	want.Drive.ClientSecretFile = "/tmp/secret.json"
	want.Local.Directory = "/srv/photos"
	want.Slideshow.IntervalSeconds = 7
	want.Slideshow.Loop = false

	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config permissions = %o, want 0600", perm)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Source != want.Source {
		t.Errorf("Source = %q, want %q", got.Source, want.Source)
	}
	if got.Drive.Folder != want.Drive.Folder {
		t.Errorf("Folder = %q, want %q", got.Drive.Folder, want.Drive.Folder)
	}
	if got.Drive.ClientSecretFile != want.Drive.ClientSecretFile {
		t.Errorf("ClientSecretFile = %q", got.Drive.ClientSecretFile)
	}
	if got.Local.Directory != want.Local.Directory {
		t.Errorf("Directory = %q", got.Local.Directory)
	}
	if got.Slideshow.IntervalSeconds != 7 {
		t.Errorf("IntervalSeconds = %d, want 7", got.Slideshow.IntervalSeconds)
	}
	if got.Slideshow.Loop {
		t.Error("Loop = true, want false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name: "remote with client secret",
			mutate: func(c *Config) {
				c.Drive.Folder = "abc123"
				c.Drive.ClientSecretFile = "/tmp/secret.json"
			},
		},
		{
			name: "remote with service key",
			mutate: func(c *Config) {
				c.Drive.Folder = "abc123"
				c.Drive.ServiceKey = "key"
			},
		},
		{
			name: "local with directory",
			mutate: func(c *Config) {
				c.Source = SourceLocal
				c.Local.Directory = "/srv/photos"
			},
		},
		{
			name:    "remote without folder",
			mutate:  func(c *Config) { c.Drive.ServiceKey = "key" },
			wantErr: ErrMissingFolder,
		},
		{
			name:    "remote without credentials",
			mutate:  func(c *Config) { c.Drive.Folder = "abc123" },
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "local without directory",
			mutate:  func(c *Config) { c.Source = SourceLocal },
			wantErr: ErrMissingDirectory,
		},
		{
			name:    "unknown source",
			mutate:  func(c *Config) { c.Source = "ftp" },
			wantErr: ErrInvalidSource,
		},
		{
			name: "zero interval",
			mutate: func(c *Config) {
				c.Drive.Folder = "abc123"
				c.Drive.ServiceKey = "key"
				c.Slideshow.IntervalSeconds = 0
			},
			wantErr: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveServiceKey(t *testing.T) {
	cfg := New()
	cfg.Drive.ServiceKey = "from-config"

	t.Setenv("DRIVEFRAME_SERVICE_KEY", "")
	if got := ResolveServiceKey("from-flag", cfg); got != "from-flag" {
		t.Errorf("flag priority: got %q", got)
	}
	if got := ResolveServiceKey("", cfg); got != "from-config" {
		t.Errorf("config fallback: got %q", got)
	}

	t.Setenv("DRIVEFRAME_SERVICE_KEY", "from-env")
	if got := ResolveServiceKey("", cfg); got != "from-env" {
		t.Errorf("env priority over config: got %q", got)
	}
	if got := ResolveServiceKey("from-flag", cfg); got != "from-flag" {
		t.Errorf("flag priority over env: got %q", got)
	}
}
