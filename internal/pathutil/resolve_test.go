package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveAbsolutePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}

	got, err := ResolveAbsolutePath("~/photos")
	if err != nil {
		t.Fatalf("ResolveAbsolutePath: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("~ not expanded: %q", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("result not absolute: %q", got)
	}
}

func TestResolveAbsolutePathEmpty(t *testing.T) {
	got, err := ResolveAbsolutePath("")
	if err != nil {
		t.Fatalf("ResolveAbsolutePath: %v", err)
	}
	wd, _ := os.Getwd()
	if got != wd {
		t.Errorf("empty path = %q, want working directory %q", got, wd)
	}
}

func TestResolveAbsolutePathRelative(t *testing.T) {
	got, err := ResolveAbsolutePath("some/relative/dir")
	if err != nil {
		t.Fatalf("ResolveAbsolutePath: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("relative path not made absolute: %q", got)
	}
}
