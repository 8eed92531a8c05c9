package localfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/driveframe/driveframe/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListMedia(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.jpg", "jpeg bytes")
	writeFile(t, dir, "clip.MP4", "video bytes")
	writeFile(t, dir, "notes.txt", "not media")
	writeFile(t, dir, ".hidden.jpg", "hidden")
	writeFile(t, dir, "README", "no extension")
	if err := os.Mkdir(filepath.Join(dir, "subdir.jpg"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListMedia(dir, models.MediaExtensions())
	if err != nil {
		t.Fatalf("ListMedia: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files %v, want 2", len(files), fileNames(files))
	}

	byName := map[string]models.MediaFile{}
	for _, f := range files {
		byName[f.Name] = f
	}

	photo, ok := byName["photo.jpg"]
	if !ok {
		t.Fatalf("photo.jpg missing from %v", fileNames(files))
	}
	if photo.ID != filepath.Join(dir, "photo.jpg") {
		t.Errorf("ID = %q, want full path", photo.ID)
	}
	if photo.Ext != ".jpg" {
		t.Errorf("Ext = %q, want .jpg", photo.Ext)
	}
	if photo.Size != int64(len("jpeg bytes")) {
		t.Errorf("Size = %d", photo.Size)
	}
	if photo.Source != models.SourceLocal {
		t.Errorf("Source = %v, want local", photo.Source)
	}
	if photo.Created.IsZero() || photo.Modified.IsZero() {
		t.Error("timestamps should be populated")
	}
	if photo.IsVideo() {
		t.Error("photo.jpg classified as video")
	}

	clip, ok := byName["clip.MP4"]
	if !ok {
		t.Fatalf("clip.MP4 missing from %v", fileNames(files))
	}
	if clip.Ext != ".mp4" {
		t.Errorf("extension not lowercased: %q", clip.Ext)
	}
	if !clip.IsVideo() {
		t.Error("clip.MP4 not classified as video")
	}
}

func TestListMediaAllowlist(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.jpg", "x")
	writeFile(t, dir, "clip.mp4", "x")

	files, err := ListMedia(dir, models.ImageExtensions)
	if err != nil {
		t.Fatalf("ListMedia: %v", err)
	}
	if len(files) != 1 || files[0].Name != "photo.jpg" {
		t.Errorf("image-only listing = %v, want [photo.jpg]", fileNames(files))
	}
}

func TestListMediaEmptyDir(t *testing.T) {
	files, err := ListMedia(t.TempDir(), models.MediaExtensions())
	if err != nil {
		t.Fatalf("ListMedia: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("empty dir listed %v", fileNames(files))
	}
}

func TestListMediaMissingDir(t *testing.T) {
	_, err := ListMedia(filepath.Join(t.TempDir(), "nope"), models.MediaExtensions())
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestIsHiddenName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".hidden", true},
		{".config.jpg", true},
		{"visible.jpg", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsHiddenName(tt.name); got != tt.want {
			t.Errorf("IsHiddenName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func fileNames(files []models.MediaFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}
