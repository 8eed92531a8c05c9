// Package localfs lists media files from a local directory, the slideshow's
// non-cloud source mode.
package localfs

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/djherbis/times"

	"github.com/driveframe/driveframe/internal/models"
)

// ListMedia enumerates the directory at dir (non-recursive) and returns the
// regular files whose extension is in allowlist, in directory order. Hidden
// files and extension-less names are skipped. The file ID is its full path.
func ListMedia(dir string, allowlist map[string]bool) ([]models.MediaFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]models.MediaFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || IsHiddenName(name) {
			continue
		}
		ext := models.ExtOf(name)
		if ext == "" || !allowlist[ext] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Unstattable entries are skipped, not fatal.
			continue
		}

		path := filepath.Join(dir, name)
		created := info.ModTime()
		if ts, err := times.Stat(path); err == nil && ts.HasBirthTime() {
			created = ts.BirthTime()
		}

		files = append(files, models.MediaFile{
			ID:       path,
			Name:     name,
			Ext:      ext,
			Size:     info.Size(),
			MIMEType: mime.TypeByExtension(ext),
			Created:  created,
			Modified: info.ModTime(),
			Source:   models.SourceLocal,
		})
	}

	return files, nil
}
