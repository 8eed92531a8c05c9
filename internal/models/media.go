// Package models defines the shared data types for driveframe.
package models

import (
	"strings"
	"time"
)

// Source identifies where a media file was listed from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// MediaFile represents a single image or video in a collection.
// Instances are immutable once listed; a reload replaces the whole set.
type MediaFile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Ext      string    `json:"ext"`
	Size     int64     `json:"size"`
	MIMEType string    `json:"mimeType"`
	Created  time.Time `json:"createdTime"`
	Modified time.Time `json:"modifiedTime"`
	Source   Source    `json:"source"`
}

// IsVideo reports whether the file carries a video extension.
func (m MediaFile) IsVideo() bool {
	return VideoExtensions[m.Ext]
}

// ImageExtensions is the set of recognized image file extensions.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// VideoExtensions is the set of recognized video file extensions.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".m4v":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

// MediaExtensions is the union of image and video extensions. This is the
// default allowlist used when listing a folder.
func MediaExtensions() map[string]bool {
	all := make(map[string]bool, len(ImageExtensions)+len(VideoExtensions))
	for ext := range ImageExtensions {
		all[ext] = true
	}
	for ext := range VideoExtensions {
		all[ext] = true
	}
	return all
}

// ExtOf returns the lowercased trailing dot-suffix of a file name, including
// the dot. Names without a dot yield "".
func ExtOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx:])
}
