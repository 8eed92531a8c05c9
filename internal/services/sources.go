package services

import (
	"context"

	"github.com/driveframe/driveframe/internal/drive"
	"github.com/driveframe/driveframe/internal/localfs"
	"github.com/driveframe/driveframe/internal/models"
)

// DriveLister lists a remote folder through the drive client.
type DriveLister struct {
	Client    *drive.Client
	FolderID  string
	Allowlist map[string]bool
}

func (l *DriveLister) List(ctx context.Context) ([]models.MediaFile, error) {
	allowlist := l.Allowlist
	if allowlist == nil {
		allowlist = models.MediaExtensions()
	}
	return l.Client.ListFolder(ctx, l.FolderID, allowlist)
}

// LocalLister lists a directory on disk.
type LocalLister struct {
	Directory string
	Allowlist map[string]bool
}

func (l *LocalLister) List(ctx context.Context) ([]models.MediaFile, error) {
	allowlist := l.Allowlist
	if allowlist == nil {
		allowlist = models.MediaExtensions()
	}
	return localfs.ListMedia(l.Directory, allowlist)
}
