// Package cli provides file listing and download commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/driveframe/driveframe/internal/config"
	"github.com/driveframe/driveframe/internal/localfs"
	"github.com/driveframe/driveframe/internal/models"
)

// newListCmd creates the 'list' command.
func newListCmd() *cobra.Command {
	var imagesOnly bool
	var videosOnly bool

	cmd := &cobra.Command{
		Use:   "list [folder-url]",
		Short: "List media files in the configured or given folder",
		Long: `List the images and videos in a folder.

Examples:
  # List the folder from the config file
  driveframe list

  # List a folder by URL
  driveframe list "https://drive.google.com/drive/folders/1AbC_dEf"

  # Only videos
  driveframe list --videos

  # The local directory source
  driveframe --config local.ini list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			allowlist := models.MediaExtensions()
			if imagesOnly {
				allowlist = models.ImageExtensions
			}
			if videosOnly {
				allowlist = models.VideoExtensions
			}

			var files []models.MediaFile
			if cfg.Source == config.SourceLocal && len(args) == 0 {
				dir, err := resolveLocalDir(cfg)
				if err != nil {
					return err
				}
				files, err = localfs.ListMedia(dir, allowlist)
				if err != nil {
					return err
				}
			} else {
				arg := ""
				if len(args) > 0 {
					arg = args[0]
				}
				folderID, err := resolveFolderID(cfg, arg)
				if err != nil {
					return err
				}
				client, err := newDriveClient(cfg)
				if err != nil {
					return err
				}
				files, err = client.ListFolder(cmd.Context(), folderID, allowlist)
				if err != nil {
					return err
				}
			}

			if len(files) == 0 {
				fmt.Println("No media files found.")
				return nil
			}
			for _, f := range files {
				kind := "image"
				if f.IsVideo() {
					kind = "video"
				}
				fmt.Printf("%-44s  %-5s  %10d  %s\n", f.ID, kind, f.Size, f.Name)
			}
			fmt.Printf("\n%d file(s)\n", len(files))
			return nil
		},
	}

	cmd.Flags().BoolVar(&imagesOnly, "images", false, "List images only")
	cmd.Flags().BoolVar(&videosOnly, "videos", false, "List videos only")
	cmd.MarkFlagsMutuallyExclusive("images", "videos")

	return cmd
}

// newDownloadCmd creates the 'download' command.
func newDownloadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download a single file by identifier",
		Long: `Download one file from the remote folder into a local file.

Examples:
  # Download to the current directory, named after the ID
  driveframe download 1XyZ_aBc

  # Download to a specific path
  driveframe download 1XyZ_aBc -o sunset.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := newDriveClient(cfg)
			if err != nil {
				return err
			}

			dest := output
			if dest == "" {
				dest = filepath.Base(fileID)
			}

			// Size is only for the progress bar; an unknown size still
			// downloads fine.
			size, err := client.FileSize(cmd.Context(), fileID)
			if err != nil {
				logger.Debugf("could not determine file size: %v", err)
				size = -1
			}

			out, err := os.Create(dest)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", dest, err)
			}

			bar := progressbar.DefaultBytes(size, "downloading")
			err = client.DownloadTo(cmd.Context(), fileID, io.MultiWriter(out, bar))
			closeErr := out.Close()
			if err != nil {
				os.Remove(dest)
				return err
			}
			if closeErr != nil {
				return fmt.Errorf("failed to finish writing %s: %w", dest, closeErr)
			}

			logger.Infof("Downloaded %s", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination path (default: file ID in the current directory)")

	return cmd
}
