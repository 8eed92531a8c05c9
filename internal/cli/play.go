// Package cli provides the terminal slideshow runner.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/driveframe/driveframe/internal/config"
	"github.com/driveframe/driveframe/internal/events"
	"github.com/driveframe/driveframe/internal/services"
)

// newPlayCmd creates the 'play' command.
func newPlayCmd() *cobra.Command {
	var interval int
	var noLoop bool
	var shuffleStart bool

	cmd := &cobra.Command{
		Use:   "play [folder-url]",
		Short: "Run the slideshow in the terminal",
		Long: `Cycle through the folder's media on a timer, printing the current
file. The timer lives here in the frontend; the session state machine only
advances when it is ticked.

Examples:
  # Play the configured source at the configured interval
  driveframe play

  # Play a specific folder, 5 seconds per file, stop at the end
  driveframe play "https://drive.google.com/drive/folders/1AbC" --interval 5 --no-loop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if interval > 0 {
				cfg.Slideshow.IntervalSeconds = interval
			}
			if noLoop {
				cfg.Slideshow.Loop = false
			}

			lister, err := newLister(cfg, args)
			if err != nil {
				return err
			}

			session := services.NewSession(lister, logger)
			defer session.Close()
			session.Cursor().SetInterval(cfg.Interval())
			session.Cursor().SetLoop(cfg.Slideshow.Loop)

			if err := session.Reload(cmd.Context()); err != nil {
				return err
			}
			snap := session.Snapshot()
			if len(snap.Files) == 0 {
				fmt.Println("No media files found.")
				return nil
			}
			logger.Infof("Playing %d file(s), %ds per file", len(snap.Files), cfg.Slideshow.IntervalSeconds)

			// Render on every playback change published by the session.
			playback := session.Events().Subscribe(events.EventPlaybackChanged)
			go func() {
				for range playback {
					renderCurrent(session)
				}
			}()

			if shuffleStart {
				session.JumpRandom()
			}
			session.Play()
			renderCurrent(session)

			ticker := time.NewTicker(cfg.Interval())
			defer ticker.Stop()

			for {
				select {
				case <-cmd.Context().Done():
					fmt.Println()
					return nil
				case <-ticker.C:
					session.Tick()
					if !session.Snapshot().Playback.Playing() {
						// Loop is off and the show reached the end.
						fmt.Println("\nDone.")
						return nil
					}
				}
			}
		},
	}

	cmd.Flags().IntVar(&interval, "interval", 0, "Seconds per file (overrides config)")
	cmd.Flags().BoolVar(&noLoop, "no-loop", false, "Stop after the last file instead of wrapping around")
	cmd.Flags().BoolVar(&shuffleStart, "random-start", false, "Start from a random file")

	return cmd
}

// newLister builds the media source for the play command: an explicit folder
// argument forces remote mode, otherwise the configured source is used.
func newLister(cfg *config.Config, args []string) (services.Lister, error) {
	if cfg.Source == config.SourceLocal && len(args) == 0 {
		dir, err := resolveLocalDir(cfg)
		if err != nil {
			return nil, err
		}
		return &services.LocalLister{Directory: dir}, nil
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	folderID, err := resolveFolderID(cfg, arg)
	if err != nil {
		return nil, err
	}
	client, err := newDriveClient(cfg)
	if err != nil {
		return nil, err
	}
	return &services.DriveLister{Client: client, FolderID: folderID}, nil
}

func renderCurrent(session *services.Session) {
	snap := session.Snapshot()
	if snap.Current == nil {
		return
	}
	marker := "||"
	if snap.Playback.Playing() {
		marker = ">"
	}
	fmt.Printf("\r%-2s [%d/%d] %-60s", marker, snap.Playback.Index+1, len(snap.Files), snap.Current.Name)
}
