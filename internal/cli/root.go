// Package cli provides the command-line interface for driveframe.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/driveframe/driveframe/internal/logging"
	"github.com/driveframe/driveframe/internal/version"
)

var (
	// Global flags
	cfgFile    string
	serviceKey string
	verbose    bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "driveframe",
		Short: "Slideshow engine for cloud and local media folders",
		Long: `driveframe ` + version.Version + `
Lists images and videos from a Google Drive folder or a local directory
and plays them as a slideshow in the terminal.

Remote mode needs either a service credential or a one-time interactive
login ('driveframe login').`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultLogger()
			if verbose {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&serviceKey, "service-key", "", "Service credential (overrides config and environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.Version = version.Version

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// Execute runs the CLI with a signal-aware context. Ctrl-C cancels the
// running operation instead of killing the process mid-write.
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
