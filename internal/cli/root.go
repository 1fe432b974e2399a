// Package cli implements the repofiles command line interface.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"repofiles.dev/repofiles/internal/logging"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "repofiles",
		Short: "Read and push files in a GitHub repository through its API",
		Long: `Repofiles reads files and directory listings from a GitHub repository and
pushes local or inline content as commits, without needing a local clone.

Owner and repository default to the origin remote of the current checkout.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(logDir(), debug)
		},
	}

	rootCmd.PersistentFlags().String("owner", "", "Repository owner. Defaults to the origin remote's owner.")
	rootCmd.PersistentFlags().String("repo", "", "Repository name. Defaults to the origin remote's repository.")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write API debug logs to a rotated log file.")

	// Add subcommands
	rootCmd.AddCommand(newCatCmd())
	rootCmd.AddCommand(newPutCmd())
	rootCmd.AddCommand(newPushCmd())

	return rootCmd
}

// logDir returns the directory for debug log files
func logDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "repofiles")
	}
	return "."
}
