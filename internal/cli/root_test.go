package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"repofiles.dev/repofiles/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	t.Run("registers the adapter subcommands", func(t *testing.T) {
		rootCmd := cli.NewRootCmd("test")

		names := make([]string, 0)
		for _, sub := range rootCmd.Commands() {
			names = append(names, sub.Name())
		}
		require.Contains(t, names, "cat")
		require.Contains(t, names, "put")
		require.Contains(t, names, "push")
	})

	t.Run("exposes owner and repo persistent flags", func(t *testing.T) {
		rootCmd := cli.NewRootCmd("test")

		require.NotNil(t, rootCmd.PersistentFlags().Lookup("owner"))
		require.NotNil(t, rootCmd.PersistentFlags().Lookup("repo"))
		require.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
	})

	t.Run("reports its version", func(t *testing.T) {
		rootCmd := cli.NewRootCmd("1.2.3")
		require.Equal(t, "1.2.3", rootCmd.Version)
	})
}
