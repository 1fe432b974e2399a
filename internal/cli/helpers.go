package cli

import (
	"fmt"
	"os"

	gogithub "github.com/google/go-github/v62/github"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	ghclient "repofiles.dev/repofiles/internal/github"
)

// repoContext resolves the owner/repo pair and an authenticated client,
// preferring explicit flags over the origin remote of the current checkout.
func repoContext(cmd *cobra.Command) (*gogithub.Client, string, string, error) {
	owner, _ := cmd.Flags().GetString("owner")
	repo, _ := cmd.Flags().GetString("repo")

	hostname := "github.com"
	if owner == "" || repo == "" {
		info, err := ghclient.ResolveRepoInfo(".")
		if err != nil {
			return nil, "", "", fmt.Errorf("owner/repo not set and could not be resolved from the current repository: %w", err)
		}
		hostname = info.Hostname
		if owner == "" {
			owner = info.Owner
		}
		if repo == "" {
			repo = info.Repo
		}
	}

	client, err := ghclient.NewClient(cmd.Context(), hostname)
	if err != nil {
		return nil, "", "", err
	}

	return client, owner, repo, nil
}

// isInteractive reports whether both stdin and stdout are attached to a TTY
func isInteractive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}
