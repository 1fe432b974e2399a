package github_test

import (
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"

	"repofiles.dev/repofiles/internal/github"
)

func TestParseRemoteURL(t *testing.T) {
	t.Run("parses HTTPS github.com URL", func(t *testing.T) {
		info, err := github.ParseRemoteURL("https://github.com/owner/repo.git")
		require.NoError(t, err)
		require.Equal(t, "github.com", info.Hostname)
		require.Equal(t, "owner", info.Owner)
		require.Equal(t, "repo", info.Repo)
	})

	t.Run("parses HTTPS URL without .git suffix", func(t *testing.T) {
		info, err := github.ParseRemoteURL("https://github.com/owner/repo")
		require.NoError(t, err)
		require.Equal(t, "github.com", info.Hostname)
		require.Equal(t, "owner", info.Owner)
		require.Equal(t, "repo", info.Repo)
	})

	t.Run("parses SSH github.com URL", func(t *testing.T) {
		info, err := github.ParseRemoteURL("git@github.com:owner/repo.git")
		require.NoError(t, err)
		require.Equal(t, "github.com", info.Hostname)
		require.Equal(t, "owner", info.Owner)
		require.Equal(t, "repo", info.Repo)
	})

	t.Run("parses HTTPS GitHub Enterprise URL", func(t *testing.T) {
		info, err := github.ParseRemoteURL("https://github.company.com/owner/repo.git")
		require.NoError(t, err)
		require.Equal(t, "github.company.com", info.Hostname)
		require.Equal(t, "owner", info.Owner)
		require.Equal(t, "repo", info.Repo)
	})

	t.Run("parses SSH GitHub Enterprise URL", func(t *testing.T) {
		info, err := github.ParseRemoteURL("git@github.company.com:owner/repo.git")
		require.NoError(t, err)
		require.Equal(t, "github.company.com", info.Hostname)
		require.Equal(t, "owner", info.Owner)
		require.Equal(t, "repo", info.Repo)
	})

	t.Run("parses HTTP URL", func(t *testing.T) {
		info, err := github.ParseRemoteURL("http://github.company.com/owner/repo.git")
		require.NoError(t, err)
		require.Equal(t, "github.company.com", info.Hostname)
		require.Equal(t, "owner", info.Owner)
		require.Equal(t, "repo", info.Repo)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		info, err := github.ParseRemoteURL("  https://github.com/owner/repo.git\n")
		require.NoError(t, err)
		require.Equal(t, "owner", info.Owner)
		require.Equal(t, "repo", info.Repo)
	})

	t.Run("rejects a URL without owner and repo", func(t *testing.T) {
		_, err := github.ParseRemoteURL("https://github.com/just-owner")
		require.Error(t, err)
	})

	t.Run("rejects an empty URL", func(t *testing.T) {
		_, err := github.ParseRemoteURL("")
		require.Error(t, err)
	})
}

func TestResolveRepoInfo(t *testing.T) {
	t.Run("resolves owner and repo from the origin remote", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		_, err = repo.CreateRemote(&gogitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:acme/widgets.git"},
		})
		require.NoError(t, err)

		info, err := github.ResolveRepoInfo(dir)
		require.NoError(t, err)
		require.Equal(t, "github.com", info.Hostname)
		require.Equal(t, "acme", info.Owner)
		require.Equal(t, "widgets", info.Repo)
	})

	t.Run("fails when there is no origin remote", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		_, err = github.ResolveRepoInfo(dir)
		require.Error(t, err)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := github.ResolveRepoInfo(t.TempDir())
		require.Error(t, err)
	})
}
