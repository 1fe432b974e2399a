package repofiles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	repoerrors "repofiles.dev/repofiles/internal/errors"
	"repofiles.dev/repofiles/internal/repofiles"
	"repofiles.dev/repofiles/testhelpers"
)

func TestPushFilesContent(t *testing.T) {
	t.Run("pushes one file through the four-call sequence", func(t *testing.T) {
		config := testhelpers.NewMockRepoConfig()
		config.Refs["heads/main"] = "H1"
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		files := []repofiles.FileContent{{Path: "a.txt", Content: "hello"}}
		ref, err := repofiles.PushFilesContent(context.Background(), client, owner, repo, "main", files, "add a.txt")
		require.NoError(t, err)

		// exactly four calls, in dependency order
		require.Equal(t, []string{
			"GET ref heads/main",
			"POST trees",
			"POST commits",
			"PATCH refs heads/main",
		}, config.Calls)

		// tree layered on the head commit
		require.Len(t, config.CreatedTrees, 1)
		tree := config.CreatedTrees[0]
		require.Equal(t, "H1", tree.BaseTree)
		require.Len(t, tree.Entries, 1)
		require.Equal(t, "a.txt", tree.Entries[0].Path)
		require.Equal(t, "100644", tree.Entries[0].Mode)
		require.Equal(t, "blob", tree.Entries[0].Type)
		require.Equal(t, "hello", tree.Entries[0].Content)

		// commit with exactly one parent, pointing at the new tree
		require.Len(t, config.CreatedCommits, 1)
		commit := config.CreatedCommits[0]
		require.Equal(t, "add a.txt", commit.Message)
		require.Equal(t, tree.SHA, commit.Tree)
		require.Equal(t, []string{"H1"}, commit.Parents)

		// forced reference update to the new commit
		require.Len(t, config.UpdatedRefs, 1)
		updated := config.UpdatedRefs[0]
		require.Equal(t, "heads/main", updated.Ref)
		require.Equal(t, commit.SHA, updated.SHA)
		require.True(t, updated.Force)

		require.Equal(t, "refs/heads/main", ref.Ref)
		require.Equal(t, commit.SHA, ref.SHA)
	})

	t.Run("submits every file as a blob entry", func(t *testing.T) {
		config := testhelpers.NewMockRepoConfig()
		config.Refs["heads/main"] = "H1"
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		files := []repofiles.FileContent{
			{Path: "src/a.go", Content: "package a"},
			{Path: "src/b.go", Content: "package b"},
			{Path: "README.md", Content: "# readme"},
		}
		_, err := repofiles.PushFilesContent(context.Background(), client, owner, repo, "main", files, "bulk update")
		require.NoError(t, err)

		require.Len(t, config.CreatedTrees, 1)
		entries := config.CreatedTrees[0].Entries
		require.Len(t, entries, 3)
		for i, file := range files {
			require.Equal(t, file.Path, entries[i].Path)
			require.Equal(t, file.Content, entries[i].Content)
			require.Equal(t, "100644", entries[i].Mode)
		}
	})

	t.Run("fails with ErrNotFound for a missing branch", func(t *testing.T) {
		config := testhelpers.NewMockRepoConfig()
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		files := []repofiles.FileContent{{Path: "a.txt", Content: "hello"}}
		_, err := repofiles.PushFilesContent(context.Background(), client, owner, repo, "gone", files, "msg")
		require.Error(t, err)
		require.ErrorIs(t, err, repoerrors.ErrNotFound)
		require.Equal(t, []string{"GET ref heads/gone"}, config.Calls)
	})

	t.Run("aborts after a failed tree creation", func(t *testing.T) {
		config := testhelpers.NewMockRepoConfig()
		config.Refs["heads/main"] = "H1"
		config.ErrorStatus["POST trees"] = 413
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		files := []repofiles.FileContent{{Path: "big.bin", Content: "x"}}
		_, err := repofiles.PushFilesContent(context.Background(), client, owner, repo, "main", files, "msg")
		require.Error(t, err)
		require.ErrorIs(t, err, repoerrors.ErrPayloadTooLarge)

		// no commit or reference call after the failure
		require.Equal(t, []string{"GET ref heads/main", "POST trees"}, config.Calls)
		require.Empty(t, config.CreatedCommits)
		require.Empty(t, config.UpdatedRefs)
	})

	t.Run("rejects a reference response missing its sha", func(t *testing.T) {
		config := testhelpers.NewMockRepoConfig()
		config.Refs["heads/broken"] = ""
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		files := []repofiles.FileContent{{Path: "a.txt", Content: "hello"}}
		_, err := repofiles.PushFilesContent(context.Background(), client, owner, repo, "broken", files, "msg")
		require.Error(t, err)
		require.ErrorIs(t, err, repoerrors.ErrSchemaValidation)
		require.Equal(t, []string{"GET ref heads/broken"}, config.Calls)
	})
}
