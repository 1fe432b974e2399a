package repofiles

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v62/github"
)

// blobMode is the file mode submitted for every pushed blob entry.
const blobMode = "100644"

// PushFilesContent pushes a set of files to a branch as one commit: the
// branch head is resolved, a tree layered on that head is created from the
// files, a commit pointing at the tree is created with the head as its only
// parent, and the branch reference is force-updated to the new commit.
//
// The reference update is forced with no fast-forward check, so a commit
// pushed to the branch by another actor between the head read and the update
// is discarded. A failure at any step aborts the remaining steps; a tree or
// commit already created remotely is left unreferenced, not deleted.
func PushFilesContent(ctx context.Context, client *github.Client, owner, repo, branch string, files []FileContent, message string) (*RefInfo, error) {
	ref, _, err := client.Git.GetRef(ctx, owner, repo, "heads/"+branch)
	if err != nil {
		return nil, mapAPIError("get reference", err)
	}
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	headSHA := ref.Object.GetSHA()
	slog.Debug("resolved branch head", "branch", branch, "sha", headSHA)

	tree, err := createTree(ctx, client, owner, repo, headSHA, files)
	if err != nil {
		return nil, err
	}

	commit, err := createCommit(ctx, client, owner, repo, message, tree.GetSHA(), headSHA)
	if err != nil {
		return nil, err
	}

	updated, err := updateReference(ctx, client, owner, repo, branch, commit.GetSHA())
	if err != nil {
		return nil, err
	}
	slog.Debug("pushed files", "branch", branch, "files", len(files), "commit", commit.GetSHA())

	return &RefInfo{Ref: updated.GetRef(), SHA: updated.Object.GetSHA()}, nil
}

// createTree submits the files as blob entries layered on the base commit, so
// files not listed keep their current content.
func createTree(ctx context.Context, client *github.Client, owner, repo, baseSHA string, files []FileContent) (*github.Tree, error) {
	entries := make([]*github.TreeEntry, 0, len(files))
	for _, file := range files {
		entries = append(entries, &github.TreeEntry{
			Path:    github.String(file.Path),
			Mode:    github.String(blobMode),
			Type:    github.String("blob"),
			Content: github.String(file.Content),
		})
	}

	tree, _, err := client.Git.CreateTree(ctx, owner, repo, baseSHA, entries)
	if err != nil {
		return nil, mapAPIError("create tree", err)
	}
	if err := validateTree(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// createCommit creates a commit with exactly one parent.
func createCommit(ctx context.Context, client *github.Client, owner, repo, message, treeSHA, parentSHA string) (*github.Commit, error) {
	commit, _, err := client.Git.CreateCommit(ctx, owner, repo, &github.Commit{
		Message: github.String(message),
		Tree:    &github.Tree{SHA: github.String(treeSHA)},
		Parents: []*github.Commit{{SHA: github.String(parentSHA)}},
	}, nil)
	if err != nil {
		return nil, mapAPIError("create commit", err)
	}
	if err := validateCommit(commit); err != nil {
		return nil, err
	}
	return commit, nil
}

// updateReference force-updates heads/<branch> to sha; last writer wins.
func updateReference(ctx context.Context, client *github.Client, owner, repo, branch, sha string) (*github.Reference, error) {
	updated, _, err := client.Git.UpdateRef(ctx, owner, repo, &github.Reference{
		Ref:    github.String("refs/heads/" + branch),
		Object: &github.GitObject{SHA: github.String(sha)},
	}, true)
	if err != nil {
		return nil, mapAPIError("update reference", err)
	}
	if err := validateRef(updated); err != nil {
		return nil, err
	}
	return updated, nil
}
