package repofiles

import (
	"context"
	"encoding/base64"
	"log/slog"

	"github.com/google/go-github/v62/github"

	repoerrors "repofiles.dev/repofiles/internal/errors"
)

// GetFileContents reads a file or directory listing from the repository.
// ref selects a branch, tag, or commit; the repository's default branch is
// used when ref is empty. File content is decoded from base64 before being
// returned; directory entries never carry content. Exactly one network call,
// no retries.
func GetFileContents(ctx context.Context, client *github.Client, owner, repo, path, ref string) (*RemoteContent, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	file, dir, _, err := client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, mapAPIError("get contents", err)
	}

	if dir != nil {
		entries := make([]DirEntry, 0, len(dir))
		for _, entry := range dir {
			if err := validateContent(entry); err != nil {
				return nil, err
			}
			entries = append(entries, DirEntry{
				Path: entry.GetPath(),
				SHA:  entry.GetSHA(),
				Type: entry.GetType(),
				Size: entry.GetSize(),
			})
		}
		return &RemoteContent{Entries: entries}, nil
	}

	if err := validateContent(file); err != nil {
		return nil, err
	}

	decoded, err := decodeContent(file)
	if err != nil {
		return nil, err
	}

	return &RemoteContent{File: &RemoteFile{
		Path:    file.GetPath(),
		SHA:     file.GetSHA(),
		Type:    file.GetType(),
		Content: decoded,
	}}, nil
}

// decodeContent decodes a file entry's base64 payload to text. Entries
// without content (submodules, symlink targets) decode to the empty string.
func decodeContent(c *github.RepositoryContent) (string, error) {
	if c.Content == nil {
		return "", nil
	}
	if c.Encoding != nil && *c.Encoding != "" && *c.Encoding != "base64" {
		return "", repoerrors.NewSchemaValidationError("content", "encoding")
	}
	decoded, err := base64.StdEncoding.DecodeString(*c.Content)
	if err != nil {
		return "", repoerrors.NewSchemaValidationError("content", "content")
	}
	return string(decoded), nil
}

// UpdateFileOptions describes a single-file create or update.
type UpdateFileOptions struct {
	Path    string
	Content string // raw text, base64-encoded for transport
	Message string
	Branch  string
	SHA     *string // blob sha of the file being replaced; discovered when nil
}

// CreateOrUpdateFile writes one file to a branch as a single commit. When no
// sha is supplied, the current blob sha is discovered with one extra read; a
// failed read means the file does not exist yet and the write proceeds as a
// creation. A stale sha surfaces as ErrConflict with no retry.
func CreateOrUpdateFile(ctx context.Context, client *github.Client, owner, repo string, opts UpdateFileOptions) (*UpdateFileResult, error) {
	sha := opts.SHA
	if sha == nil {
		existing, err := GetFileContents(ctx, client, owner, repo, opts.Path, opts.Branch)
		if err == nil && existing.File != nil {
			sha = github.String(existing.File.SHA)
		}
	}

	fileOpts := &github.RepositoryContentFileOptions{
		Message: github.String(opts.Message),
		Content: []byte(opts.Content),
		Branch:  github.String(opts.Branch),
	}
	if sha != nil {
		fileOpts.SHA = sha
	}

	resp, _, err := client.Repositories.CreateFile(ctx, owner, repo, opts.Path, fileOpts)
	if err != nil {
		return nil, mapAPIError("create or update file", err)
	}

	if err := validateCommit(&resp.Commit); err != nil {
		return nil, err
	}
	slog.Debug("file committed", "path", opts.Path, "branch", opts.Branch, "sha", resp.Commit.GetSHA())

	result := &UpdateFileResult{Commit: toCommitInfo(&resp.Commit)}
	if resp.Content != nil {
		if err := validateContent(resp.Content); err != nil {
			return nil, err
		}
		result.Content = &RemoteFile{
			Path: resp.Content.GetPath(),
			SHA:  resp.Content.GetSHA(),
			Type: resp.Content.GetType(),
		}
	}
	return result, nil
}

// toCommitInfo converts a github.Commit to CommitInfo
func toCommitInfo(c *github.Commit) CommitInfo {
	info := CommitInfo{
		SHA:     c.GetSHA(),
		Message: c.GetMessage(),
	}
	if c.Tree != nil {
		info.TreeSHA = c.Tree.GetSHA()
	}
	for _, parent := range c.Parents {
		info.Parents = append(info.Parents, parent.GetSHA())
	}
	return info
}
