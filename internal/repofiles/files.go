package repofiles

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/sync/errgroup"

	repoerrors "repofiles.dev/repofiles/internal/errors"
)

// PushFilesFromPath reads a set of local files and pushes them to a branch as
// one commit. Every path is checked for accessibility and all contents are
// read before any network call is made, so a local failure never leaves a
// partial remote mutation behind.
func PushFilesFromPath(ctx context.Context, client *github.Client, owner, repo, branch string, files []FilePath, message string) (*RefInfo, error) {
	if err := checkFilesAccessible(ctx, files); err != nil {
		return nil, fmt.Errorf("push failed: %w", err)
	}

	contents, err := readFilesContent(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("push failed: %w", err)
	}

	if len(contents) == 0 {
		return nil, fmt.Errorf("push failed: %w", repoerrors.ErrEmptyPush)
	}

	ref, err := PushFilesContent(ctx, client, owner, repo, branch, contents, message)
	if err != nil {
		return nil, fmt.Errorf("push failed: %w", err)
	}
	return ref, nil
}

// checkFilesAccessible verifies every local path concurrently, failing with
// the first inaccessible one.
func checkFilesAccessible(ctx context.Context, files []FilePath) error {
	g, _ := errgroup.WithContext(ctx)
	for _, file := range files {
		file := file
		g.Go(func() error {
			f, err := os.Open(file.Filepath)
			if err != nil {
				return repoerrors.NewFileAccessError(file.Filepath, err)
			}
			return f.Close()
		})
	}
	return g.Wait()
}

// readFilesContent reads all files concurrently, preserving input order.
func readFilesContent(ctx context.Context, files []FilePath) ([]FileContent, error) {
	contents := make([]FileContent, len(files))
	g, _ := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			data, err := os.ReadFile(file.Filepath)
			if err != nil {
				return repoerrors.NewFileReadError(file.Filepath, err)
			}
			contents[i] = FileContent{Path: file.Path, Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}
