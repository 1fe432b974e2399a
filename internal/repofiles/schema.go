package repofiles

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"

	repoerrors "repofiles.dev/repofiles/internal/errors"
)

// The validators below check every API response at the boundary before it is
// returned to the caller or fed into a dependent call. Only the fields the
// adapter actually relies on are required.

// validateContent checks a contents-API entry (file or directory member).
func validateContent(c *github.RepositoryContent) error {
	switch {
	case c == nil:
		return repoerrors.NewSchemaValidationError("content", "entry")
	case c.Path == nil:
		return repoerrors.NewSchemaValidationError("content", "path")
	case c.SHA == nil || *c.SHA == "":
		return repoerrors.NewSchemaValidationError("content", "sha")
	case c.Type == nil || *c.Type == "":
		return repoerrors.NewSchemaValidationError("content", "type")
	}
	return nil
}

// validateTree checks a created tree object.
func validateTree(t *github.Tree) error {
	if t == nil || t.SHA == nil || *t.SHA == "" {
		return repoerrors.NewSchemaValidationError("tree", "sha")
	}
	return nil
}

// validateCommit checks a created commit object.
func validateCommit(c *github.Commit) error {
	if c == nil || c.SHA == nil || *c.SHA == "" {
		return repoerrors.NewSchemaValidationError("commit", "sha")
	}
	return nil
}

// validateRef checks a reference object.
func validateRef(r *github.Reference) error {
	switch {
	case r == nil || r.Ref == nil || *r.Ref == "":
		return repoerrors.NewSchemaValidationError("reference", "ref")
	case r.Object == nil || r.Object.SHA == nil || *r.Object.SHA == "":
		return repoerrors.NewSchemaValidationError("reference", "object.sha")
	}
	return nil
}

// mapAPIError classifies a go-github request failure by HTTP status so
// callers can inspect it with errors.Is instead of parsing messages.
func mapAPIError(op string, err error) error {
	var ghErr *github.ErrorResponse
	if goerrors.As(err, &ghErr) && ghErr.Response != nil {
		var kind error
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			kind = repoerrors.ErrNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = repoerrors.ErrAuth
		case http.StatusConflict, http.StatusUnprocessableEntity:
			kind = repoerrors.ErrConflict
		case http.StatusRequestEntityTooLarge:
			kind = repoerrors.ErrPayloadTooLarge
		}
		if kind != nil {
			return repoerrors.NewAPIError(op, ghErr.Response.StatusCode, kind, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
