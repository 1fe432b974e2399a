// Package testhelpers provides a mock GitHub API server for tests.
package testhelpers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
)

// PutFileRequest records the body of a contents PUT call
type PutFileRequest struct {
	Path    string `json:"-"`
	Message string `json:"message"`
	Content string `json:"content"` // base64, as transmitted
	SHA     string `json:"sha"`
	Branch  string `json:"branch"`
}

// TreeEntrySpec records one blob entry of a tree-creation call
type TreeEntrySpec struct {
	Path    string `json:"path"`
	Mode    string `json:"mode"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// CreatedTree records a tree-creation call and the sha assigned to it
type CreatedTree struct {
	BaseTree string
	Entries  []TreeEntrySpec
	SHA      string
}

// CreatedCommit records a commit-creation call and the sha assigned to it
type CreatedCommit struct {
	Message string
	Tree    string
	Parents []string
	SHA     string
}

// UpdatedRef records a reference update call
type UpdatedRef struct {
	Ref   string
	SHA   string
	Force bool
}

// MockRepoConfig configures the behavior of a mock GitHub server
type MockRepoConfig struct {
	Owner string
	Repo  string

	// Files maps repo paths to file entries for contents reads
	Files map[string]*github.RepositoryContent
	// Dirs maps repo paths to ordered directory listings
	Dirs map[string][]*github.RepositoryContent
	// Refs maps short ref names ("heads/main") to head commit shas
	Refs map[string]string

	// Calls records every handled API call in order, e.g. "GET contents a.txt"
	Calls []string

	// Recorded write payloads for assertions
	PutFiles       []PutFileRequest
	CreatedTrees   []CreatedTree
	CreatedCommits []CreatedCommit
	UpdatedRefs    []UpdatedRef

	// ErrorStatus forces an HTTP status for an endpoint key, e.g. "POST trees"
	ErrorStatus map[string]int

	seq int
}

// NewMockRepoConfig creates a new mock server config with defaults
func NewMockRepoConfig() *MockRepoConfig {
	return &MockRepoConfig{
		Owner:       "owner",
		Repo:        "repo",
		Files:       make(map[string]*github.RepositoryContent),
		Dirs:        make(map[string][]*github.RepositoryContent),
		Refs:        make(map[string]string),
		ErrorStatus: make(map[string]int),
	}
}

// FileFixture builds a base64-encoded file entry for the mock server
func FileFixture(filePath, content string) *github.RepositoryContent {
	return &github.RepositoryContent{
		Type:     github.String("file"),
		Name:     github.String(path.Base(filePath)),
		Path:     github.String(filePath),
		SHA:      github.String("sha-" + filePath),
		Size:     github.Int(len(content)),
		Encoding: github.String("base64"),
		Content:  github.String(base64.StdEncoding.EncodeToString([]byte(content))),
	}
}

// DirEntryFixture builds a directory listing entry (no content) for the mock server
func DirEntryFixture(filePath, entryType string, size int) *github.RepositoryContent {
	return &github.RepositoryContent{
		Type: github.String(entryType),
		Name: github.String(path.Base(filePath)),
		Path: github.String(filePath),
		SHA:  github.String("sha-" + filePath),
		Size: github.Int(size),
	}
}

func (c *MockRepoConfig) record(key, detail string) {
	call := key
	if detail != "" {
		call = key + " " + detail
	}
	c.Calls = append(c.Calls, call)
}

func (c *MockRepoConfig) failed(w http.ResponseWriter, key string) bool {
	if status, ok := c.ErrorStatus[key]; ok {
		writeError(w, status, "mock error")
		return true
	}
	return false
}

func (c *MockRepoConfig) nextSHA(kind string) string {
	c.seq++
	return fmt.Sprintf("%s-sha-%d", kind, c.seq)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub
// contents and git-data endpoints
func NewMockGitHubServer(t *testing.T, config *MockRepoConfig) *httptest.Server {
	if config == nil {
		config = NewMockRepoConfig()
	}

	base := "/repos/" + config.Owner + "/" + config.Repo
	mux := http.NewServeMux()

	// GET and PUT /repos/{owner}/{repo}/contents/{path}
	mux.HandleFunc(base+"/contents/", func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, base+"/contents/")

		switch r.Method {
		case http.MethodGet:
			detail := filePath
			if ref := r.URL.Query().Get("ref"); ref != "" {
				detail += "?ref=" + ref
			}
			config.record("GET contents", detail)
			if config.failed(w, "GET contents") {
				return
			}
			if entries, ok := config.Dirs[filePath]; ok {
				writeJSON(w, http.StatusOK, entries)
				return
			}
			if file, ok := config.Files[filePath]; ok {
				writeJSON(w, http.StatusOK, file)
				return
			}
			writeError(w, http.StatusNotFound, "Not Found")

		case http.MethodPut:
			config.record("PUT contents", filePath)
			if config.failed(w, "PUT contents") {
				return
			}

			var req PutFileRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			req.Path = filePath
			config.PutFiles = append(config.PutFiles, req)

			decoded, err := base64.StdEncoding.DecodeString(req.Content)
			if err != nil {
				writeError(w, http.StatusBadRequest, "content is not valid base64")
				return
			}

			// A write against an existing file must carry its current sha
			if existing, ok := config.Files[filePath]; ok && req.SHA != existing.GetSHA() {
				writeError(w, http.StatusConflict, "sha does not match")
				return
			}

			updated := FileFixture(filePath, string(decoded))
			updated.SHA = github.String(config.nextSHA("blob"))
			config.Files[filePath] = updated

			writeJSON(w, http.StatusOK, &github.RepositoryContentResponse{
				Content: updated,
				Commit: github.Commit{
					SHA:     github.String(config.nextSHA("commit")),
					Message: github.String(req.Message),
				},
			})

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// GET /repos/{owner}/{repo}/git/ref/{ref}
	mux.HandleFunc(base+"/git/ref/", func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimPrefix(r.URL.Path, base+"/git/ref/")
		config.record("GET ref", ref)
		if config.failed(w, "GET ref") {
			return
		}

		sha, ok := config.Refs[ref]
		if !ok {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeJSON(w, http.StatusOK, &github.Reference{
			Ref:    github.String("refs/" + ref),
			Object: &github.GitObject{Type: github.String("commit"), SHA: github.String(sha)},
		})
	})

	// PATCH /repos/{owner}/{repo}/git/refs/{ref}
	mux.HandleFunc(base+"/git/refs/", func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimPrefix(r.URL.Path, base+"/git/refs/")
		config.record("PATCH refs", ref)
		if config.failed(w, "PATCH refs") {
			return
		}

		var req struct {
			SHA   string `json:"sha"`
			Force bool   `json:"force"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if _, ok := config.Refs[ref]; !ok {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		config.Refs[ref] = req.SHA
		config.UpdatedRefs = append(config.UpdatedRefs, UpdatedRef{Ref: ref, SHA: req.SHA, Force: req.Force})

		writeJSON(w, http.StatusOK, &github.Reference{
			Ref:    github.String("refs/" + ref),
			Object: &github.GitObject{Type: github.String("commit"), SHA: github.String(req.SHA)},
		})
	})

	// POST /repos/{owner}/{repo}/git/trees
	mux.HandleFunc(base+"/git/trees", func(w http.ResponseWriter, r *http.Request) {
		config.record("POST trees", "")
		if config.failed(w, "POST trees") {
			return
		}

		var req struct {
			BaseTree string          `json:"base_tree"`
			Tree     []TreeEntrySpec `json:"tree"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sha := config.nextSHA("tree")
		config.CreatedTrees = append(config.CreatedTrees, CreatedTree{
			BaseTree: req.BaseTree,
			Entries:  req.Tree,
			SHA:      sha,
		})
		writeJSON(w, http.StatusCreated, &github.Tree{SHA: github.String(sha)})
	})

	// POST /repos/{owner}/{repo}/git/commits
	mux.HandleFunc(base+"/git/commits", func(w http.ResponseWriter, r *http.Request) {
		config.record("POST commits", "")
		if config.failed(w, "POST commits") {
			return
		}

		var req struct {
			Message string   `json:"message"`
			Tree    string   `json:"tree"`
			Parents []string `json:"parents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sha := config.nextSHA("commit")
		config.CreatedCommits = append(config.CreatedCommits, CreatedCommit{
			Message: req.Message,
			Tree:    req.Tree,
			Parents: req.Parents,
			SHA:     sha,
		})

		commit := &github.Commit{
			SHA:     github.String(sha),
			Message: github.String(req.Message),
			Tree:    &github.Tree{SHA: github.String(req.Tree)},
		}
		for _, parent := range req.Parents {
			commit.Parents = append(commit.Parents, &github.Commit{SHA: github.String(parent)})
		}
		writeJSON(w, http.StatusCreated, commit)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
