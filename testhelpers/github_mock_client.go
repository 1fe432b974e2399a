package testhelpers

import (
	"net/url"
	"testing"

	"github.com/google/go-github/v62/github"
)

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockRepoConfig) (*github.Client, string, string) {
	if config == nil {
		config = NewMockRepoConfig()
	}
	server := NewMockGitHubServer(t, config)

	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	return client, config.Owner, config.Repo
}
