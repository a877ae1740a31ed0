// Package publish syncs the generated CSV tree to a GitHub repository
// through the contents API.
package publish

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/IMLS/state-program-report/internal/logger"
)

// Client errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrMissingToken         = errors.New("no access token configured")
)

// Client defines the repository operations the uploader needs: look up the
// blob SHA of an existing file (empty when absent) and create or update a
// file's contents on a branch.
type Client interface {
	ContentSHA(path, branch string) (string, error)
	PutContent(path, branch, message string, content []byte, sha string) error
}

// Ensure GitHubClient implements Client.
var _ Client = (*GitHubClient)(nil)

// GitHubClient talks to the GitHub contents API over plain HTTP.
type GitHubClient struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	token      string
	logger     *logger.Logger
}

// NewGitHubClient creates a contents-API client for one repository.
func NewGitHubClient(baseURL, owner, repo, token string, log *logger.Logger) *GitHubClient {
	return &GitHubClient{
		baseURL: baseURL,
		owner:   owner,
		repo:    repo,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

// contentResponse is the subset of the contents API response we read.
type contentResponse struct {
	SHA string `json:"sha"`
}

// putRequest is the create-or-update request body.
type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// ContentSHA returns the blob SHA of path on branch, or "" when the file
// does not exist yet.
func (c *GitHubClient) ContentSHA(path, branch string) (string, error) {
	endpoint := fmt.Sprintf("%s?ref=%s", c.contentURL(path), url.QueryEscape(branch))

	body, status, err := c.do(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	if status == http.StatusNotFound {
		return "", nil
	}

	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, status, string(body))
	}

	var content contentResponse
	if err := json.Unmarshal(body, &content); err != nil {
		return "", fmt.Errorf("failed to parse content response: %w", err)
	}

	return content.SHA, nil
}

// PutContent creates or updates one file on the branch. A non-empty sha
// updates the existing blob; an empty sha creates the file.
func (c *GitHubClient) PutContent(path, branch, message string, content []byte, sha string) error {
	reqBody := putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  branch,
		SHA:     sha,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	body, status, err := c.do(http.MethodPut, c.contentURL(path), jsonBody)
	if err != nil {
		return err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, status, string(body))
	}

	return nil
}

func (c *GitHubClient) contentURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, path)
}

func (c *GitHubClient) do(method, endpoint string, body []byte) ([]byte, int, error) {
	if c.token == "" {
		return nil, 0, ErrMissingToken
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.logger != nil {
		c.logger.Debug("contents API request", "method", method, "url", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Limit response size to 10MB
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}
