package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reagent-labs/reagent/pkg/agent"
)

// DefaultGitHubBaseURL is the public GitHub REST endpoint.
const DefaultGitHubBaseURL = "https://api.github.com"

// maxListedItems caps repository and issue listings for prompt brevity.
const maxListedItems = 5

// GitHubClient is the shared REST transport for the GitHub tools.
type GitHubClient struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		BaseURL: DefaultGitHubBaseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// do issues a request and returns the status code and body. Transport
// failures are returned as errors; HTTP error statuses are not, so each tool
// can phrase its own observation around the body.
func (c *GitHubClient) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.BaseURL, "/")+path, body)
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("github response: %w", err)
	}
	return resp.StatusCode, data, nil
}

type repoPayload struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Language    string `json:"language"`
	HTMLURL     string `json:"html_url"`
}

type issuePayload struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

// SearchRepositoriesTool searches repositories by keyword.
type SearchRepositoriesTool struct {
	GitHub *GitHubClient
}

func (t *SearchRepositoriesTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "search_repositories",
		Description: "Search GitHub repositories based on a keyword or phrase, e.g. 'LLM agents'.",
	}
}

func (t *SearchRepositoriesTool) Invoke(ctx context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	query := strings.TrimSpace(req.Input)
	status, body, err := t.GitHub.do(ctx, http.MethodGet, "/search/repositories?q="+url.QueryEscape(query), nil)
	if err != nil {
		return agent.ToolResponse{}, err
	}
	if status != http.StatusOK {
		return agent.ToolResponse{Content: fmt.Sprintf("Error: %s", body)}, nil
	}

	var result struct {
		Items []repoPayload `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return agent.ToolResponse{}, fmt.Errorf("search response: %w", err)
	}
	if len(result.Items) == 0 {
		return agent.ToolResponse{Content: fmt.Sprintf("No repositories found for query: %s", query)}, nil
	}

	lines := make([]string, 0, maxListedItems)
	for i, repo := range result.Items {
		if i >= maxListedItems {
			break
		}
		lines = append(lines, fmt.Sprintf("Repo: %s, URL: %s", repo.FullName, repo.HTMLURL))
	}
	return agent.ToolResponse{Content: strings.Join(lines, "\n")}, nil
}

// RepoDetailsTool fetches details for one repository.
type RepoDetailsTool struct {
	GitHub *GitHubClient
}

func (t *RepoDetailsTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "get_repo_details",
		Description: "Get details about a specific GitHub repository. Input MUST be in the exact 'owner/repo_name' format (e.g., 'microsoft/vscode').",
	}
}

func (t *RepoDetailsTool) Invoke(ctx context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	repoName := strings.TrimSpace(req.Input)
	status, body, err := t.GitHub.do(ctx, http.MethodGet, "/repos/"+repoName, nil)
	if err != nil {
		return agent.ToolResponse{}, err
	}
	if status == http.StatusNotFound {
		return agent.ToolResponse{
			Content: fmt.Sprintf("Error: Repository '%s' not found. Please ensure the format is 'owner/repo_name'.", repoName),
		}, nil
	}
	if status != http.StatusOK {
		return agent.ToolResponse{Content: fmt.Sprintf("Error fetching details for %s: %s", repoName, body)}, nil
	}

	var repo repoPayload
	if err := json.Unmarshal(body, &repo); err != nil {
		return agent.ToolResponse{}, fmt.Errorf("repo response: %w", err)
	}
	return agent.ToolResponse{
		Content: fmt.Sprintf("Repo: %s\nDescription: %s\nStars: %d\nForks: %d\nLanguage: %s\nURL: %s",
			repo.FullName, repo.Description, repo.Stars, repo.Forks, repo.Language, repo.HTMLURL),
	}, nil
}

// CreateIssueTool opens an issue. Input is a JSON object with repo_name,
// title and an optional body.
type CreateIssueTool struct {
	GitHub *GitHubClient
}

func (t *CreateIssueTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "create_issue",
		Description: `Create a GitHub issue. Input must be a JSON string with 'repo_name', 'title', and optional 'body' keys. The 'repo_name' MUST be in 'owner/repo' format.`,
	}
}

func (t *CreateIssueTool) Invoke(ctx context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	var input struct {
		RepoName string `json:"repo_name"`
		Title    string `json:"title"`
		Body     string `json:"body"`
	}
	if err := json.Unmarshal([]byte(req.Input), &input); err != nil || input.RepoName == "" || input.Title == "" {
		return agent.ToolResponse{
			Content: `Error: Input should be JSON format like {"repo_name": "owner/repo", "title": "Issue title", "body": "Issue body"}`,
		}, nil
	}

	payload := map[string]string{"title": input.Title, "body": input.Body}
	status, body, err := t.GitHub.do(ctx, http.MethodPost, "/repos/"+input.RepoName+"/issues", payload)
	if err != nil {
		return agent.ToolResponse{}, err
	}
	if status != http.StatusCreated {
		return agent.ToolResponse{Content: fmt.Sprintf("Error creating issue in %s: %s", input.RepoName, body)}, nil
	}

	var issue issuePayload
	if err := json.Unmarshal(body, &issue); err != nil {
		return agent.ToolResponse{}, fmt.Errorf("issue response: %w", err)
	}
	return agent.ToolResponse{Content: fmt.Sprintf("Issue created: %s", issue.HTMLURL)}, nil
}

// ListIssuesTool lists open issues for a repository.
type ListIssuesTool struct {
	GitHub *GitHubClient
}

func (t *ListIssuesTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "list_issues",
		Description: "List the open issues for a GitHub repository. Input MUST be in the exact 'owner/repo_name' format.",
	}
}

func (t *ListIssuesTool) Invoke(ctx context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	repoName := strings.TrimSpace(req.Input)
	status, body, err := t.GitHub.do(ctx, http.MethodGet, "/repos/"+repoName+"/issues", nil)
	if err != nil {
		return agent.ToolResponse{}, err
	}
	if status == http.StatusNotFound {
		return agent.ToolResponse{
			Content: fmt.Sprintf("Error: Repository '%s' not found. Please ensure the format is 'owner/repo_name'.", repoName),
		}, nil
	}
	if status != http.StatusOK {
		return agent.ToolResponse{Content: fmt.Sprintf("Error listing issues for %s: %s", repoName, body)}, nil
	}

	var issues []issuePayload
	if err := json.Unmarshal(body, &issues); err != nil {
		return agent.ToolResponse{}, fmt.Errorf("issues response: %w", err)
	}
	if len(issues) == 0 {
		return agent.ToolResponse{Content: fmt.Sprintf("No open issues found in %s", repoName)}, nil
	}

	lines := make([]string, 0, maxListedItems)
	for i, issue := range issues {
		if i >= maxListedItems {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d: %s - %s", issue.Number, issue.Title, issue.HTMLURL))
	}
	return agent.ToolResponse{Content: strings.Join(lines, "\n")}, nil
}

var (
	_ agent.Tool = (*SearchRepositoriesTool)(nil)
	_ agent.Tool = (*RepoDetailsTool)(nil)
	_ agent.Tool = (*CreateIssueTool)(nil)
	_ agent.Tool = (*ListIssuesTool)(nil)
)
