// Package github fetches a user's public GitHub data: profile, repository
// list, per-repository languages, README and commit counts over REST, and
// the contribution calendar over GraphQL.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/itslokeshx/devintel/internal/analyzer"
)

const (
	// DefaultBaseURL is the GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"

	// DefaultGraphQLURL is the GitHub GraphQL endpoint.
	DefaultGraphQLURL = "https://api.github.com/graphql"

	// DefaultBatchSize is how many repositories are enriched concurrently.
	DefaultBatchSize = 5

	// DefaultBatchDelay paces consecutive enrichment batches to stay
	// under GitHub's secondary rate limits.
	DefaultBatchDelay = 500 * time.Millisecond

	requestTimeout = 15 * time.Second
	perPage        = 100
)

// Client is a GitHub API client for one configured endpoint pair.
type Client struct {
	httpClient *http.Client
	baseURL    string
	graphqlURL string
	token      string
	batchSize  int
	batchDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token used for both REST and GraphQL calls.
// The GraphQL calendar requires one; unauthenticated REST works with
// tight rate limits.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithBaseURLs overrides the REST and GraphQL endpoints.
func WithBaseURLs(baseURL, graphqlURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
		c.graphqlURL = graphqlURL
	}
}

// WithBatching overrides the enrichment batch size and inter-batch delay.
func WithBatching(size int, delay time.Duration) Option {
	return func(c *Client) {
		if size > 0 {
			c.batchSize = size
		}
		c.batchDelay = delay
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a GitHub client with the default endpoints.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    DefaultBaseURL,
		graphqlURL: DefaultGraphQLURL,
		batchSize:  DefaultBatchSize,
		batchDelay: DefaultBatchDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs an authenticated GET and decodes the JSON body into out.
// The returned response headers are those of the final request.
func (c *Client) get(ctx context.Context, url string, out any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return resp.Header, errNotFound
	}
	if resp.StatusCode == http.StatusConflict {
		return resp.Header, errConflict
	}
	if resp.StatusCode != http.StatusOK {
		return resp.Header, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.Header, fmt.Errorf("decoding %s: %w", url, err)
		}
	}
	return resp.Header, nil
}

var (
	errNotFound = fmt.Errorf("not found")
	errConflict = fmt.Errorf("conflict")
)

// userResponse mirrors the GET /users/{username} payload.
type userResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	AvatarURL   string    `json:"avatar_url"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile fetches the user profile. Failure here is fatal for the
// analysis run and propagates to the caller.
func (c *Client) Profile(ctx context.Context, username string) (analyzer.Profile, error) {
	var user userResponse
	url := fmt.Sprintf("%s/users/%s", c.baseURL, username)
	if _, err := c.get(ctx, url, &user); err != nil {
		return analyzer.Profile{}, fmt.Errorf("fetching profile for %s: %w", username, err)
	}
	return analyzer.Profile{
		Username:    user.Login,
		Name:        user.Name,
		Bio:         user.Bio,
		Company:     user.Company,
		Location:    user.Location,
		AvatarURL:   user.AvatarURL,
		Followers:   user.Followers,
		Following:   user.Following,
		PublicRepos: user.PublicRepos,
		CreatedAt:   user.CreatedAt,
	}, nil
}

// repoResponse mirrors one element of the GET /users/{username}/repos payload.
type repoResponse struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Watchers    int       `json:"watchers_count"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PushedAt    time.Time `json:"pushed_at"`
	Size        int       `json:"size"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`
	License     *struct {
		Key string `json:"key"`
	} `json:"license"`
}

// Repositories fetches the full repository list, following Link-header
// pagination. Failure here is fatal and propagates to the caller.
func (c *Client) Repositories(ctx context.Context, username string) ([]analyzer.RawRepository, error) {
	var repos []analyzer.RawRepository
	url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", c.baseURL, username, perPage)

	for url != "" {
		var page []repoResponse
		headers, err := c.get(ctx, url, &page)
		if err != nil {
			return nil, fmt.Errorf("fetching repositories for %s: %w", username, err)
		}
		for _, r := range page {
			repos = append(repos, analyzer.RawRepository{
				Name:            r.Name,
				Description:     r.Description,
				URL:             r.HTMLURL,
				Stars:           r.Stars,
				Forks:           r.Forks,
				Watchers:        r.Watchers,
				PrimaryLanguage: r.Language,
				Topics:          r.Topics,
				CreatedAt:       r.CreatedAt,
				UpdatedAt:       r.UpdatedAt,
				PushedAt:        r.PushedAt,
				SizeKB:          r.Size,
				HasLicense:      r.License != nil,
				Archived:        r.Archived,
				Fork:            r.Fork,
			})
		}
		url = nextLink(headers.Get("Link"))
	}

	return repos, nil
}

// Languages fetches the per-language byte map for one repository.
func (c *Client) Languages(ctx context.Context, username, repo string) (map[string]int64, error) {
	langs := make(map[string]int64)
	url := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, username, repo)
	if _, err := c.get(ctx, url, &langs); err != nil {
		return nil, fmt.Errorf("fetching languages for %s/%s: %w", username, repo, err)
	}
	return langs, nil
}

// readmeResponse mirrors the GET /repos/{owner}/{repo}/readme payload.
type readmeResponse struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Readme reports README presence and size for one repository. A 404 is
// not an error; it means the repository has no README.
func (c *Client) Readme(ctx context.Context, username, repo string) (bool, int, error) {
	var readme readmeResponse
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, username, repo)
	_, err := c.get(ctx, url, &readme)
	if err == errNotFound {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("fetching readme for %s/%s: %w", username, repo, err)
	}
	return true, readme.Size, nil
}

var lastPagePattern = regexp.MustCompile(`[?&]page=(\d+)>; rel="last"`)

// CommitCount estimates the commit count for one repository by requesting
// a single commit and reading the last-page number from the Link header.
// A repository with no Link header has at most one page of one commit.
func (c *Client) CommitCount(ctx context.Context, username, repo string) (int, error) {
	var commits []json.RawMessage
	url := fmt.Sprintf("%s/repos/%s/%s/commits?per_page=1", c.baseURL, username, repo)
	headers, err := c.get(ctx, url, &commits)
	if err == errNotFound || err == errConflict {
		// The commits endpoint 404s when the repository is gone and
		// 409s when it has no commits yet; both mean zero commits here.
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("fetching commit count for %s/%s: %w", username, repo, err)
	}

	if m := lastPagePattern.FindStringSubmatch(headers.Get("Link")); m != nil {
		count, err := strconv.Atoi(m[1])
		if err == nil {
			return count, nil
		}
	}
	return len(commits), nil
}

// nextLink parses a Link header and returns the rel="next" URL, or empty.
func nextLink(header string) string {
	for _, link := range strings.Split(header, ",") {
		parts := strings.Split(link, ";")
		if len(parts) < 2 || strings.TrimSpace(parts[1]) != `rel="next"` {
			continue
		}
		url := strings.TrimSpace(parts[0])
		return strings.Trim(url, "<>")
	}
	return ""
}
