// Package github exposes GitHub starring operations as MCP tools: listing and searching a
// user's starred repositories, inspecting repositories, starring and unstarring them, and
// aggregating statistics over the starred set.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultBaseURL = "https://api.github.com"
	acceptHeader   = "application/vnd.github.v3+json"
	userAgent      = "MCP-GitHub-Star-Classifier/1.0"

	// The starred-set scans (search, stats) page through the API 100 repos at a time and
	// stop at this cap to bound the number of requests.
	maxStarredScan = 1000
)

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden indicates an API rate limit or missing permission; usually fixed by a token.
	ErrForbidden = errors.New("API rate limit exceeded or insufficient permissions, check the token")
	// ErrUnauthorized indicates the provided token was rejected.
	ErrUnauthorized = errors.New("authentication failed, check the token")
	// ErrTokenRequired indicates an operation that cannot run anonymously.
	ErrTokenRequired = errors.New("this operation requires a GitHub token")
)

// Client is a minimal GitHub REST client scoped to starring operations. The zero token is
// valid; unauthenticated requests just run under GitHub's anonymous rate limits.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// ClientOption represents the options for the client.
type ClientOption func(*Client)

// WithBaseURL overrides the GitHub API base URL. Used to point the client at a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a GitHub API client. The token may be empty for anonymous access.
func NewClient(token string, options ...ClientOption) *Client {
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// rawRepo mirrors the subset of the GitHub repository object this client consumes.
type rawRepo struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	WatchersCount   int      `json:"watchers_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	HTMLURL         string   `json:"html_url"`
	CloneURL        string   `json:"clone_url"`
	SSHURL          string   `json:"ssh_url"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
	Size            int      `json:"size"`
	Topics          []string `json:"topics"`
	License         *struct {
		Name string `json:"name"`
	} `json:"license"`
	Archived      bool   `json:"archived"`
	Disabled      bool   `json:"disabled"`
	Fork          bool   `json:"fork"`
	DefaultBranch string `json:"default_branch"`
	Owner         struct {
		Login   string `json:"login"`
		Type    string `json:"type"`
		HTMLURL string `json:"html_url"`
	} `json:"owner"`
}

// RepoSummary is the simplified repository shape returned by listing operations.
type RepoSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	URL         string   `json:"url"`
	CloneURL    string   `json:"clone_url"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Topics      []string `json:"topics"`
	License     string   `json:"license,omitempty"`
	Archived    bool     `json:"archived"`
	Fork        bool     `json:"fork"`
}

// StarredReposResult is the result of StarredRepos.
type StarredReposResult struct {
	Username     string        `json:"username"`
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	TotalCount   int           `json:"total_count"`
	Repositories []RepoSummary `json:"repositories"`
}

// SearchMatch is one starred repository matched by SearchStarred.
type SearchMatch struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	URL         string   `json:"url"`
	Topics      []string `json:"topics"`
}

// SearchResult is the result of SearchStarred.
type SearchResult struct {
	Username       string        `json:"username"`
	Query          string        `json:"query"`
	LanguageFilter string        `json:"language_filter,omitempty"`
	TotalStarred   int           `json:"total_starred"`
	MatchedCount   int           `json:"matched_count"`
	Results        []SearchMatch `json:"results"`
}

// OwnerInfo identifies a repository owner.
type OwnerInfo struct {
	Login string `json:"login"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// RepoDetail is the full repository shape returned by RepoInfo.
type RepoDetail struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description"`
	Language      string    `json:"language"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	Watchers      int       `json:"watchers"`
	OpenIssues    int       `json:"open_issues"`
	URL           string    `json:"url"`
	CloneURL      string    `json:"clone_url"`
	SSHURL        string    `json:"ssh_url"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
	PushedAt      string    `json:"pushed_at"`
	Size          int       `json:"size"`
	Topics        []string  `json:"topics"`
	License       string    `json:"license,omitempty"`
	Archived      bool      `json:"archived"`
	Disabled      bool      `json:"disabled"`
	Fork          bool      `json:"fork"`
	DefaultBranch string    `json:"default_branch"`
	Owner         OwnerInfo `json:"owner"`
}

// StarredStatus reports whether the authenticated user has starred a repository.
type StarredStatus struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Starred bool   `json:"starred"`
}

// StarActionResult is the outcome of Star or Unstar.
type StarActionResult struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Action  string `json:"action"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NameCount is a named counter used in distribution listings, ordered by count descending.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StarredStats aggregates a user's starred repositories.
type StarredStats struct {
	Username             string      `json:"username"`
	TotalStarredRepos    int         `json:"total_starred_repos"`
	TotalStarsReceived   int         `json:"total_stars_received"`
	TotalForksReceived   int         `json:"total_forks_received"`
	LanguageDistribution []NameCount `json:"language_distribution"`
	TopTopics            []NameCount `json:"top_topics"`
	LicenseDistribution  []NameCount `json:"license_distribution"`
	AvgStarsPerRepo      float64     `json:"avg_stars_per_repo"`
	AvgForksPerRepo      float64     `json:"avg_forks_per_repo"`
}

// LanguageShare is the byte count and percentage of one language in a repository.
type LanguageShare struct {
	Bytes      int     `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// LanguageBreakdown is the result of RepoLanguages.
type LanguageBreakdown struct {
	Owner      string                   `json:"owner"`
	Repo       string                   `json:"repo"`
	TotalBytes int                      `json:"total_bytes"`
	Languages  map[string]LanguageShare `json:"languages"`
}

// StarredRepos returns one page of a user's starred repositories. perPage is capped at 100;
// sort is "created" or "updated".
func (c *Client) StarredRepos(ctx context.Context, username string, page, perPage int, sort string) (StarredReposResult, error) {
	if perPage > 100 {
		perPage = 100
	}

	query := url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
		"sort":     {sort},
	}

	var repos []rawRepo
	if err := c.get(ctx, "/users/"+username+"/starred", query, &repos); err != nil {
		return StarredReposResult{}, err
	}

	summaries := make([]RepoSummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, summarize(r))
	}

	return StarredReposResult{
		Username:     username,
		Page:         page,
		PerPage:      perPage,
		TotalCount:   len(summaries),
		Repositories: summaries,
	}, nil
}

// SearchStarred scans a user's starred repositories and returns the ones matching query.
// Queries containing wildcard characters are treated as glob patterns against the repository
// name; plain queries match as case-insensitive substrings of the name, description, or topics.
// An optional language restricts matches to repositories in that primary language.
func (c *Client) SearchStarred(ctx context.Context, username, query, language string) (SearchResult, error) {
	repos, err := c.fetchAllStarred(ctx, username)
	if err != nil {
		return SearchResult{}, err
	}

	match, err := compileQuery(query)
	if err != nil {
		return SearchResult{}, fmt.Errorf("invalid search pattern %q: %w", query, err)
	}

	matched := make([]SearchMatch, 0)
	for _, r := range repos {
		// Repositories with no detected primary language are never excluded by the
		// language filter; it only rejects a differing known language.
		if language != "" && r.Language != "" && !strings.EqualFold(r.Language, language) {
			continue
		}
		if !match(r) {
			continue
		}
		matched = append(matched, SearchMatch{
			ID:          r.ID,
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.StargazersCount,
			URL:         r.HTMLURL,
			Topics:      r.Topics,
		})
	}

	return SearchResult{
		Username:       username,
		Query:          query,
		LanguageFilter: language,
		TotalStarred:   len(repos),
		MatchedCount:   len(matched),
		Results:        matched,
	}, nil
}

// RepoInfo returns the detailed description of one repository.
func (c *Client) RepoInfo(ctx context.Context, owner, repo string) (RepoDetail, error) {
	var r rawRepo
	if err := c.get(ctx, "/repos/"+owner+"/"+repo, nil, &r); err != nil {
		return RepoDetail{}, err
	}

	return RepoDetail{
		ID:            r.ID,
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   r.Description,
		Language:      r.Language,
		Stars:         r.StargazersCount,
		Forks:         r.ForksCount,
		Watchers:      r.WatchersCount,
		OpenIssues:    r.OpenIssuesCount,
		URL:           r.HTMLURL,
		CloneURL:      r.CloneURL,
		SSHURL:        r.SSHURL,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		PushedAt:      r.PushedAt,
		Size:          r.Size,
		Topics:        r.Topics,
		License:       licenseName(r),
		Archived:      r.Archived,
		Disabled:      r.Disabled,
		Fork:          r.Fork,
		DefaultBranch: r.DefaultBranch,
		Owner: OwnerInfo{
			Login: r.Owner.Login,
			Type:  r.Owner.Type,
			URL:   r.Owner.HTMLURL,
		},
	}, nil
}

// CheckStarred reports whether the authenticated user has starred owner/repo. A token is
// required; a 404 from the API means the repository is simply not starred.
func (c *Client) CheckStarred(ctx context.Context, owner, repo string) (StarredStatus, error) {
	if c.token == "" {
		return StarredStatus{}, ErrTokenRequired
	}

	err := c.get(ctx, "/user/starred/"+owner+"/"+repo, nil, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return StarredStatus{Owner: owner, Repo: repo, Starred: false}, nil
		}
		return StarredStatus{}, err
	}

	return StarredStatus{Owner: owner, Repo: repo, Starred: true}, nil
}

// Star stars owner/repo on behalf of the authenticated user. A token is required.
func (c *Client) Star(ctx context.Context, owner, repo string) (StarActionResult, error) {
	if c.token == "" {
		return StarActionResult{}, ErrTokenRequired
	}

	if err := c.modify(ctx, http.MethodPut, "/user/starred/"+owner+"/"+repo); err != nil {
		return StarActionResult{}, fmt.Errorf("failed to star repository: %w", err)
	}

	return StarActionResult{
		Owner:   owner,
		Repo:    repo,
		Action:  "starred",
		Success: true,
		Message: "repository starred successfully",
	}, nil
}

// Unstar removes the authenticated user's star from owner/repo. A token is required.
func (c *Client) Unstar(ctx context.Context, owner, repo string) (StarActionResult, error) {
	if c.token == "" {
		return StarActionResult{}, ErrTokenRequired
	}

	if err := c.modify(ctx, http.MethodDelete, "/user/starred/"+owner+"/"+repo); err != nil {
		return StarActionResult{}, fmt.Errorf("failed to unstar repository: %w", err)
	}

	return StarActionResult{
		Owner:   owner,
		Repo:    repo,
		Action:  "unstarred",
		Success: true,
		Message: "repository unstarred successfully",
	}, nil
}

// StarredStats aggregates language, topic, and license distributions over a user's starred set.
func (c *Client) StarredStats(ctx context.Context, username string) (StarredStats, error) {
	repos, err := c.fetchAllStarred(ctx, username)
	if err != nil {
		return StarredStats{}, err
	}

	languages := make(map[string]int)
	topics := make(map[string]int)
	licenses := make(map[string]int)
	totalStars := 0
	totalForks := 0

	for _, r := range repos {
		lang := r.Language
		if lang == "" {
			lang = "Unknown"
		}
		languages[lang]++

		totalStars += r.StargazersCount
		totalForks += r.ForksCount

		for _, topic := range r.Topics {
			topics[topic]++
		}

		license := licenseName(r)
		if license == "" {
			license = "No License"
		}
		licenses[license]++
	}

	stats := StarredStats{
		Username:             username,
		TotalStarredRepos:    len(repos),
		TotalStarsReceived:   totalStars,
		TotalForksReceived:   totalForks,
		LanguageDistribution: sortedCounts(languages, 0),
		TopTopics:            sortedCounts(topics, 20),
		LicenseDistribution:  sortedCounts(licenses, 0),
	}
	if len(repos) > 0 {
		stats.AvgStarsPerRepo = round2(float64(totalStars) / float64(len(repos)))
		stats.AvgForksPerRepo = round2(float64(totalForks) / float64(len(repos)))
	}

	return stats, nil
}

// RepoLanguages returns the language byte distribution of one repository with percentages.
func (c *Client) RepoLanguages(ctx context.Context, owner, repo string) (LanguageBreakdown, error) {
	var byteCounts map[string]int
	if err := c.get(ctx, "/repos/"+owner+"/"+repo+"/languages", nil, &byteCounts); err != nil {
		return LanguageBreakdown{}, err
	}

	totalBytes := 0
	for _, count := range byteCounts {
		totalBytes += count
	}

	shares := make(map[string]LanguageShare, len(byteCounts))
	for lang, count := range byteCounts {
		percentage := 0.0
		if totalBytes > 0 {
			percentage = round2(float64(count) / float64(totalBytes) * 100)
		}
		shares[lang] = LanguageShare{Bytes: count, Percentage: percentage}
	}

	return LanguageBreakdown{
		Owner:      owner,
		Repo:       repo,
		TotalBytes: totalBytes,
		Languages:  shares,
	}, nil
}

// fetchAllStarred pages through a user's starred repositories, 100 at a time, up to
// maxStarredScan entries.
func (c *Client) fetchAllStarred(ctx context.Context, username string) ([]rawRepo, error) {
	var all []rawRepo
	for page := 1; ; page++ {
		query := url.Values{
			"page":     {strconv.Itoa(page)},
			"per_page": {"100"},
		}

		var repos []rawRepo
		if err := c.get(ctx, "/users/"+username+"/starred", query, &repos); err != nil {
			return nil, err
		}
		if len(repos) == 0 {
			break
		}

		all = append(all, repos...)
		if len(all) >= maxStarredScan {
			break
		}
	}
	return all, nil
}

// get performs a GET request and decodes the body into out when out is non-nil.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// modify performs a bodyless write request (PUT or DELETE) expecting 204 No Content.
func (c *Client) modify(ctx context.Context, method, path string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Length", "0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	// Starring writes answer 204 and nothing else; any other success code is suspect.
	return fmt.Errorf("API request failed (status %d, expected 204)", resp.StatusCode)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Request.URL)
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func summarize(r rawRepo) RepoSummary {
	return RepoSummary{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		Language:    r.Language,
		Stars:       r.StargazersCount,
		Forks:       r.ForksCount,
		URL:         r.HTMLURL,
		CloneURL:    r.CloneURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Topics:      r.Topics,
		License:     licenseName(r),
		Archived:    r.Archived,
		Fork:        r.Fork,
	}
}

func licenseName(r rawRepo) string {
	if r.License == nil {
		return ""
	}
	return r.License.Name
}
