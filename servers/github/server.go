package github

import (
	mcp "github.com/starbeam-labs/github-star-mcp"
)

// Server builds the GitHub starring tool set. The default token is used when a call carries
// no token argument of its own; clientOptions apply to every client the handlers create.
type Server struct {
	defaultToken  string
	clientOptions []ClientOption
}

// NewServer creates a GitHub tool server. defaultToken may be empty; anonymous clients work
// for the read-only tools under GitHub's anonymous rate limits.
func NewServer(defaultToken string, clientOptions ...ClientOption) *Server {
	return &Server{
		defaultToken:  defaultToken,
		clientOptions: clientOptions,
	}
}

// ToolSet returns the registry of GitHub starring tools.
func (s *Server) ToolSet() *mcp.ToolSet {
	ts := mcp.NewToolSet()

	ts.Register(mcp.Tool{
		Name:        "get_user_starred_repos",
		Description: "Get the list of repositories starred by a GitHub user. Note: pass the token parameter if you hit API rate limits!",
		InputSchema: getUserStarredReposSchema,
	}, s.getUserStarredRepos)

	ts.Register(mcp.Tool{
		Name:        "search_starred_repos",
		Description: "Search within a user's starred repositories by name, description, or topic. Wildcards in the query match against repository names.",
		InputSchema: searchStarredReposSchema,
	}, s.searchStarredRepos)

	ts.Register(mcp.Tool{
		Name:        "get_repo_info",
		Description: "Get detailed information about a single GitHub repository.",
		InputSchema: getRepoInfoSchema,
	}, s.getRepoInfo)

	ts.Register(mcp.Tool{
		Name:        "check_if_starred",
		Description: "Check whether the authenticated user has starred a repository. Requires a token.",
		InputSchema: checkIfStarredSchema,
	}, s.checkIfStarred)

	ts.Register(mcp.Tool{
		Name:        "star_repo",
		Description: "Star a repository on behalf of the authenticated user. Requires a token with starring permission.",
		InputSchema: starRepoSchema,
	}, s.starRepo)

	ts.Register(mcp.Tool{
		Name:        "unstar_repo",
		Description: "Remove the authenticated user's star from a repository. Requires a token with starring permission.",
		InputSchema: unstarRepoSchema,
	}, s.unstarRepo)

	ts.Register(mcp.Tool{
		Name:        "get_starred_stats",
		Description: "Aggregate statistics over a user's starred repositories: language, topic, and license distributions.",
		InputSchema: getStarredStatsSchema,
	}, s.getStarredStats)

	ts.Register(mcp.Tool{
		Name:        "get_repo_languages",
		Description: "Get the language byte distribution of a repository with percentages.",
		InputSchema: getRepoLanguagesSchema,
	}, s.getRepoLanguages)

	return ts
}

// client builds an API client for one call, preferring a token argument over the default.
func (s *Server) client(args map[string]any) *Client {
	token := s.defaultToken
	if t, ok := args["token"].(string); ok && t != "" {
		token = t
	}
	return NewClient(token, s.clientOptions...)
}
