package github

import (
	"context"
	"encoding/json"
	"fmt"

	mcp "github.com/starbeam-labs/github-star-mcp"
)

// Handlers report missing arguments and collaborator failures as text content with a nil
// error, keeping them inside a successful JSON-RPC envelope. Only marshalling faults return
// a non-nil error.

func (s *Server) getUserStarredRepos(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	username, ok := stringArg(args, "username")
	if !ok {
		return missingParam("username"), nil
	}

	page := intArg(args, "page", 1)
	perPage := intArg(args, "per_page", 30)
	sort := stringArgOr(args, "sort", "created")

	result, err := s.client(args).StarredRepos(ctx, username, page, perPage, sort)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func (s *Server) searchStarredRepos(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	username, ok := stringArg(args, "username")
	if !ok {
		return missingParam("username"), nil
	}
	query, ok := stringArg(args, "query")
	if !ok {
		return missingParam("query"), nil
	}
	language := stringArgOr(args, "language", "")

	result, err := s.client(args).SearchStarred(ctx, username, query, language)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func (s *Server) getRepoInfo(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	owner, repo, errContent := ownerRepoArgs(args)
	if errContent != nil {
		return errContent, nil
	}

	result, err := s.client(args).RepoInfo(ctx, owner, repo)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func (s *Server) checkIfStarred(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	owner, repo, errContent := ownerRepoArgs(args)
	if errContent != nil {
		return errContent, nil
	}

	result, err := s.client(args).CheckStarred(ctx, owner, repo)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func (s *Server) starRepo(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	owner, repo, errContent := ownerRepoArgs(args)
	if errContent != nil {
		return errContent, nil
	}

	result, err := s.client(args).Star(ctx, owner, repo)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func (s *Server) unstarRepo(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	owner, repo, errContent := ownerRepoArgs(args)
	if errContent != nil {
		return errContent, nil
	}

	result, err := s.client(args).Unstar(ctx, owner, repo)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func (s *Server) getStarredStats(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	username, ok := stringArg(args, "username")
	if !ok {
		return missingParam("username"), nil
	}

	result, err := s.client(args).StarredStats(ctx, username)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func (s *Server) getRepoLanguages(ctx context.Context, args map[string]any) ([]mcp.Content, error) {
	owner, repo, errContent := ownerRepoArgs(args)
	if errContent != nil {
		return errContent, nil
	}

	result, err := s.client(args).RepoLanguages(ctx, owner, repo)
	if err != nil {
		return errorContent(err), nil
	}
	return jsonContent(result)
}

func ownerRepoArgs(args map[string]any) (owner, repo string, errContent []mcp.Content) {
	owner, ok := stringArg(args, "owner")
	if !ok {
		return "", "", missingParam("owner")
	}
	repo, ok = stringArg(args, "repo")
	if !ok {
		return "", "", missingParam("repo")
	}
	return owner, repo, nil
}

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func stringArgOr(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// intArg reads an integer argument. JSON numbers decode as float64.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func missingParam(name string) []mcp.Content {
	return []mcp.Content{{
		Type: mcp.ContentTypeText,
		Text: fmt.Sprintf("Error: missing required parameter %q", name),
	}}
}

func errorContent(err error) []mcp.Content {
	return []mcp.Content{{
		Type: mcp.ContentTypeText,
		Text: "Error: " + err.Error(),
	}}
}

func jsonContent(v any) ([]mcp.Content, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return []mcp.Content{{
		Type: mcp.ContentTypeText,
		Text: string(data),
	}}, nil
}
