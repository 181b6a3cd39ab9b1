package github

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestToolSetNamesAndOrder(t *testing.T) {
	ts := NewServer("").ToolSet()

	want := []string{
		"get_user_starred_repos",
		"search_starred_repos",
		"get_repo_info",
		"check_if_starred",
		"star_repo",
		"unstar_repo",
		"get_starred_stats",
		"get_repo_languages",
	}

	tools := ts.Tools()
	if len(tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(tools), len(want))
	}
	for i, tool := range tools {
		if tool.Name != want[i] {
			t.Errorf("tools[%d] = %q, want %q", i, tool.Name, want[i])
		}
		if len(tool.InputSchema) == 0 {
			t.Errorf("tool %q has no input schema", tool.Name)
		}
		var schema map[string]any
		if err := json.Unmarshal(tool.InputSchema, &schema); err != nil {
			t.Errorf("tool %q schema is not valid JSON: %v", tool.Name, err)
		}
	}
}

func TestToolSchemaRequiredArguments(t *testing.T) {
	ts := NewServer("").ToolSet()

	want := map[string][]string{
		"get_user_starred_repos": {"username"},
		"search_starred_repos":   {"username", "query"},
		"get_repo_info":          {"owner", "repo"},
		"check_if_starred":       {"owner", "repo", "token"},
		"star_repo":              {"owner", "repo", "token"},
		"unstar_repo":            {"owner", "repo", "token"},
		"get_starred_stats":      {"username"},
		"get_repo_languages":     {"owner", "repo"},
	}

	for _, tool := range ts.Tools() {
		var schema struct {
			Required []string `json:"required"`
		}
		if err := json.Unmarshal(tool.InputSchema, &schema); err != nil {
			t.Fatalf("tool %q schema: %v", tool.Name, err)
		}

		wantRequired := want[tool.Name]
		if len(schema.Required) != len(wantRequired) {
			t.Errorf("tool %q required = %v, want %v", tool.Name, schema.Required, wantRequired)
			continue
		}
		for i, name := range wantRequired {
			if schema.Required[i] != name {
				t.Errorf("tool %q required = %v, want %v", tool.Name, schema.Required, wantRequired)
				break
			}
		}
	}
}

func TestToolMissingParameter(t *testing.T) {
	ts := NewServer("").ToolSet()

	tests := []struct {
		tool string
		args map[string]any
		want string
	}{
		{tool: "get_user_starred_repos", args: map[string]any{}, want: "username"},
		{tool: "search_starred_repos", args: map[string]any{"username": "octocat"}, want: "query"},
		{tool: "get_repo_info", args: map[string]any{"owner": "octocat"}, want: "repo"},
		{tool: "star_repo", args: map[string]any{"repo": "hello"}, want: "owner"},
		{tool: "get_starred_stats", args: map[string]any{}, want: "username"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			content, err := ts.Call(context.Background(), tt.tool, tt.args)
			if err != nil {
				t.Fatalf("missing parameters must not be a handler error, got %v", err)
			}
			if len(content) != 1 {
				t.Fatalf("got %d content items", len(content))
			}
			if !strings.HasPrefix(content[0].Text, "Error: missing required parameter") ||
				!strings.Contains(content[0].Text, tt.want) {
				t.Errorf("got %q", content[0].Text)
			}
		})
	}
}

func TestToolCollaboratorFailureIsTextContent(t *testing.T) {
	srv := stubAPI(t, nil)
	ts := NewServer("", WithBaseURL(srv.URL)).ToolSet()

	content, err := ts.Call(context.Background(), "get_repo_info", map[string]any{
		"owner": "ghost",
		"repo":  "nope",
	})
	if err != nil {
		t.Fatalf("collaborator failures must not be handler errors, got %v", err)
	}
	if len(content) != 1 || !strings.HasPrefix(content[0].Text, "Error:") {
		t.Errorf("got %+v", content)
	}
}

func TestToolSuccessReturnsJSON(t *testing.T) {
	srv := stubAPI(t, nil)
	ts := NewServer("", WithBaseURL(srv.URL)).ToolSet()

	content, err := ts.Call(context.Background(), "get_user_starred_repos", map[string]any{
		"username": "octocat",
		"page":     float64(1),
		"per_page": float64(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content) != 1 {
		t.Fatalf("got %d content items", len(content))
	}

	var result StarredReposResult
	if err := json.Unmarshal([]byte(content[0].Text), &result); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if result.Username != "octocat" || len(result.Repositories) != 3 {
		t.Errorf("got %+v", result)
	}
}

func TestToolTokenArgumentOverridesDefault(t *testing.T) {
	var gotAuth string
	srv := stubAPI(t, func(w http.ResponseWriter, r *http.Request) bool {
		gotAuth = r.Header.Get("Authorization")
		return false
	})

	ts := NewServer("default-token", WithBaseURL(srv.URL)).ToolSet()

	_, err := ts.Call(context.Background(), "get_user_starred_repos", map[string]any{
		"username": "octocat",
		"token":    "per-call-token",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "token per-call-token" {
		t.Errorf("got auth %q, want the per-call token", gotAuth)
	}
}
