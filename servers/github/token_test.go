package github

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveTokenPriority(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(tokenEnv, "env-token")

	if got := ResolveToken(dir); got != "env-token" {
		t.Errorf("got %q, want the environment token", got)
	}

	writeFile(t, dir, plainTokenFile, "# comment line\nplain-token\n")
	if got := ResolveToken(dir); got != "plain-token" {
		t.Errorf("got %q, want the plain token file to win over the environment", got)
	}

	writeFile(t, dir, starringTokenFile, "some note\ngithub_pat_abc123\n")
	if got := ResolveToken(dir); got != "github_pat_abc123" {
		t.Errorf("got %q, want the starring token file to win", got)
	}
}

func TestResolveTokenStarringFileRequiresPrefix(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(tokenEnv, "")

	// A starring token file without a fine-grained token line yields nothing from it.
	writeFile(t, dir, starringTokenFile, "classic-token\n")
	if got := ResolveToken(dir); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestResolveTokenEmpty(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(tokenEnv, "")

	if got := ResolveToken(dir); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
