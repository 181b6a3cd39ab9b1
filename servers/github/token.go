package github

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	// starringTokenFile holds fine-grained tokens with starring permission, one per line.
	starringTokenFile = "starring_accessed_token"
	// plainTokenFile holds a single classic token; lines starting with # are ignored.
	plainTokenFile = "github_token.txt"
	// tokenEnv is the environment fallback when no token file is present.
	tokenEnv = "GITHUB_TOKEN"
)

// DefaultToken resolves the GitHub token from the current working directory. See ResolveToken.
func DefaultToken() string {
	return ResolveToken(".")
}

// ResolveToken returns the GitHub token for dir, trying sources in priority order: the
// starring token file first, then the plain token file, then the GITHUB_TOKEN environment
// variable. It returns the empty string when no source yields a token; an empty token is
// valid for read-only operations.
func ResolveToken(dir string) string {
	if token := readStarringToken(filepath.Join(dir, starringTokenFile)); token != "" {
		return token
	}
	if token := readPlainToken(filepath.Join(dir, plainTokenFile)); token != "" {
		return token
	}
	return os.Getenv(tokenEnv)
}

// readStarringToken returns the first fine-grained token line in the file.
func readStarringToken(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "github_pat_") {
			return line
		}
	}
	return ""
}

// readPlainToken returns the first non-empty, non-comment line in the file.
func readPlainToken(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
