// Package git wraps the git CLI for stash inspection and manipulation.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/stashtui/stashtui/internal/debug"
)

// Repo holds repository information.
type Repo struct {
	// Root is the worktree root directory.
	Root string

	// GitDir is the common git directory (shared across worktrees).
	GitDir string
}

// DetectRepo resolves the repository containing path.
// An empty path means the current directory.
func DetectRepo(path string) (*Repo, error) {
	if path == "" {
		path = "."
	}

	root, err := runGitIn(path, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	root = strings.TrimSpace(root)

	gitDir, err := runGitIn(path, "rev-parse", "--git-common-dir")
	if err != nil {
		return nil, err
	}
	gitDir = strings.TrimSpace(gitDir)
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(root, gitDir)
	}
	gitDir = filepath.Clean(gitDir)

	return &Repo{Root: root, GitDir: gitDir}, nil
}

// Client runs git commands against a single repository.
type Client struct {
	dir string
}

// NewClient returns a Client operating on the repository at dir.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// CurrentBranch returns the checked-out branch name.
// Best-effort: returns "" on any failure (detached HEAD included).
func (c *Client) CurrentBranch() string {
	out, err := c.run("branch", "--show-current")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// run executes a git command in the client's directory.
func (c *Client) run(args ...string) (string, error) {
	return runGitIn(c.dir, args...)
}

// runGitIn executes a git command in a specific directory.
func runGitIn(dir string, args ...string) (string, error) {
	defer debug.Timed("git " + strings.Join(args, " "))()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return stdout.String(), nil
}
