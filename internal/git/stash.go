package git

import (
	"strings"
)

// stashListFormat yields "stash@{N}|<reflog subject>|<relative date>" per line.
const stashListFormat = "--format=%gd|%gs|%cr"

// Stash represents a single stash entry.
// Records are immutable; ListStashes replaces the whole slice on reload.
type Stash struct {
	// Index is the display ordinal, stable only within one load.
	Index int

	// Name is the opaque handle used in all git invocations, e.g. "stash@{0}".
	Name string

	// Message is the raw stash message, e.g. "WIP on main: abc123 Fix parser".
	Message string

	// Branch is extracted from the message, or "unknown".
	Branch string

	// ShortMsg is the human-readable part after the "branch: " prefix.
	ShortMsg string

	// Date is git's relative date string, e.g. "2 hours ago".
	Date string
}

// ListStashes returns all stash entries, most recent first.
// Index is the position in that order, starting at 0.
func (c *Client) ListStashes() ([]Stash, error) {
	out, err := c.run("stash", "list", stashListFormat)
	if err != nil {
		return nil, err
	}
	return parseStashList(out), nil
}

// parseStashList parses the output of `git stash list` with stashListFormat.
// Malformed lines are skipped.
func parseStashList(out string) []Stash {
	stashes := []Stash{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 3 {
			continue
		}

		message := parts[1]
		stashes = append(stashes, Stash{
			Index:    len(stashes),
			Name:     parts[0],
			Message:  message,
			Branch:   extractBranch(message),
			ShortMsg: shortMessage(message),
			Date:     parts[2],
		})
	}
	return stashes
}

// extractBranch pulls the branch name out of a stash message.
// Git writes "WIP on <branch>: ..." for plain stashes and
// "On <branch>: ..." for stashes created with -m.
func extractBranch(message string) string {
	for _, prefix := range []string{"WIP on ", "On "} {
		if rest, ok := strings.CutPrefix(message, prefix); ok {
			branch, _, _ := strings.Cut(rest, ":")
			return strings.TrimSpace(branch)
		}
	}
	return "unknown"
}

// shortMessage returns the part of a stash message after the first ": ",
// or the full message when no such separator exists.
func shortMessage(message string) string {
	if _, after, ok := strings.Cut(message, ": "); ok {
		return after
	}
	return message
}

// StashDiff returns the full patch for a stash entry.
func (c *Client) StashDiff(name string) (string, error) {
	return c.run("stash", "show", "-p", "--color=never", name)
}

// StashFiles returns the per-file stat listing for a stash entry.
func (c *Client) StashFiles(name string) (string, error) {
	return c.run("stash", "show", "--stat", "--color=never", name)
}

// ApplyStash applies a stash entry, keeping it in the list.
func (c *Client) ApplyStash(name string) error {
	_, err := c.run("stash", "apply", name)
	return err
}

// PopStash applies a stash entry and removes it from the list.
func (c *Client) PopStash(name string) error {
	_, err := c.run("stash", "pop", name)
	return err
}

// DropStash removes a stash entry without applying it.
func (c *Client) DropStash(name string) error {
	_, err := c.run("stash", "drop", name)
	return err
}

// PushStash saves current changes as a new stash entry with the given message.
func (c *Client) PushStash(message string, includeUntracked bool) error {
	args := []string{"stash", "push", "-m", message}
	if includeUntracked {
		args = append(args, "--include-untracked")
	}
	_, err := c.run(args...)
	return err
}
