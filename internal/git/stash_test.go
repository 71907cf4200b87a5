package git

import (
	"testing"
)

func TestParseStashList(t *testing.T) {
	out := "stash@{0}|WIP on main: 1a2b3c Fix parser|2 hours ago\n" +
		"stash@{1}|On feature/login: save progress|3 days ago\n" +
		"stash@{2}|custom message without prefix|5 weeks ago\n"

	stashes := parseStashList(out)
	if len(stashes) != 3 {
		t.Fatalf("Expected 3 stashes, got %d", len(stashes))
	}

	first := stashes[0]
	if first.Index != 0 {
		t.Errorf("Expected index 0, got %d", first.Index)
	}
	if first.Name != "stash@{0}" {
		t.Errorf("Expected name stash@{0}, got %q", first.Name)
	}
	if first.Message != "WIP on main: 1a2b3c Fix parser" {
		t.Errorf("Unexpected message %q", first.Message)
	}
	if first.Date != "2 hours ago" {
		t.Errorf("Expected date '2 hours ago', got %q", first.Date)
	}

	if stashes[1].Index != 1 || stashes[2].Index != 2 {
		t.Error("Indices should follow list order")
	}
}

func TestParseStashListSkipsMalformedLines(t *testing.T) {
	out := "stash@{0}|WIP on main: abc fix|1 hour ago\n" +
		"garbage line\n" +
		"\n" +
		"stash@{1}|On dev: other|2 hours ago\n"

	stashes := parseStashList(out)
	if len(stashes) != 2 {
		t.Fatalf("Expected 2 stashes, got %d", len(stashes))
	}
	// Indices stay dense even when lines are skipped.
	if stashes[1].Index != 1 {
		t.Errorf("Expected index 1, got %d", stashes[1].Index)
	}
}

func TestParseStashListEmpty(t *testing.T) {
	stashes := parseStashList("")
	if len(stashes) != 0 {
		t.Errorf("Expected no stashes, got %d", len(stashes))
	}
}

func TestExtractBranch(t *testing.T) {
	tests := []struct {
		message  string
		branch   string
		shortMsg string
	}{
		{"WIP on feature/x: abc123 msg", "feature/x", "abc123 msg"},
		{"On main: cleanup", "main", "cleanup"},
		{"random text", "unknown", "random text"},
		{"WIP on main: 1a2b3c Fix the parser", "main", "1a2b3c Fix the parser"},
		{"On release/2.1: hotfix notes", "release/2.1", "hotfix notes"},
		{"WIP on : empty branch", "", "empty branch"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := extractBranch(tt.message); got != tt.branch {
				t.Errorf("extractBranch(%q) = %q, want %q", tt.message, got, tt.branch)
			}
			if got := shortMessage(tt.message); got != tt.shortMsg {
				t.Errorf("shortMessage(%q) = %q, want %q", tt.message, got, tt.shortMsg)
			}
		})
	}
}

func TestInstanceLock(t *testing.T) {
	dir := t.TempDir()

	lock, err := AcquireInstanceLock(dir)
	if err != nil {
		t.Fatalf("First acquire failed: %v", err)
	}

	if _, err := AcquireInstanceLock(dir); err == nil {
		t.Error("Second acquire should fail while lock is held")
	}

	lock.Release()

	relock, err := AcquireInstanceLock(dir)
	if err != nil {
		t.Fatalf("Re-acquire after release failed: %v", err)
	}
	relock.Release()
}
