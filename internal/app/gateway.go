package app

import (
	"github.com/stashtui/stashtui/internal/git"
)

// Gateway abstracts the stash operations the UI needs. The production
// implementation is git.Client; tests use an in-memory fake so the
// dispatcher and state logic run without a git binary.
//
// Mutating and listing calls return an error whose message is shown to
// the user verbatim; the UI never inspects error structure beyond that.
// CurrentBranch is best-effort and reports "" instead of failing.
type Gateway interface {
	ListStashes() ([]git.Stash, error)
	CurrentBranch() string
	StashDiff(name string) (string, error)
	StashFiles(name string) (string, error)
	ApplyStash(name string) error
	PopStash(name string) error
	DropStash(name string) error
	PushStash(message string, includeUntracked bool) error
}
