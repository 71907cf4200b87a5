package app

// Mode identifies the active view and carries its payload. It is a
// closed sum: the dispatcher switches exhaustively over the concrete
// types below, and no other package can add variants.
type Mode interface {
	isMode()
}

// NormalMode is the stash list, optionally with the search prompt open.
type NormalMode struct{}

// ContentKind selects what a ContentMode displays.
type ContentKind int

const (
	// ContentDiff is the full patch of the selected stash.
	ContentDiff ContentKind = iota
	// ContentFiles is the per-file stat listing.
	ContentFiles
)

// ContentMode is the scrollable diff or file-list view.
type ContentMode struct {
	Kind ContentKind
}

// ConfirmAction is the stash operation awaiting confirmation.
type ConfirmAction int

const (
	ActionApply ConfirmAction = iota
	ActionPop
	ActionDrop
)

// String returns the action verb for dialogs and logs.
func (a ConfirmAction) String() string {
	switch a {
	case ActionApply:
		return "apply"
	case ActionPop:
		return "pop"
	case ActionDrop:
		return "drop"
	}
	return "unknown"
}

// ConfirmMode asks before running a stash operation on the selection.
type ConfirmMode struct {
	Action ConfirmAction
}

// NewStashMode is the create-stash form.
type NewStashMode struct{}

// MessageMode shows an operation result until any key dismisses it.
type MessageMode struct {
	Text string
}

func (NormalMode) isMode()   {}
func (ContentMode) isMode()  {}
func (ConfirmMode) isMode()  {}
func (NewStashMode) isMode() {}
func (MessageMode) isMode()  {}
