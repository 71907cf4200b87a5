package ui

import (
	"fmt"
	"strings"

	"github.com/stashtui/stashtui/internal/git"
)

// View constants (matching the app's modes)
const (
	ViewList = iota
	ViewContent
	ViewConfirm
	ViewNewStash
	ViewMessage
)

// RenderParams contains everything needed to draw a frame. Render is a
// pure function of this struct; it never mutates application state and
// tolerates any reachable state, including empty collections.
type RenderParams struct {
	View int

	// List
	Stashes     []git.Stash
	Total       int
	Cursor      int
	Branch      string
	Searching   bool
	SearchValue string
	SearchInput string
	StatusMsg   string
	ShowDates   bool

	// Selection (empty when nothing is selected)
	SelectedName string
	SelectedMsg  string

	// Content view
	Content       []string
	ContentScroll int
	ContentTitle  string

	// Confirm dialog
	ConfirmVerb string

	// New-stash form
	StashInput string
	Untracked  bool

	// Message view
	MessageText string

	Width  int
	Height int
}

// MinWidth is the minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the minimum terminal height we try to support.
const MinHeight = 8

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	switch p.View {
	case ViewContent:
		return renderContent(p)
	case ViewConfirm:
		return renderConfirm(p)
	case ViewNewStash:
		return renderNewStash(p)
	case ViewMessage:
		return renderMessage(p)
	default:
		return renderList(p)
	}
}

// renderList renders the main stash list.
func renderList(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 2

	header := HeaderStyle.Render("STASHES")
	if p.Branch != "" {
		header += "  " + BranchStyle.Render("on "+p.Branch)
	}
	b.WriteString(header + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if p.Searching {
		b.WriteString(p.SearchInput + "\n\n")
	} else if p.SearchValue != "" {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("filter: %q (%d/%d, c to clear)",
			p.SearchValue, len(p.Stashes), p.Total)) + "\n\n")
	}

	if len(p.Stashes) == 0 {
		if p.Total == 0 {
			b.WriteString("\n" + HelpStyle.Render("No stashes. Press 'n' to create one.") + "\n")
		} else {
			b.WriteString("\n" + HelpStyle.Render("No stashes match the search.") + "\n")
		}
	} else {
		// Keep the cursor inside the visible window.
		visible := p.Height - 7
		if visible < 1 {
			visible = 1
		}
		offset := 0
		if p.Cursor >= visible {
			offset = p.Cursor - visible + 1
		}

		for i := offset; i < len(p.Stashes) && i < offset+visible; i++ {
			b.WriteString(renderStashRow(p, i) + "\n")
		}
	}

	if p.StatusMsg != "" {
		b.WriteString("\n" + SuccessStyle.Render(p.StatusMsg) + "\n")
	}

	b.WriteString("\n" + HelpStyle.Render(
		"↑/↓ move · enter diff · f files · a apply · p pop · x drop · n new · / search · q quit"))
	return b.String()
}

// renderStashRow renders one list row.
func renderStashRow(p RenderParams, i int) string {
	s := p.Stashes[i]

	cursor := "  "
	style := NormalStyle
	if i == p.Cursor {
		cursor = SymbolCursor + " "
		style = SelectedStyle
	}

	row := fmt.Sprintf("%s%-3d %s %s", cursor, s.Index,
		BranchStyle.Render("["+s.Branch+"]"), style.Render(s.ShortMsg))
	if p.ShowDates && s.Date != "" {
		row += "  " + DateStyle.Render(s.Date)
	}
	return row
}

// renderContent renders the scrollable diff or file listing.
func renderContent(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 2

	title := HeaderStyle.Render(p.ContentTitle)
	if p.SelectedName != "" {
		title += "  " + DateStyle.Render(p.SelectedName)
	}
	b.WriteString(title + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if len(p.Content) == 0 {
		b.WriteString("\n" + HelpStyle.Render("(empty)") + "\n")
	} else {
		visible := p.Height - 5
		if visible < 1 {
			visible = 1
		}
		start := p.ContentScroll
		if start > len(p.Content)-1 {
			start = len(p.Content) - 1
		}
		if start < 0 {
			start = 0
		}
		end := start + visible
		if end > len(p.Content) {
			end = len(p.Content)
		}
		for _, line := range p.Content[start:end] {
			b.WriteString(renderContentLine(line) + "\n")
		}
		b.WriteString("\n" + DateStyle.Render(
			fmt.Sprintf("line %d/%d", start+1, len(p.Content))))
	}

	b.WriteString("\n" + HelpStyle.Render("↑/↓ scroll · pgup/pgdn page · esc back"))
	return b.String()
}

// renderContentLine colors diff lines by their leading marker.
func renderContentLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+"):
		return SuccessStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return ErrorStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return BranchStyle.Render(line)
	default:
		return NormalStyle.Render(line)
	}
}

// renderConfirm renders the apply/pop/drop confirmation dialog.
func renderConfirm(p RenderParams) string {
	verb := p.ConfirmVerb
	if verb == "" {
		verb = "confirm"
	}
	target := p.SelectedName
	if p.SelectedMsg != "" {
		target += " (" + p.SelectedMsg + ")"
	}

	prompt := fmt.Sprintf("%s %s?", strings.ToUpper(verb[:1])+verb[1:], target)
	if verb == "drop" {
		prompt = WarningStyle.Render(prompt)
	}

	dialog := DialogStyle.Render(prompt + "\n\n" + HelpStyle.Render("y/enter confirm · n/esc cancel"))
	return dialog
}

// renderNewStash renders the create-stash form.
func renderNewStash(p RenderParams) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("NEW STASH") + "\n\n")
	b.WriteString(InputStyle.Render(p.StashInput) + "\n\n")

	box := SymbolBox
	if p.Untracked {
		box = SymbolChecked
	}
	b.WriteString(box + " include untracked files" + "\n\n")
	b.WriteString(HelpStyle.Render("enter save · tab toggle untracked · esc cancel"))
	return b.String()
}

// renderMessage renders an operation result.
func renderMessage(p RenderParams) string {
	style := SuccessStyle
	if strings.HasPrefix(p.MessageText, "Error:") {
		style = ErrorStyle
	}
	return DialogStyle.Render(style.Render(p.MessageText) + "\n\n" +
		HelpStyle.Render("press any key"))
}
