// Package app contains the application state and input dispatch logic.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stashtui/stashtui/internal/config"
	"github.com/stashtui/stashtui/internal/debug"
	"github.com/stashtui/stashtui/internal/git"
	"github.com/stashtui/stashtui/internal/ui"
)

// pageScroll is how many lines PageUp/PageDown move in a content view.
const pageScroll = 20

// Model is the single application state. All mutation happens on the
// bubbletea update goroutine; gateway calls are made synchronously from
// the key handlers, so no other serialization is needed.
type Model struct {
	cfg *config.Config
	gw  Gateway

	// Data
	stashes       []git.Stash
	selected      int // index into filteredStashes()
	currentBranch string

	// Mode and per-mode payload
	mode          Mode
	content       []string
	contentScroll int

	// Search
	searching   bool
	searchInput textinput.Model

	// New-stash form
	stashInput       textinput.Model
	includeUntracked bool

	// Last operation result, shown in the list footer
	statusMsg string

	// UI
	width  int
	height int
	keys   KeyMap

	quitting bool
}

// New creates a Model and performs the initial load.
func New(cfg *config.Config, gw Gateway) (Model, error) {
	searchInput := textinput.New()
	searchInput.Placeholder = "branch or message"
	searchInput.Prompt = "/"
	searchInput.CharLimit = 64

	stashInput := textinput.New()
	stashInput.Placeholder = "stash message"
	stashInput.CharLimit = 200

	m := Model{
		cfg:              cfg,
		gw:               gw,
		mode:             NormalMode{},
		keys:             KeyMapFromConfig(&cfg.Keys),
		searchInput:      searchInput,
		stashInput:       stashInput,
		includeUntracked: cfg.Stash.IncludeUntracked,
	}

	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a key press based on the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch mode := m.mode.(type) {
	case NormalMode:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	case ContentMode:
		return m.handleContentKeys(msg)
	case ConfirmMode:
		return m.handleConfirmKeys(msg, mode.Action)
	case NewStashMode:
		return m.handleNewStashKeys(msg)
	case MessageMode:
		// Any key dismisses the message
		m.mode = NormalMode{}
		return m, nil
	}
	return m, nil
}

// handleSearchKeys handles key presses while the search prompt is open.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.selected = 0
		return m, nil
	case tea.KeyEnter:
		// Commit the query as a persistent filter
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.selected = 0
	}
	return m, cmd
}

// handleNormalKeys handles key presses in the stash list.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Diff):
		return m.openContent(ContentDiff)

	case key.Matches(msg, m.keys.Files):
		return m.openContent(ContentFiles)

	case key.Matches(msg, m.keys.Apply):
		if _, ok := m.selectedStash(); ok {
			m.mode = ConfirmMode{Action: ActionApply}
		}

	case key.Matches(msg, m.keys.Pop):
		if _, ok := m.selectedStash(); ok {
			m.mode = ConfirmMode{Action: ActionPop}
		}

	case key.Matches(msg, m.keys.Drop):
		if _, ok := m.selectedStash(); ok {
			m.mode = ConfirmMode{Action: ActionDrop}
		}

	case key.Matches(msg, m.keys.New):
		m.stashInput.Reset()
		m.includeUntracked = m.cfg.Stash.IncludeUntracked
		m.stashInput.Focus()
		m.mode = NewStashMode{}
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Search):
		m.searchInput.Reset()
		m.searchInput.Focus()
		m.searching = true
		m.selected = 0
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Clear):
		m.searchInput.Reset()
		m.selected = 0
	}

	return m, nil
}

// openContent loads the diff or file listing for the selection and
// switches to the content view. No-op when nothing is selected.
func (m Model) openContent(kind ContentKind) (tea.Model, tea.Cmd) {
	if _, ok := m.selectedStash(); !ok {
		return m, nil
	}
	if err := m.loadContent(kind); err != nil {
		m.mode = MessageMode{Text: "Error: " + err.Error()}
		return m, nil
	}
	m.mode = ContentMode{Kind: kind}
	return m, nil
}

// handleContentKeys handles key presses in the diff/files view.
func (m Model) handleContentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = NormalMode{}
	case key.Matches(msg, m.keys.Up):
		m.scrollContent(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollContent(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollContent(-pageScroll)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollContent(pageScroll)
	}
	return m, nil
}

// handleConfirmKeys handles the confirmation dialog for apply/pop/drop.
func (m Model) handleConfirmKeys(msg tea.KeyMsg, action ConfirmAction) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		st, ok := m.selectedStash()
		if !ok {
			return m, nil
		}

		debug.Log("confirm %s on %s", action, st.Name)
		var err error
		var success string
		switch action {
		case ActionApply:
			err = m.gw.ApplyStash(st.Name)
			success = "Stash applied successfully."
		case ActionPop:
			err = m.gw.PopStash(st.Name)
			success = "Stash popped successfully."
		case ActionDrop:
			err = m.gw.DropStash(st.Name)
			success = "Stash dropped."
		}
		if err != nil {
			m.mode = MessageMode{Text: "Error: " + err.Error()}
			return m, nil
		}
		if err := m.reload(); err != nil {
			// The operation went through; keep the previous snapshot visible.
			m.mode = MessageMode{Text: "Error: " + err.Error()}
			return m, nil
		}
		m.statusMsg = success
		m.mode = MessageMode{Text: success}

	case "n", "esc":
		m.mode = NormalMode{}
	}
	return m, nil
}

// handleNewStashKeys handles the create-stash form.
func (m Model) handleNewStashKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stashInput.Blur()
		m.mode = NormalMode{}
		return m, nil

	case tea.KeyTab:
		m.includeUntracked = !m.includeUntracked
		return m, nil

	case tea.KeyEnter:
		text := strings.TrimSpace(m.stashInput.Value())
		if text == "" {
			return m, nil
		}
		debug.Log("create stash %q untracked=%v", text, m.includeUntracked)
		if err := m.gw.PushStash(text, m.includeUntracked); err != nil {
			m.mode = MessageMode{Text: "Error: " + err.Error()}
			return m, nil
		}
		if err := m.reload(); err != nil {
			m.mode = MessageMode{Text: "Error: " + err.Error()}
			return m, nil
		}
		created := fmt.Sprintf("Stash '%s' created.", text)
		m.statusMsg = created
		m.stashInput.Blur()
		m.mode = MessageMode{Text: created}
		return m, nil
	}

	// 'u' doubles as an untracked toggle, but only while the message
	// is still empty; once typing has started it is a regular letter.
	if msg.String() == "u" && m.stashInput.Value() == "" {
		m.includeUntracked = !m.includeUntracked
		return m, nil
	}

	var cmd tea.Cmd
	m.stashInput, cmd = m.stashInput.Update(msg)
	return m, cmd
}

// reload re-fetches the stash list and current branch. On failure the
// previous snapshot is left untouched.
func (m *Model) reload() error {
	stashes, err := m.gw.ListStashes()
	if err != nil {
		return err
	}
	m.stashes = stashes
	m.currentBranch = m.gw.CurrentBranch()
	m.clampSelection()
	debug.Log("reload: %d stashes, branch %q", len(stashes), m.currentBranch)
	return nil
}

// loadContent fetches diff or file-stat text for the selection into the
// content buffer and resets the scroll position.
func (m *Model) loadContent(kind ContentKind) error {
	st, ok := m.selectedStash()
	if !ok {
		return nil
	}

	var raw string
	var err error
	switch kind {
	case ContentDiff:
		raw, err = m.gw.StashDiff(st.Name)
	case ContentFiles:
		raw, err = m.gw.StashFiles(st.Name)
	}
	if err != nil {
		return err
	}

	m.content = splitLines(raw)
	m.contentScroll = 0
	return nil
}

// splitLines splits raw command output into display lines.
// Empty output yields no lines rather than one empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// filteredStashes returns the stashes matching the search query, in
// original order. An empty query matches everything.
func (m Model) filteredStashes() []git.Stash {
	query := strings.ToLower(m.searchInput.Value())
	if query == "" {
		return m.stashes
	}

	var out []git.Stash
	for _, s := range m.stashes {
		if strings.Contains(strings.ToLower(s.ShortMsg), query) ||
			strings.Contains(strings.ToLower(s.Branch), query) {
			out = append(out, s)
		}
	}
	return out
}

// selectedStash returns the currently selected record, if any.
func (m Model) selectedStash() (git.Stash, bool) {
	filtered := m.filteredStashes()
	if m.selected < 0 || m.selected >= len(filtered) {
		return git.Stash{}, false
	}
	return filtered[m.selected], true
}

// moveSelection moves the cursor by delta, clamped to the filtered view.
func (m *Model) moveSelection(delta int) {
	n := len(m.filteredStashes())
	if n == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= n {
		m.selected = n - 1
	}
}

// scrollContent moves the content scroll offset by delta, clamped to
// the buffer.
func (m *Model) scrollContent(delta int) {
	if len(m.content) == 0 {
		m.contentScroll = 0
		return
	}
	m.contentScroll += delta
	if m.contentScroll < 0 {
		m.contentScroll = 0
	}
	if m.contentScroll > len(m.content)-1 {
		m.contentScroll = len(m.content) - 1
	}
}

// clampSelection keeps the cursor valid for the current filtered view.
func (m *Model) clampSelection() {
	n := len(m.filteredStashes())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// View renders the UI.
func (m Model) View() string {
	p := ui.RenderParams{
		Stashes:       m.filteredStashes(),
		Total:         len(m.stashes),
		Cursor:        m.selected,
		Branch:        m.currentBranch,
		Width:         m.width,
		Height:        m.height,
		Searching:     m.searching,
		SearchValue:   m.searchInput.Value(),
		SearchInput:   m.searchInput.View(),
		Content:       m.content,
		ContentScroll: m.contentScroll,
		StashInput:    m.stashInput.View(),
		Untracked:     m.includeUntracked,
		StatusMsg:     m.statusMsg,
		ShowDates:     m.cfg.UI.ShowDates,
	}

	if st, ok := m.selectedStash(); ok {
		p.SelectedName = st.Name
		p.SelectedMsg = st.ShortMsg
	}

	switch mode := m.mode.(type) {
	case ContentMode:
		p.View = ui.ViewContent
		if mode.Kind == ContentFiles {
			p.ContentTitle = "FILES"
		} else {
			p.ContentTitle = "DIFF"
		}
	case ConfirmMode:
		p.View = ui.ViewConfirm
		p.ConfirmVerb = mode.Action.String()
	case NewStashMode:
		p.View = ui.ViewNewStash
	case MessageMode:
		p.View = ui.ViewMessage
		p.MessageText = mode.Text
	default:
		p.View = ui.ViewList
	}

	return ui.Render(p)
}

// ShouldQuit returns true if the app exited via an explicit quit.
func (m Model) ShouldQuit() bool {
	return m.quitting
}
