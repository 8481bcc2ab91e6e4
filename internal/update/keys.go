package update

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
	"taskboard/internal/logging"
	"taskboard/internal/model"
)

type keyMap struct {
	Add     key.Binding
	Search  key.Binding
	Palette key.Binding
	Grab    key.Binding
	Done    key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Summary key.Binding
	Reload  key.Binding
	Copy    key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var boardKeys = keyMap{
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Search:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "search")),
	Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
	Grab:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab task")),
	Done:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear completed")),
	Summary: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "daily summary")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy description")),
	Left:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "column")),
	Right:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("", "")),
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "task")),
	Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("", "")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Search, k.Grab, k.Done, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Search, k.Palette, k.Reload},
		{k.Grab, k.Done, k.Delete, k.Clear},
		{k.Summary, k.Copy, k.Help, k.Quit},
		{k.Left, k.Up},
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.SummaryVisible {
		return m.handleSummaryKey(msg)
	}
	if m.Detail != nil {
		return m.handleDetailKey(msg)
	}

	switch m.Mode {
	case ModeAdding:
		return m.handleAddKey(msg)
	case ModeSearching:
		return m.handleSearchKey(msg)
	case ModePalette:
		return m.handlePaletteKey(msg)
	}

	if m.Drag.Phase == DragDragging {
		return m.handleDragKey(msg)
	}
	return m.handleNavigateKey(msg)
}

func (m Model) handleNavigateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, boardKeys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, boardKeys.Add):
		m.Mode = ModeAdding
		m.addInput.Focus()
		return m, nil
	case key.Matches(msg, boardKeys.Search):
		m.Mode = ModeSearching
		m.searchInput.SetValue(m.Search)
		m.searchInput.Focus()
		return m, nil
	case key.Matches(msg, boardKeys.Palette):
		m.Mode = ModePalette
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case key.Matches(msg, boardKeys.Help):
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
		return m, nil
	case key.Matches(msg, boardKeys.Left):
		if m.Column > board.ColumnHigh {
			m.Column--
			m.clampCursor()
		}
		return m, nil
	case key.Matches(msg, boardKeys.Right):
		if m.Column < board.ColumnCompleted {
			m.Column++
			m.clampCursor()
		}
		return m, nil
	case key.Matches(msg, boardKeys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case key.Matches(msg, boardKeys.Down):
		if m.Cursor < len(m.groups().Tasks(m.Column))-1 {
			m.Cursor++
		}
		return m, nil
	case msg.Type == tea.KeyEnter:
		if task, ok := m.currentTask(); ok {
			detail := task
			m.Detail = &detail
		}
		return m, nil
	case key.Matches(msg, boardKeys.Grab):
		if task, ok := m.currentTask(); ok {
			m.Drag = m.Drag.Start(task.ID, m.Column)
		}
		return m, nil
	case key.Matches(msg, boardKeys.Done):
		if task, ok := m.currentTask(); ok {
			return m, m.toggleCompleteCmd(task.ID)
		}
		return m, nil
	case key.Matches(msg, boardKeys.Delete):
		if task, ok := m.currentTask(); ok {
			return m, m.deleteTaskCmd(task.ID)
		}
		return m, nil
	case key.Matches(msg, boardKeys.Clear):
		return m, m.clearCompletedCmd()
	case key.Matches(msg, boardKeys.Summary):
		return m, m.fetchSummaryCmd()
	case key.Matches(msg, boardKeys.Reload):
		m.Loading = true
		return m, tea.Batch(m.loadSpinner.Tick, m.loadTasksCmd())
	case key.Matches(msg, boardKeys.Copy):
		if task, ok := m.currentTask(); ok {
			return m, copyDescriptionCmd(task)
		}
		return m, nil
	}
	return m, nil
}

// handleDragKey drives the gesture: h/l move the drop target, 1/2/3 drop
// straight onto a column, enter drops on the highlighted target, esc cancels.
func (m Model) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Drag = m.Drag.Reset()
		return m, nil
	case "h", "left":
		if m.Drag.Target > board.ColumnHigh {
			m.Drag = m.Drag.Over(m.Drag.Target - 1)
		}
		return m, nil
	case "l", "right":
		if m.Drag.Target < board.ColumnLow {
			m.Drag = m.Drag.Over(m.Drag.Target + 1)
		}
		return m, nil
	case "1":
		return m.dropOn(board.ColumnHigh)
	case "2":
		return m.dropOn(board.ColumnMedium)
	case "3":
		return m.dropOn(board.ColumnLow)
	case "enter":
		return m.dropOn(m.Drag.Target)
	}
	return m, nil
}

func (m Model) dropOn(col board.Column) (tea.Model, tea.Cmd) {
	payload, next, ok := m.Drag.Drop(col)
	m.Drag = next.Reset()
	if !ok {
		return m, nil
	}
	return m, m.updatePriorityCmd(payload.TaskID, payload.Priority)
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.Mode = ModeNavigate
		m.addInput.Blur()
		return m, nil
	case tea.KeyEnter:
		description := m.addInput.Value()
		if model.ValidateDescription(description) != nil {
			// Whitespace-only: rejected client-side, zero network calls.
			return m, nil
		}
		return m, m.createTaskCmd(description)
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.Mode = ModeNavigate
		m.Search = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.clampCursor()
		return m, nil
	case tea.KeyEnter:
		m.Mode = ModeNavigate
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.Search = m.searchInput.Value()
	m.clampCursor()
	return m, cmd
}

func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "S":
		// Dismissing discards the snapshot; the next open fetches fresh.
		m.SummaryVisible = false
		m.Summary = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.summaryView, cmd = m.summaryView.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.Detail = nil
		return m, nil
	case "y":
		return m, copyDescriptionCmd(*m.Detail)
	}
	return m, nil
}

func copyDescriptionCmd(task model.Task) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(task.Description); err != nil {
			return opFailedMsg{Op: "copy", Err: err}
		}
		return statusMsg{Text: fmt.Sprintf("copied %q", task.Description)}
	}
}

type statusMsg struct {
	Text string
}

func (m Model) handleStatus(msg statusMsg) (tea.Model, tea.Cmd) {
	m.Status = StatusBar{Text: msg.Text}
	logging.Info("%s", msg.Text)
	return m, nil
}
