package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
	"taskboard/internal/logging"
	"taskboard/internal/model"
	"taskboard/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSpinner.Tick, m.loadTasksCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)

	case spinner.TickMsg:
		if m.Loading {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case tasksLoadedMsg:
		m.Loading = false
		m.Tasks = typed.Tasks
		m.clampCursor()
		return m, nil

	case taskCreatedMsg:
		m.Tasks = append(append([]model.Task{}, m.Tasks...), typed.Task)
		m.addInput.SetValue("")
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", typed.Task.Description)}
		return m, nil

	case taskReplacedMsg:
		m.Tasks = replaceTask(m.Tasks, typed.Task)
		m.clampCursor()
		return m, nil

	case taskDeletedMsg:
		m.Tasks = removeTask(m.Tasks, typed.ID)
		m.clampCursor()
		return m, nil

	case summaryLoadedMsg:
		summary := typed.Summary
		m.Summary = &summary
		m.SummaryVisible = true
		m.summaryView.SetContent(views.RenderSummary(summary))
		return m, nil

	case statusMsg:
		return m.handleStatus(typed)

	case opFailedMsg:
		// Failures are swallowed: log and leave the cache as it was. The
		// action simply appears to do nothing.
		if typed.Op == "list" {
			m.Loading = false
		}
		logging.Error("%s failed: %v", typed.Op, typed.Err)
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	header := fmt.Sprintf("taskboard | %d tasks", len(m.Tasks))
	if m.Loading {
		header += " | " + m.loadSpinner.View() + " loading"
	}

	modal := ""
	switch {
	case m.SummaryVisible:
		modal = m.summaryView.View()
	case m.Detail != nil:
		modal = views.RenderTaskDetail(*m.Detail)
	}

	sidePane := ""
	switch m.Mode {
	case ModeAdding:
		sidePane = m.addInput.View()
	case ModeSearching:
		sidePane = m.searchInput.View()
	case ModePalette:
		sidePane = m.commandInput.View()
	}
	if m.HelpVisible {
		sidePane += "\n" + m.helpModel.View(boardKeys)
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		Board:      m.renderBoard(),
		SidePane:   sidePane,
		StatusLine: m.Status.Text,
		Modal:      modal,
		Footer:     "keys: a add | f search | g grab | space done | d delete | C clear | S summary | r reload | / cmd | ? help | q quit",
	})
}

func (m Model) renderBoard() string {
	groups := m.groups()
	stats := m.stats()
	now := m.now()

	columns := make([]views.ColumnData, 0, 4)
	for col := board.ColumnHigh; col <= board.ColumnCompleted; col++ {
		tasks := groups.Tasks(col)
		cells := make([]views.TaskCellData, 0, len(tasks))
		for i, t := range tasks {
			cell := views.TaskCellData{
				ID:          t.ID,
				Description: t.Description,
				Category:    t.Category,
				Completed:   t.Completed,
				Selected:    col == m.Column && i == m.Cursor && m.Mode == ModeNavigate,
				Grabbed:     m.Drag.Phase == DragDragging && m.Drag.TaskID == t.ID,
				Overdue:     t.Overdue(now),
			}
			if t.CompletedAt != nil {
				cell.CompletedAt = t.CompletedAt.Format("2006-01-02 15:04")
			}
			if t.Deadline != nil {
				cell.Deadline = t.Deadline.Format("2006-01-02")
			}
			cells = append(cells, cell)
		}
		columns = append(columns, views.ColumnData{
			Title:      col.Title(),
			Tasks:      cells,
			Focused:    col == m.Column,
			DropTarget: m.Drag.Phase == DragDragging && col == m.Drag.Target,
		})
	}

	return views.RenderBoard(views.BoardData{
		Columns:  columns,
		Stats:    views.StatsData{Total: stats.Total, Completed: stats.Completed, Pending: stats.Pending},
		Search:   m.Search,
		Dragging: m.Drag.Phase == DragDragging,
	})
}
