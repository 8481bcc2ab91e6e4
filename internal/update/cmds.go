package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/model"
)

// Remote operations run as commands so calls overlap freely; each one
// reconciles the cache only through its own success message. Completion order
// is whatever the network gives us, so the cache converges on the
// last-resolved update, not the last-issued one.

func (m Model) loadTasksCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		tasks, err := store.ListTasks(context.Background())
		if err != nil {
			return opFailedMsg{Op: "list", Err: err}
		}
		return tasksLoadedMsg{Tasks: tasks}
	}
}

// createTaskCmd returns nil for whitespace-only input: no network call, no
// local change.
func (m Model) createTaskCmd(description string) tea.Cmd {
	if model.ValidateDescription(description) != nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		task, err := store.CreateTask(context.Background(), description)
		if err != nil {
			return opFailedMsg{Op: "create", Err: err}
		}
		return taskCreatedMsg{Task: task}
	}
}

// toggleCompleteCmd builds the full updated record from the local cache and
// sends it with completed flipped. An id absent from the cache is a no-op
// with no network call. The read-before-write can clobber concurrent remote
// edits when the cache is stale.
func (m Model) toggleCompleteCmd(id string) tea.Cmd {
	current, ok := findTask(m.Tasks, id)
	if !ok {
		return nil
	}
	updated := current
	updated.Completed = !current.Completed
	if !updated.Completed {
		updated.CompletedAt = nil
	}
	store := m.store
	return func() tea.Msg {
		task, err := store.UpdateTask(context.Background(), updated)
		if err != nil {
			return opFailedMsg{Op: "toggle-complete", Err: err}
		}
		return taskReplacedMsg{Task: task}
	}
}

// updatePriorityCmd reads the record from the local cache like
// toggleCompleteCmd does. The same-column drop case is not short-circuited:
// the update call goes out even when the priority is unchanged.
func (m Model) updatePriorityCmd(id string, priority model.Priority) tea.Cmd {
	current, ok := findTask(m.Tasks, id)
	if !ok {
		return nil
	}
	updated := current
	updated.Priority = priority
	store := m.store
	return func() tea.Msg {
		task, err := store.UpdateTask(context.Background(), updated)
		if err != nil {
			return opFailedMsg{Op: "update-priority", Err: err}
		}
		return taskReplacedMsg{Task: task}
	}
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if err := store.DeleteTask(context.Background(), id); err != nil {
			return opFailedMsg{Op: "delete", Err: err}
		}
		return taskDeletedMsg{ID: id}
	}
}

// clearCompletedCmd issues one delete per completed task, all concurrent.
// Each deletion mirrors into the cache as its own call resolves, so a partial
// failure removes exactly the tasks whose deletes succeeded.
func (m Model) clearCompletedCmd() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.Tasks {
		if t.Completed {
			cmds = append(cmds, m.deleteTaskCmd(t.ID))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) fetchSummaryCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		summary, err := store.DailySummary(context.Background())
		if err != nil {
			return opFailedMsg{Op: "summary", Err: err}
		}
		return summaryLoadedMsg{Summary: summary}
	}
}
