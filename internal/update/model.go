package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

// Store is the remote task store. *api.Client satisfies it; tests use fakes.
type Store interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, description string) (model.Task, error)
	UpdateTask(ctx context.Context, in model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	DailySummary(ctx context.Context) (model.DailySummary, error)
}

// Mode routes keystrokes: board navigation, one of the text inputs, or the
// command palette.
type Mode string

const (
	ModeNavigate  Mode = "navigate"
	ModeAdding    Mode = "adding"
	ModeSearching Mode = "searching"
	ModePalette   Mode = "palette"
)

type StatusBar struct {
	Text string
}

type Model struct {
	store Store
	now   func() time.Time

	// Tasks is the local cache of the remote store. Every change replaces
	// the whole slice; nothing mutates it in place.
	Tasks   []model.Task
	Search  string
	Loading bool

	Mode   Mode
	Column board.Column
	Cursor int
	Drag   DragState

	Summary        *model.DailySummary
	SummaryVisible bool
	Detail         *model.Task
	HelpVisible    bool
	Status         StatusBar
	Quitting       bool

	addInput     textinput.Model
	searchInput  textinput.Model
	commandInput textinput.Model
	loadSpinner  spinner.Model
	summaryView  viewport.Model
	helpModel    help.Model
}

type tasksLoadedMsg struct {
	Tasks []model.Task
}

type taskCreatedMsg struct {
	Task model.Task
}

// taskReplacedMsg carries the store's updated record after a
// completion-toggle or priority change.
type taskReplacedMsg struct {
	Task model.Task
}

type taskDeletedMsg struct {
	ID string
}

type summaryLoadedMsg struct {
	Summary model.DailySummary
}

// opFailedMsg is a swallowed remote failure: logged, never shown, no local
// state change beyond clearing the loading flag.
type opFailedMsg struct {
	Op  string
	Err error
}

func NewModel(store Store) Model {
	m := Model{
		store:   store,
		now:     time.Now,
		Mode:    ModeNavigate,
		Column:  board.ColumnHigh,
		Loading: true,
	}

	m.addInput = textinput.New()
	m.addInput.Prompt = "add> "
	m.addInput.Placeholder = "What needs doing?"
	m.addInput.CharLimit = 256
	m.addInput.Width = 48

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.loadSpinner = spinner.New()
	m.loadSpinner.Spinner = spinner.Dot

	m.summaryView = viewport.New(64, 16)
	m.helpModel = help.New()
	return m
}

// groups recomputes the derived board view from the cache and search term.
func (m Model) groups() board.Groups {
	return board.Partition(board.Filter(m.Tasks, m.Search))
}

func (m Model) stats() board.Stats {
	return board.Statistics(m.Tasks, m.groups())
}

// currentTask returns the task under the cursor in the focused column.
func (m Model) currentTask() (model.Task, bool) {
	tasks := m.groups().Tasks(m.Column)
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m *Model) clampCursor() {
	tasks := m.groups().Tasks(m.Column)
	if m.Cursor >= len(tasks) {
		m.Cursor = len(tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func findTask(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// replaceTask returns a new slice with the matching record swapped; the list
// is unchanged when the id is absent.
func replaceTask(tasks []model.Task, updated model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i, t := range out {
		if t.ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

func removeTask(tasks []model.Task, id string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
