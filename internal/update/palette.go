package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/commands"
	"taskboard/internal/logging"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.Mode = ModeNavigate
		m.commandInput.Blur()
		return m, nil
	case tea.KeyEnter:
		line := m.commandInput.Value()
		m.Mode = ModeNavigate
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m.executePalette(line)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

// executePalette parses a palette line and dispatches it through the same
// command constructors the key bindings use, so both surfaces share one
// set of remote-sync semantics.
func (m Model) executePalette(line string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(line)
	if err != nil {
		m.Status = StatusBar{Text: err.Error()}
		logging.Error("palette: %v", err)
		return m, nil
	}

	next := m
	var out tea.Cmd
	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			out = next.createTaskCmd(args.Description)
			return commands.Result{Message: fmt.Sprintf("adding %q", args.Description)}, nil
		},
		Search: func(args commands.SearchArgs) (commands.Result, error) {
			next.Search = args.Term
			next.searchInput.SetValue(args.Term)
			next.clampCursor()
			if args.Term == "" {
				return commands.Result{Message: "filter cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("filtering by %q", args.Term)}, nil
		},
		Done: func(args commands.DoneArgs) (commands.Result, error) {
			out = next.toggleCompleteCmd(args.TaskID)
			return commands.Result{}, nil
		},
		Priority: func(args commands.PriorityArgs) (commands.Result, error) {
			out = next.updatePriorityCmd(args.TaskID, args.Priority)
			return commands.Result{}, nil
		},
		Delete: func(args commands.DeleteArgs) (commands.Result, error) {
			out = next.deleteTaskCmd(args.TaskID)
			return commands.Result{}, nil
		},
		Clear: func() (commands.Result, error) {
			out = next.clearCompletedCmd()
			return commands.Result{}, nil
		},
		Summary: func() (commands.Result, error) {
			out = next.fetchSummaryCmd()
			return commands.Result{}, nil
		},
		Reload: func() (commands.Result, error) {
			next.Loading = true
			out = tea.Batch(next.loadSpinner.Tick, next.loadTasksCmd())
			return commands.Result{}, nil
		},
	}
	result, err := commands.Execute(cmd, handlers)
	if err != nil {
		next.Status = StatusBar{Text: err.Error()}
		logging.Error("palette: %v", err)
		return next, nil
	}
	if result.Message != "" {
		next.Status = StatusBar{Text: result.Message}
	}
	return next, out
}
