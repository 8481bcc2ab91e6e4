package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/model"
)

type TaskCellData struct {
	ID          string
	Description string
	Category    string
	Completed   bool
	CompletedAt string
	Deadline    string
	Overdue     bool
	Selected    bool
	Grabbed     bool
}

type ColumnData struct {
	Title      string
	Tasks      []TaskCellData
	Focused    bool
	DropTarget bool
}

type BoardData struct {
	Columns  []ColumnData
	Stats    StatsData
	Search   string
	Dragging bool
}

type StatsData struct {
	Total     int
	Completed int
	Pending   int
}

var (
	columnStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(32)
	columnFocusStyle  = columnStyle.BorderForeground(lipgloss.Color("12"))
	columnTargetStyle = columnStyle.BorderForeground(lipgloss.Color("11"))
	columnTitleStyle  = lipgloss.NewStyle().Bold(true)
	completedStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	grabbedStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	overdueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func RenderBoard(data BoardData) string {
	rendered := make([]string, 0, len(data.Columns))
	for _, col := range data.Columns {
		rendered = append(rendered, renderColumn(col))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	meta := fmt.Sprintf("total: %d | completed: %d | pending: %d", data.Stats.Total, data.Stats.Completed, data.Stats.Pending)
	if data.Search != "" {
		meta += fmt.Sprintf(" | search: %q", data.Search)
	}
	if data.Dragging {
		meta += " | dragging: drop with 1/2/3 or enter, esc cancels"
	}
	return board + "\n" + meta
}

func renderColumn(col ColumnData) string {
	var b strings.Builder
	b.WriteString(columnTitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))))
	b.WriteString("\n")
	if len(col.Tasks) == 0 {
		b.WriteString("  (none)")
	}
	for _, cell := range col.Tasks {
		b.WriteString(renderTaskCell(cell))
	}

	style := columnStyle
	if col.DropTarget {
		style = columnTargetStyle
	} else if col.Focused {
		style = columnFocusStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func renderTaskCell(cell TaskCellData) string {
	cursor := " "
	if cell.Selected {
		cursor = ">"
	}

	desc := cell.Description
	switch {
	case cell.Grabbed:
		desc = grabbedStyle.Render("[grabbed] " + desc)
	case cell.Completed:
		desc = completedStyle.Render(desc)
	}

	line := fmt.Sprintf("%s %s %s", cursor, categoryBadge(cell.Category), desc)
	if cell.CompletedAt != "" {
		line += fmt.Sprintf("\n    done %s", cell.CompletedAt)
	}
	if cell.Deadline != "" {
		due := "due " + cell.Deadline
		if cell.Overdue {
			due = overdueStyle.Render(due + " (overdue)")
		}
		line += "\n    " + due
	}
	return line + "\n"
}

func categoryBadge(category string) string {
	name := model.DisplayCategory(category)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(model.CategoryColor(category))).
		Render("[" + name + "]")
}
