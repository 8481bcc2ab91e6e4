package views

import (
	"fmt"
	"strings"

	"taskboard/internal/model"
)

// RenderTaskDetail builds the single-task modal opened from the board.
func RenderTaskDetail(t model.Task) string {
	var b strings.Builder
	b.WriteString(t.Description)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("priority: %s\n", t.Priority.Label()))
	b.WriteString(fmt.Sprintf("category: %s\n", categoryBadge(t.Category)))

	if t.Completed {
		done := "completed"
		if t.CompletedAt != nil {
			done += " " + t.CompletedAt.Format("2006-01-02 15:04")
		}
		b.WriteString(done + "\n")
	} else {
		b.WriteString("pending\n")
	}
	if t.Deadline != nil {
		b.WriteString(fmt.Sprintf("deadline: %s\n", t.Deadline.Format("2006-01-02")))
	}
	b.WriteString(fmt.Sprintf("id: %s\n", t.ID))
	b.WriteString("\n[y] copy description  [esc] dismiss")
	return b.String()
}
