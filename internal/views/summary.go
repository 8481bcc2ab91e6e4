package views

import (
	"fmt"
	"sort"
	"strings"

	"taskboard/internal/model"
)

// RenderSummary builds the daily summary modal. The narrative comes from the
// store and may contain markdown, so it goes through the glamour renderer.
func RenderSummary(s model.DailySummary) string {
	var b strings.Builder
	b.WriteString("daily summary:\n")
	b.WriteString(RenderMarkdown(s.Summary))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("tasks: %d total, %d completed (%.0f%%)\n", s.TotalTasks, s.CompletedTasks, s.CompletionRate))

	if len(s.Categories) > 0 {
		names := make([]string, 0, len(s.Categories))
		for name := range s.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("by category:\n")
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s: %d\n", name, s.Categories[name]))
		}
	}
	b.WriteString("\n[esc] dismiss")
	return strings.TrimSpace(b.String())
}
