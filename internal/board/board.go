// Package board computes the derived views of the task board: search
// filtering, priority partitioning, statistics, and category grouping. All
// functions are pure; callers recompute on every change to the task list or
// search term.
package board

import (
	"strings"

	"taskboard/internal/model"
)

// Groups is the partition of the filtered task list into the four board
// columns. The groups are pairwise disjoint: a completed task lands in
// Completed regardless of its priority, and a non-completed task with a
// priority outside the known scale appears in none of the groups.
type Groups struct {
	High      []model.Task
	Medium    []model.Task
	Low       []model.Task
	Completed []model.Task
}

// Stats are the board counters. Total covers the unfiltered task list while
// Completed counts the Completed group of the filtered view, so Pending can
// overstate the true pending count while a search filter is active.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// CategoryGroup buckets the non-completed board tasks under one category.
type CategoryGroup struct {
	Name  string
	Tasks []model.Task
}

// Filter keeps tasks whose description contains the search term as a
// case-insensitive substring. An empty term keeps everything.
func Filter(tasks []model.Task, search string) []model.Task {
	if search == "" {
		return tasks
	}
	needle := strings.ToLower(search)
	var out []model.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Partition splits filtered tasks into the four board columns.
func Partition(filtered []model.Task) Groups {
	var g Groups
	for _, t := range filtered {
		switch {
		case t.Completed:
			g.Completed = append(g.Completed, t)
		case t.Priority == model.PriorityHigh:
			g.High = append(g.High, t)
		case t.Priority == model.PriorityMedium:
			g.Medium = append(g.Medium, t)
		case t.Priority == model.PriorityLow:
			g.Low = append(g.Low, t)
		}
	}
	return g
}

// Statistics derives the counters from the unfiltered list and the filtered
// partition.
func Statistics(all []model.Task, g Groups) Stats {
	total := len(all)
	completed := len(g.Completed)
	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}
}

// GroupByCategory merges the three priority columns and buckets them by
// display category, preserving the order categories are first seen in.
func GroupByCategory(g Groups) []CategoryGroup {
	merged := make([]model.Task, 0, len(g.High)+len(g.Medium)+len(g.Low))
	merged = append(merged, g.High...)
	merged = append(merged, g.Medium...)
	merged = append(merged, g.Low...)

	index := make(map[string]int)
	var groups []CategoryGroup
	for _, t := range merged {
		name := model.DisplayCategory(t.Category)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, CategoryGroup{Name: name})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

// Column addresses one of the four board columns in display order.
type Column int

const (
	ColumnHigh Column = iota
	ColumnMedium
	ColumnLow
	ColumnCompleted
)

// Priority returns the priority a drop on this column assigns. The Completed
// column is not a drop target and reports false.
func (c Column) Priority() (model.Priority, bool) {
	switch c {
	case ColumnHigh:
		return model.PriorityHigh, true
	case ColumnMedium:
		return model.PriorityMedium, true
	case ColumnLow:
		return model.PriorityLow, true
	default:
		return 0, false
	}
}

func (c Column) Title() string {
	switch c {
	case ColumnHigh:
		return "High"
	case ColumnMedium:
		return "Medium"
	case ColumnLow:
		return "Low"
	case ColumnCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Tasks returns the group backing a column.
func (g Groups) Tasks(c Column) []model.Task {
	switch c {
	case ColumnHigh:
		return g.High
	case ColumnMedium:
		return g.Medium
	case ColumnLow:
		return g.Low
	case ColumnCompleted:
		return g.Completed
	default:
		return nil
	}
}
