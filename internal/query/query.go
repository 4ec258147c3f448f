// Package query holds pure helpers over task snapshots: sorting,
// filtering, and label/color resolution. Nothing here mutates the store.
package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/taskerhq/tasker/internal/task"
)

// SortKey selects the ordering SortTasks applies.
type SortKey string

const (
	SortByDueDate   SortKey = "dueDate"
	SortByPriority  SortKey = "priority"
	SortByCreatedAt SortKey = "createdAt"
)

// CategoryAll is the sentinel FilterTasksByCategory treats as "no filter".
const CategoryAll = "all"

// SortTasks returns a new slice ordered by the given key. The sort is
// stable, so ties keep their original relative order.
//
//   - dueDate: ascending; tasks without a due date sort after all tasks
//     that have one.
//   - priority: high > medium > low.
//   - createdAt (the default): most recently created first.
func SortTasks(tasks []task.Task, key SortKey) []task.Task {
	sorted := make([]task.Task, len(tasks))
	copy(sorted, tasks)

	switch key {
	case SortByDueDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i].DueDate, sorted[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	case SortByPriority:
		sort.SliceStable(sorted, func(i, j int) bool {
			return task.PriorityOrder(sorted[i].Priority) > task.PriorityOrder(sorted[j].Priority)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}
	return sorted
}

// FilterTasksByCategory returns the tasks whose category matches
// exactly, or all tasks unchanged when the "all" sentinel is given.
func FilterTasksByCategory(tasks []task.Task, category string) []task.Task {
	if category == CategoryAll {
		return tasks
	}
	var filtered []task.Task
	for _, t := range tasks {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterTasksByCompletion returns all tasks when showCompleted is true,
// otherwise only the incomplete ones.
func FilterTasksByCompletion(tasks []task.Task, showCompleted bool) []task.Task {
	if showCompleted {
		return tasks
	}
	var filtered []task.Task
	for _, t := range tasks {
		if !t.Completed {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// PriorityLabel maps a priority to its display label.
func PriorityLabel(p task.Priority) string {
	switch p {
	case task.PriorityLow:
		return "Baixa"
	case task.PriorityMedium:
		return "Média"
	case task.PriorityHigh:
		return "Alta"
	default:
		return string(p)
	}
}

// PriorityColor maps a priority to its display color.
func PriorityColor(p task.Priority) string {
	switch p {
	case task.PriorityLow:
		return "#3b82f6"
	case task.PriorityMedium:
		return "#f59e0b"
	case task.PriorityHigh:
		return "#ef4444"
	default:
		return ""
	}
}

// legacy labels for the four default category IDs, used when the live
// collection doesn't resolve the reference.
var legacyCategoryLabels = map[string]string{
	task.CategoryWork:     "Trabalho",
	task.CategoryPersonal: "Pessoal",
	task.CategoryHealth:   "Saúde",
	task.CategoryErrands:  "Tarefas",
}

var legacyCategoryColors = map[string]string{
	task.CategoryWork:     "#4f46e5",
	task.CategoryPersonal: "#0ea5e9",
	task.CategoryHealth:   "#10b981",
	task.CategoryErrands:  "#f59e0b",
}

// CategoryLabel resolves a category reference to a display label. It
// prefers the live category collection, falls back to the legacy table
// for the four default IDs, and finally to the raw identifier. A
// dangling reference is never an error.
func CategoryLabel(categories []task.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	if label, ok := legacyCategoryLabels[id]; ok {
		return label
	}
	return id
}

// CategoryColor resolves a category reference to a display color, with
// the same fallback chain as CategoryLabel. Unresolvable references get
// no color.
func CategoryColor(categories []task.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Color
		}
	}
	return legacyCategoryColors[id]
}

// FormatDueDate renders a due date the way the task list shows it:
// "Hoje" for today, "Amanhã" for tomorrow, dd/mm/yyyy otherwise, and
// "Sem data" when there is no deadline.
func FormatDueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return "Sem data"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location())

	switch target.Sub(today) {
	case 0:
		return "Hoje"
	case 24 * time.Hour:
		return "Amanhã"
	default:
		return fmt.Sprintf("%02d/%02d/%04d", due.Day(), due.Month(), due.Year())
	}
}
