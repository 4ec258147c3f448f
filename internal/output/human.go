package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/query"
	"github.com/taskerhq/tasker/internal/task"
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t task.Task, categories []task.Category) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", shortID(t.ID), t.Title))
	sb.WriteString(fmt.Sprintf("  Priority: %s\n", query.PriorityLabel(t.Priority)))
	sb.WriteString(fmt.Sprintf("  Category: %s\n", query.CategoryLabel(categories, t.Category)))
	sb.WriteString(fmt.Sprintf("  Due:      %s\n", query.FormatDueDate(t.DueDate, time.Now())))
	sb.WriteString(fmt.Sprintf("  Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04")))

	if t.AssignedToName != "" {
		sb.WriteString(fmt.Sprintf("  Assigned: %s\n", t.AssignedToName))
	}
	if t.Points > 0 {
		sb.WriteString(fmt.Sprintf("  Points:   %d\n", t.Points))
	}
	if t.IsGeneralTask {
		sb.WriteString("  General:  yes\n")
	}
	if t.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTaskList formats a list of tasks as compact one-liners.
func (f *HumanFormatter) FormatTaskList(tasks []task.Task, categories []task.Category) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(f.formatTaskLine(t, categories))
	}
	return sb.String()
}

func (f *HumanFormatter) formatTaskLine(t task.Task, categories []task.Category) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	assigned := ""
	if t.AssignedToName != "" {
		assigned = fmt.Sprintf(" (%s)", t.AssignedToName)
	}
	return fmt.Sprintf("%s %s [%s] %s%s - %s, %s\n",
		check,
		priorityMark(t.Priority),
		shortID(t.ID),
		t.Title,
		assigned,
		query.CategoryLabel(categories, t.Category),
		query.FormatDueDate(t.DueDate, time.Now()),
	)
}

func priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "P1"
	case task.PriorityMedium:
		return "P2"
	case task.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}

// shortID keeps list output readable; full UUIDs still work everywhere
// an ID is accepted.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatCategoryList formats the category collection.
func (f *HumanFormatter) FormatCategoryList(categories []task.Category) string {
	if len(categories) == 0 {
		return "No categories found.\n"
	}

	var sb strings.Builder
	for _, c := range categories {
		protected := ""
		if task.IsDefaultCategory(c.ID) {
			protected = " (default)"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s %s%s\n", shortID(c.ID), c.Name, c.Color, protected))
	}
	return sb.String()
}

// FormatMemberList formats the family member collection.
func (f *HumanFormatter) FormatMemberList(members []member.FamilyMember) string {
	if len(members) == 0 {
		return "No members found.\n"
	}

	var sb strings.Builder
	for _, m := range members {
		role := ""
		if m.Role == member.RoleAdmin {
			role = " [admin]"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s <%s>%s - %d pts (%d this week)\n",
			shortID(m.ID), m.Name, m.Email, role, m.Points, m.WeeklyPoints))
	}
	return sb.String()
}

// FormatLeaderboard formats the points leaderboard.
func (f *HumanFormatter) FormatLeaderboard(board []member.FamilyMember) string {
	if len(board) == 0 {
		return "No members on the leaderboard.\n"
	}

	var sb strings.Builder
	for i, m := range board {
		sb.WriteString(fmt.Sprintf("%d. %s - %d pts\n", i+1, m.Name, m.Points))
	}
	return sb.String()
}

// FormatRewardList formats the reward collection.
func (f *HumanFormatter) FormatRewardList(rewards []member.Reward) string {
	if len(rewards) == 0 {
		return "No rewards found.\n"
	}

	var sb strings.Builder
	for _, r := range rewards {
		sb.WriteString(fmt.Sprintf("[%s] %s - %d pts", shortID(r.ID), r.Name, r.Points))
		if r.Description != "" {
			sb.WriteString(": " + r.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
