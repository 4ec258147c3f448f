package task

import "time"

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PriorityOrder returns the sort weight for a priority (higher = more urgent).
func PriorityOrder(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task represents a unit of household work.
//
// Category holds a category ID and is deliberately not a foreign key: a
// task may reference a category that no longer exists, and display code
// falls back to the raw identifier. AssignedToName is denormalized so
// lists render without a member lookup.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Completed      bool       `json:"completed"`
	Priority       Priority   `json:"priority"`
	Category       string     `json:"category"`
	DueDate        *time.Time `json:"dueDate"`
	CreatedAt      time.Time  `json:"createdAt"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	AssignedToName string     `json:"assignedToName,omitempty"`
	Points         int        `json:"points,omitempty"`
	IsGeneralTask  bool       `json:"isGeneralTask,omitempty"`
}
