package output

import (
	"encoding/json"

	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/task"
)

// JSONFormatter formats output as JSON. Tasks and the other records
// already carry their wire-format tags, so they marshal directly; the
// category snapshot parameter is unused here.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t task.Task, _ []task.Category) string {
	return marshalJSON(t)
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks []task.Task, _ []task.Category) string {
	return marshalJSON(tasks)
}

// FormatCategoryList formats the category collection as JSON.
func (f *JSONFormatter) FormatCategoryList(categories []task.Category) string {
	return marshalJSON(categories)
}

// FormatMemberList formats the family member collection as JSON.
func (f *JSONFormatter) FormatMemberList(members []member.FamilyMember) string {
	return marshalJSON(members)
}

// FormatLeaderboard formats the points leaderboard as JSON.
func (f *JSONFormatter) FormatLeaderboard(board []member.FamilyMember) string {
	return marshalJSON(board)
}

// FormatRewardList formats the reward collection as JSON.
func (f *JSONFormatter) FormatRewardList(rewards []member.Reward) string {
	return marshalJSON(rewards)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
