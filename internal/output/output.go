package output

import (
	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/task"
)

// Formatter defines the interface for output formatting. Task
// formatting takes the category snapshot so labels resolve against the
// live collection.
type Formatter interface {
	FormatTask(t task.Task, categories []task.Category) string
	FormatTaskList(tasks []task.Task, categories []task.Category) string
	FormatCategoryList(categories []task.Category) string
	FormatMemberList(members []member.FamilyMember) string
	FormatLeaderboard(board []member.FamilyMember) string
	FormatRewardList(rewards []member.Reward) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
