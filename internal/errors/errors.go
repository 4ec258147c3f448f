//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// AlreadyInitializedError indicates the tasker data directory already exists.
type AlreadyInitializedError struct{}

func (e AlreadyInitializedError) Error() string {
	return "tasker already initialized"
}

// DuplicateCategoryError indicates a category with the same name
// (case-insensitive) already exists.
type DuplicateCategoryError struct {
	Name string
}

func (e DuplicateCategoryError) Error() string {
	return fmt.Sprintf("a category named %q already exists", e.Name)
}

// ProtectedCategoryError indicates an attempt to delete a default category.
type ProtectedCategoryError struct {
	ID string
}

func (e ProtectedCategoryError) Error() string {
	return fmt.Sprintf("category %q is a default category and cannot be deleted", e.ID)
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: low, medium, high)", e.Value)
}

// TaskNotFoundError indicates the task ID doesn't match any task.
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// MemberNotFoundError indicates the member ID doesn't match anyone.
type MemberNotFoundError struct {
	ID string
}

func (e MemberNotFoundError) Error() string {
	return fmt.Sprintf("member not found: %s", e.ID)
}

// RewardNotFoundError indicates the reward ID doesn't match any reward.
type RewardNotFoundError struct {
	ID string
}

func (e RewardNotFoundError) Error() string {
	return fmt.Sprintf("reward not found: %s", e.ID)
}

// InsufficientPointsError indicates a member cannot afford a reward.
type InsufficientPointsError struct {
	Member string
	Needed int
	Have   int
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("%s has %d points, reward costs %d", e.Member, e.Have, e.Needed)
}

// NotLoggedInError indicates an operation that needs a current user.
type NotLoggedInError struct{}

func (e NotLoggedInError) Error() string {
	return "not logged in"
}

// OwnRoleError indicates an attempt to change the current user's own role.
type OwnRoleError struct{}

func (e OwnRoleError) Error() string {
	return "cannot change your own role"
}
