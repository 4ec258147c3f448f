//nolint:testpackage // Tests require internal access for thorough testing
package errors

import (
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "already initialized",
			err:  AlreadyInitializedError{},
			want: "tasker already initialized",
		},
		{
			name: "duplicate category",
			err:  DuplicateCategoryError{Name: "Trabalho"},
			want: `a category named "Trabalho" already exists`,
		},
		{
			name: "protected category",
			err:  ProtectedCategoryError{ID: "work"},
			want: `category "work" is a default category and cannot be deleted`,
		},
		{
			name: "invalid priority",
			err:  InvalidPriorityError{Value: "urgent"},
			want: "invalid priority: urgent (valid: low, medium, high)",
		},
		{
			name: "task not found",
			err:  TaskNotFoundError{ID: "abc123"},
			want: "task not found: abc123",
		},
		{
			name: "member not found",
			err:  MemberNotFoundError{ID: "m1"},
			want: "member not found: m1",
		},
		{
			name: "reward not found",
			err:  RewardNotFoundError{ID: "r1"},
			want: "reward not found: r1",
		},
		{
			name: "insufficient points",
			err:  InsufficientPointsError{Member: "Ana", Needed: 50, Have: 30},
			want: "Ana has 30 points, reward costs 50",
		},
		{
			name: "not logged in",
			err:  NotLoggedInError{},
			want: "not logged in",
		},
		{
			name: "own role",
			err:  OwnRoleError{},
			want: "cannot change your own role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
