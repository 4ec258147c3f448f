package member

import "sort"

// Role distinguishes household administrators from regular members.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleChild Role = "child"
)

// FamilyMember is a person tasks can be assigned to. Points accumulate
// as tasks are completed; WeeklyPoints tracks the current week only.
type FamilyMember struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	Points         int    `json:"points"`
	WeeklyPoints   int    `json:"weeklyPoints"`
	CompletedTasks int    `json:"completedTasks"`
	PendingTasks   int    `json:"pendingTasks"`
}

// Reward is something members can redeem accumulated points for.
type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// Leaderboard returns the non-admin members ordered by points,
// highest first. Ties keep their original relative order.
func Leaderboard(members []FamilyMember) []FamilyMember {
	board := make([]FamilyMember, 0, len(members))
	for _, m := range members {
		if m.Role != RoleAdmin {
			board = append(board, m)
		}
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Points > board[j].Points
	})
	return board
}
