package member

import "testing"

func TestLeaderboard(t *testing.T) {
	members := []FamilyMember{
		{ID: "1", Name: "Ana", Role: RoleAdmin, Points: 500},
		{ID: "2", Name: "Bruno", Role: RoleChild, Points: 120},
		{ID: "3", Name: "Clara", Role: RoleChild, Points: 300},
		{ID: "4", Name: "Davi", Role: RoleChild, Points: 120},
	}

	board := Leaderboard(members)

	if len(board) != 3 {
		t.Fatalf("Leaderboard length = %d, want 3 (admins excluded)", len(board))
	}
	if board[0].Name != "Clara" {
		t.Errorf("board[0] = %s, want Clara", board[0].Name)
	}
	// Ties keep insertion order.
	if board[1].Name != "Bruno" || board[2].Name != "Davi" {
		t.Errorf("tie order = [%s, %s], want [Bruno, Davi]", board[1].Name, board[2].Name)
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	if got := Leaderboard(nil); len(got) != 0 {
		t.Errorf("Leaderboard(nil) length = %d, want 0", len(got))
	}
	adminsOnly := []FamilyMember{{ID: "1", Role: RoleAdmin, Points: 10}}
	if got := Leaderboard(adminsOnly); len(got) != 0 {
		t.Errorf("Leaderboard(admins) length = %d, want 0", len(got))
	}
}
