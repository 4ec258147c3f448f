package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	taskererrors "github.com/taskerhq/tasker/internal/errors"
	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/profile"
	"github.com/taskerhq/tasker/internal/surface"
)

// memberCmd implements 'tasker member' and its subcommands.
func memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage family members and points",
	}
	cmd.AddCommand(
		memberListCmd(),
		memberAddCmd(),
		memberRmCmd(),
		memberRoleCmd(),
		memberAwardCmd(),
		memberDeductCmd(),
		leaderboardCmd(),
	)
	return cmd
}

func memberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List family members",
		Run: func(cmd *cobra.Command, _ []string) {
			srf := surface.FromContext(cmd.Context())
			printOutput(formatter.FormatMemberList(srf.Members()))
		},
	}
}

func memberAddCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a family member",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			srf.AddMember(args[0], email)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Member email")
	return cmd
}

func memberRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a family member",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			m, ok := resolveMemberID(srf, args[0])
			if !ok {
				printError(taskererrors.MemberNotFoundError{ID: args[0]})
			}
			srf.DeleteMember(m.ID)
		},
	}
}

// memberRoleCmd toggles a member between admin and child. Changing your
// own role is rejected.
func memberRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <id>",
		Short: "Toggle a member between admin and regular member",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			m, ok := resolveMemberID(srf, args[0])
			if !ok {
				printError(taskererrors.MemberNotFoundError{ID: args[0]})
			}
			if current, loggedIn := profile.Current(backend); loggedIn && current.Email == m.Email {
				printError(taskererrors.OwnRoleError{})
			}
			_ = srf.ToggleMemberRole(m.ID)
		},
	}
}

func memberAwardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "award <id> <points>",
		Short: "Award points to a member",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			m, ok := resolveMemberID(srf, args[0])
			if !ok {
				printError(taskererrors.MemberNotFoundError{ID: args[0]})
			}
			_ = srf.AwardPoints(m.ID, parsePoints(args[1]))
		},
	}
}

func memberDeductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deduct <id> <points>",
		Short: "Remove points from a member",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			m, ok := resolveMemberID(srf, args[0])
			if !ok {
				printError(taskererrors.MemberNotFoundError{ID: args[0]})
			}
			_ = srf.DeductPoints(m.ID, parsePoints(args[1]))
		},
	}
}

func leaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the points leaderboard",
		Run: func(cmd *cobra.Command, _ []string) {
			srf := surface.FromContext(cmd.Context())
			printOutput(formatter.FormatLeaderboard(srf.Leaderboard()))
		},
	}
}

// rewardCmd implements 'tasker reward' and its subcommands.
func rewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Manage rewards members can redeem points for",
	}
	cmd.AddCommand(rewardListCmd(), rewardAddCmd(), rewardRmCmd(), rewardRedeemCmd())
	return cmd
}

func rewardListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rewards",
		Run: func(cmd *cobra.Command, _ []string) {
			srf := surface.FromContext(cmd.Context())
			printOutput(formatter.FormatRewardList(srf.Rewards()))
		},
	}
}

func rewardAddCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <name> <points>",
		Short: "Add a reward",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			srf.AddReward(args[0], parsePoints(args[1]), description)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Reward description")
	return cmd
}

func rewardRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a reward",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			srf.DeleteReward(resolveRewardID(srf, args[0]))
		},
	}
}

func rewardRedeemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <member-id> <reward-id>",
		Short: "Redeem a reward for a member",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			m, ok := resolveMemberID(srf, args[0])
			if !ok {
				printError(taskererrors.MemberNotFoundError{ID: args[0]})
			}
			_ = srf.RedeemReward(m.ID, resolveRewardID(srf, args[1]))
		},
	}
}

func parsePoints(arg string) int {
	points, err := strconv.Atoi(arg)
	if err != nil || points < 0 {
		printError(fmt.Errorf("invalid points value %q", arg))
	}
	return points
}

// resolveMemberID matches a full member ID or a unique prefix.
func resolveMemberID(srf *surface.Surface, arg string) (member.FamilyMember, bool) {
	var match member.FamilyMember
	count := 0
	for _, m := range srf.Members() {
		if m.ID == arg {
			return m, true
		}
		if strings.HasPrefix(m.ID, arg) {
			match = m
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return member.FamilyMember{}, false
}

// resolveRewardID matches a full reward ID or a unique prefix, falling
// back to the argument unchanged.
func resolveRewardID(srf *surface.Surface, arg string) string {
	var match member.Reward
	count := 0
	for _, r := range srf.Rewards() {
		if r.ID == arg {
			return arg
		}
		if strings.HasPrefix(r.ID, arg) {
			match = r
			count++
		}
	}
	if count == 1 {
		return match.ID
	}
	return arg
}
