package main

import (
	"fmt"

	"github.com/spf13/cobra"

	taskererrors "github.com/taskerhq/tasker/internal/errors"
	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/profile"
)

// loginCmd implements 'tasker login'. This is the mocked login flow:
// no credentials are verified, the flag and user record are simply
// written locally.
func loginCmd() *cobra.Command {
	var email string
	var admin bool
	cmd := &cobra.Command{
		Use:   "login <name>",
		Short: "Record the current user for this profile",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			role := member.RoleChild
			if admin {
				role = member.RoleAdmin
			}
			u := profile.User{Name: args[0], Email: email, Role: role}
			if err := profile.Login(backend, u); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Logged in as %s", u.Name)))
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "User email")
	cmd.Flags().BoolVar(&admin, "admin", false, "Log in with the admin role flag")
	return cmd
}

// logoutCmd implements 'tasker logout'.
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current user",
		Run: func(_ *cobra.Command, _ []string) {
			if err := profile.Logout(backend); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Logged out"))
		},
	}
}

// whoamiCmd implements 'tasker whoami'.
func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Run: func(_ *cobra.Command, _ []string) {
			u, ok := profile.Current(backend)
			if !ok {
				printError(taskererrors.NotLoggedInError{})
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("%s <%s> (%s)", u.Name, u.Email, u.Role)))
		},
	}
}

// settingsCmd implements 'tasker settings': prints the per-device
// preferences, updating them first when flags are given.
func settingsCmd() *cobra.Command {
	var theme string
	var taskNotifs, deadlineNotifs bool
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change per-device preferences",
		Run: func(cmd *cobra.Command, _ []string) {
			s := profile.LoadSettings(backend)

			flags := cmd.Flags()
			changed := false
			if flags.Changed("theme") {
				s.Theme = theme
				changed = true
			}
			if flags.Changed("task-notifications") {
				s.TaskNotifications = taskNotifs
				changed = true
			}
			if flags.Changed("deadline-notifications") {
				s.DeadlineNotifications = deadlineNotifs
				changed = true
			}
			if changed {
				if err := profile.SaveSettings(backend, s); err != nil {
					printError(err)
				}
			}

			printOutput(formatter.FormatMessage(fmt.Sprintf(
				"theme: %s\ntask notifications: %t\ndeadline notifications: %t",
				s.Theme, s.TaskNotifications, s.DeadlineNotifications)))
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "UI theme (light, dark)")
	cmd.Flags().BoolVar(&taskNotifs, "task-notifications", true, "Notify on new tasks")
	cmd.Flags().BoolVar(&deadlineNotifs, "deadline-notifications", true, "Notify on approaching deadlines")
	return cmd
}
