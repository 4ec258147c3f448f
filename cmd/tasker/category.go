package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskerhq/tasker/internal/surface"
	"github.com/taskerhq/tasker/internal/task"
)

// categoryCmd implements 'tasker category' and its subcommands.
func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage task categories",
	}
	cmd.AddCommand(categoryListCmd(), categoryAddCmd(), categoryRmCmd())
	return cmd
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Run: func(cmd *cobra.Command, _ []string) {
			srf := surface.FromContext(cmd.Context())
			printOutput(formatter.FormatCategoryList(srf.Categories()))
		},
	}
}

func categoryAddCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			// Duplicate names are rejected by the store and reported
			// as an advisory notification.
			_, _ = srf.AddCategory(args[0], color)
		},
	}
	cmd.Flags().StringVarP(&color, "color", "c", "#3b82f6", "Display color")
	return cmd
}

func categoryRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a category (default categories are protected)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			_ = srf.DeleteCategory(resolveCategoryID(srf, args[0]))
		},
	}
}

// resolveCategoryID matches a full category ID or a unique prefix,
// falling back to the argument unchanged.
func resolveCategoryID(srf *surface.Surface, arg string) string {
	var match task.Category
	count := 0
	for _, c := range srf.Categories() {
		if c.ID == arg {
			return arg
		}
		if strings.HasPrefix(c.ID, arg) {
			match = c
			count++
		}
	}
	if count == 1 {
		return match.ID
	}
	return arg
}
