package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskerhq/tasker/internal/config"
	taskererrors "github.com/taskerhq/tasker/internal/errors"
	"github.com/taskerhq/tasker/internal/output"
	"github.com/taskerhq/tasker/internal/query"
	"github.com/taskerhq/tasker/internal/storage"
	"github.com/taskerhq/tasker/internal/store"
	"github.com/taskerhq/tasker/internal/surface"
	"github.com/taskerhq/tasker/internal/task"
)

// CLI flags, the formatter and the open backend are package-level: one
// command runs per process.
var (
	jsonOutput bool
	formatter  output.Formatter
	backend    storage.Backend
)

const dueDateLayout = "2006-01-02"

func main() {
	rootCmd := &cobra.Command{
		Use:   "tasker",
		Short: "A local-first household task manager",
		Long:  "tasker - organize household tasks, categories, family members and points, all stored locally.",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}

			cfg, err := config.Load()
			if err != nil {
				printError(err)
			}
			backend, err = openBackend(cfg)
			if err != nil {
				printError(err)
			}

			s := store.New(backend, cliNotifier{})
			cmd.SetContext(surface.NewContext(cmd.Context(), surface.New(s)))
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if backend != nil {
				_ = backend.Close()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(
		initCmd(),
		addCmd(),
		listCmd(),
		showCmd(),
		doneCmd(),
		editCmd(),
		rmCmd(),
		clearCmd(),
		seedCmd(),
		assignCmd(),
		generalCmd(),
		categoryCmd(),
		memberCmd(),
		rewardCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		settingsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openBackend(cfg config.Config) (storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		dsn, err := cfg.DatabaseDSN()
		if err != nil {
			return nil, err
		}
		return storage.NewSQLiteBackend(dsn)
	default:
		dir, err := cfg.DataDir()
		if err != nil {
			return nil, err
		}
		return storage.NewFileBackend(dir), nil
	}
}

func printOutput(s string) {
	os.Stdout.WriteString(s)
}

func printError(err error) {
	if formatter == nil {
		formatter = output.NewHumanFormatter()
	}
	os.Stdout.WriteString(formatter.FormatError(err))
	os.Exit(1)
}

// cliNotifier routes the store's advisory notifications to the terminal.
// Rejections are advisory: they print but do not change the exit code.
type cliNotifier struct{}

func (cliNotifier) Success(msg string) {
	printOutput(formatter.FormatMessage(msg))
}

func (cliNotifier) Error(msg string) {
	printOutput(formatter.FormatMessage(msg))
}

// resolveTaskID matches a full task ID or a unique prefix, so the short
// IDs shown in list output are usable as arguments.
func resolveTaskID(srf *surface.Surface, arg string) (task.Task, bool) {
	var match task.Task
	count := 0
	for _, t := range srf.Tasks() {
		if t.ID == arg {
			return t, true
		}
		if strings.HasPrefix(t.ID, arg) {
			match = t
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return task.Task{}, false
}

func parsePriority(value string) task.Priority {
	p := task.Priority(value)
	if !task.IsValidPriority(p) {
		printError(taskererrors.InvalidPriorityError{Value: value})
	}
	return p
}

func parseDueDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	due, err := time.Parse(dueDateLayout, value)
	if err != nil {
		printError(fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", value))
	}
	return &due
}

// initCmd implements 'tasker init'.
func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the tasker profile directory",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := config.Load()
			if err != nil {
				printError(err)
			}
			dir, err := cfg.DataDir()
			if err != nil {
				printError(err)
			}
			if _, statErr := os.Stat(dir); statErr == nil && !force {
				printError(taskererrors.AlreadyInitializedError{})
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Initialized tasker at %s", dir)))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reinitialize even if already exists")
	return cmd
}

// addCmd implements 'tasker add'.
func addCmd() *cobra.Command {
	var description, priority, category, due string
	var points int
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			t := srf.AddTask(store.TaskInput{
				Title:       args[0],
				Description: description,
				Priority:    parsePriority(priority),
				Category:    category,
				DueDate:     parseDueDate(due),
				Points:      points,
			})
			printOutput(formatter.FormatTask(t, srf.Categories()))
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low, medium, high)")
	cmd.Flags().StringVarP(&category, "category", "c", task.CategoryPersonal, "Category ID")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&points, "points", 0, "Points awarded on completion")
	return cmd
}

// listCmd implements 'tasker list'.
func listCmd() *cobra.Command {
	var sortBy, category string
	var showCompleted bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Run: func(cmd *cobra.Command, _ []string) {
			srf := surface.FromContext(cmd.Context())

			tasks := srf.Tasks()
			tasks = query.FilterTasksByCategory(tasks, category)
			tasks = query.FilterTasksByCompletion(tasks, showCompleted)
			tasks = query.SortTasks(tasks, query.SortKey(sortBy))

			printOutput(formatter.FormatTaskList(tasks, srf.Categories()))
		},
	}
	cmd.Flags().StringVarP(&sortBy, "sort", "s", string(query.SortByCreatedAt), "Sort key (dueDate, priority, createdAt)")
	cmd.Flags().StringVarP(&category, "category", "c", query.CategoryAll, "Filter by category ID")
	cmd.Flags().BoolVarP(&showCompleted, "completed", "a", false, "Include completed tasks")
	return cmd
}

// showCmd implements 'tasker show'.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			t, ok := resolveTaskID(srf, args[0])
			if !ok {
				printError(taskererrors.TaskNotFoundError{ID: args[0]})
			}
			printOutput(formatter.FormatTask(t, srf.Categories()))
		},
	}
}

// doneCmd implements 'tasker done'. Completing an assigned task with
// points awards them to the assignee.
func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			t, ok := resolveTaskID(srf, args[0])
			if !ok {
				printError(taskererrors.TaskNotFoundError{ID: args[0]})
			}
			srf.CompleteTaskForPoints(t.ID)
			updated, _ := resolveTaskID(srf, t.ID)
			printOutput(formatter.FormatTask(updated, srf.Categories()))
		},
	}
}

// editCmd implements 'tasker edit'.
func editCmd() *cobra.Command {
	var title, description, priority, category, due string
	var points int
	var clearDue bool
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			t, ok := resolveTaskID(srf, args[0])
			if !ok {
				printError(taskererrors.TaskNotFoundError{ID: args[0]})
			}

			var patch store.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("priority") {
				p := parsePriority(priority)
				patch.Priority = &p
			}
			if flags.Changed("category") {
				patch.Category = &category
			}
			if flags.Changed("due") {
				patch.DueDate = parseDueDate(due)
			}
			if flags.Changed("points") {
				patch.Points = &points
			}
			patch.ClearDueDate = clearDue

			srf.UpdateTask(t.ID, patch)
			updated, _ := resolveTaskID(srf, t.ID)
			printOutput(formatter.FormatTask(updated, srf.Categories()))
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (low, medium, high)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category ID")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().IntVar(&points, "points", 0, "New points value")
	return cmd
}

// rmCmd implements 'tasker rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			t, ok := resolveTaskID(srf, args[0])
			if !ok {
				printError(taskererrors.TaskNotFoundError{ID: args[0]})
			}
			srf.DeleteTask(t.ID)
		},
	}
}

// clearCmd implements 'tasker clear'.
func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		Run: func(cmd *cobra.Command, _ []string) {
			srf := surface.FromContext(cmd.Context())
			before := len(srf.Tasks())
			srf.ClearCompletedTasks()
			removed := before - len(srf.Tasks())
			printOutput(formatter.FormatMessage(fmt.Sprintf("Cleared %d completed task(s)", removed)))
		},
	}
}

// seedCmd implements 'tasker seed'.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed demo tasks into an empty profile",
		Run: func(cmd *cobra.Command, _ []string) {
			srf := surface.FromContext(cmd.Context())
			n := srf.SeedSampleTasks()
			if n == 0 {
				printOutput(formatter.FormatMessage("Tasks already exist; nothing seeded"))
				return
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Seeded %d sample task(s)", n)))
		},
	}
}

// assignCmd implements 'tasker assign'.
func assignCmd() *cobra.Command {
	var description, priority, category, due string
	var points int
	cmd := &cobra.Command{
		Use:   "assign <member-id> <title>",
		Short: "Create a task assigned to a family member",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			m, ok := resolveMemberID(srf, args[0])
			if !ok {
				printError(taskererrors.MemberNotFoundError{ID: args[0]})
			}
			_ = srf.AssignTask(store.TaskInput{
				Title:       args[1],
				Description: description,
				Priority:    parsePriority(priority),
				Category:    category,
				DueDate:     parseDueDate(due),
				Points:      points,
			}, m.ID)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low, medium, high)")
	cmd.Flags().StringVarP(&category, "category", "c", task.CategoryPersonal, "Category ID")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&points, "points", 0, "Points awarded on completion")
	return cmd
}

// generalCmd implements 'tasker general': one copy of the task per
// non-admin member.
func generalCmd() *cobra.Command {
	var description, priority, category string
	var points int
	cmd := &cobra.Command{
		Use:   "general <title>",
		Short: "Create a general task for every non-admin member",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			srf := surface.FromContext(cmd.Context())
			srf.AddGeneralTask(store.TaskInput{
				Title:       args[0],
				Description: description,
				Priority:    parsePriority(priority),
				Category:    category,
				Points:      points,
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low, medium, high)")
	cmd.Flags().StringVarP(&category, "category", "c", task.CategoryPersonal, "Category ID")
	cmd.Flags().IntVar(&points, "points", 0, "Points awarded on completion")
	return cmd
}
