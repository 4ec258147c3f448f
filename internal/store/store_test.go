package store

import (
	"errors"
	"testing"
	"time"

	taskererrors "github.com/taskerhq/tasker/internal/errors"
	"github.com/taskerhq/tasker/internal/storage"
	"github.com/taskerhq/tasker/internal/task"
)

// recordingNotifier captures advisory notifications for assertions.
type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.failures = append(n.failures, msg) }

func newTestStore(t *testing.T) (*Store, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	return New(storage.NewFileBackend(t.TempDir()), n), n
}

func TestAddTaskIDsUnique(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created := s.AddTask(TaskInput{Title: "Task", Priority: task.PriorityLow})
		if seen[created.ID] {
			t.Fatalf("duplicate task ID: %s", created.ID)
		}
		seen[created.ID] = true
	}

	if got := len(s.Tasks()); got != 20 {
		t.Errorf("task count = %d, want 20", got)
	}
}

func TestAddTaskSetsCreatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	before := time.Now().UTC()
	created := s.AddTask(TaskInput{Title: "Task"})
	after := time.Now().UTC()

	if created.CreatedAt.Before(before) || created.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v, want between %v and %v", created.CreatedAt, before, after)
	}
}

func TestToggleIdempotence(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.AddTask(TaskInput{Title: "Task"})

	s.ToggleTaskCompletion(created.ID)
	if !s.Tasks()[0].Completed {
		t.Fatal("first toggle should complete the task")
	}
	s.ToggleTaskCompletion(created.ID)
	if s.Tasks()[0].Completed {
		t.Error("second toggle should restore the original value")
	}
}

func TestMutationsOnMissingIDAreNoOps(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.AddTask(TaskInput{Title: "Task"})

	title := "changed"
	s.UpdateTask("missing", TaskPatch{Title: &title})
	s.DeleteTask("missing")
	s.ToggleTaskCompletion("missing")

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("task count = %d, want 1", len(tasks))
	}
	if tasks[0].Title != created.Title || tasks[0].Completed {
		t.Errorf("task changed by no-op mutations: %+v", tasks[0])
	}
}

func TestUpdateTaskMergesPartial(t *testing.T) {
	s, _ := newTestStore(t)
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created := s.AddTask(TaskInput{
		Title:       "Original",
		Description: "Keep me",
		Priority:    task.PriorityLow,
		Category:    task.CategoryWork,
		DueDate:     &due,
	})

	title := "Renamed"
	priority := task.PriorityHigh
	s.UpdateTask(created.ID, TaskPatch{Title: &title, Priority: &priority})

	got := s.Tasks()[0]
	if got.Title != "Renamed" || got.Priority != task.PriorityHigh {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.Description != "Keep me" || got.Category != task.CategoryWork {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate changed: %v", got.DueDate)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt must never change after creation")
	}

	s.UpdateTask(created.ID, TaskPatch{ClearDueDate: true})
	if s.Tasks()[0].DueDate != nil {
		t.Error("ClearDueDate did not remove the due date")
	}
}

func TestEndToEndScenario(t *testing.T) {
	s, _ := newTestStore(t)

	created := s.AddTask(TaskInput{
		Title:    "Buy milk",
		Priority: task.PriorityLow,
		Category: task.CategoryErrands,
	})
	s.ToggleTaskCompletion(created.ID)

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("task count = %d, want 1", len(tasks))
	}
	got := tasks[0]
	if !got.Completed {
		t.Error("task should be completed")
	}
	if got.Title != "Buy milk" || got.Priority != task.PriorityLow || got.Category != task.CategoryErrands {
		t.Errorf("other fields changed: %+v", got)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", got.DueDate)
	}

	s.ClearCompletedTasks()
	if got := len(s.Tasks()); got != 0 {
		t.Errorf("task count after clear = %d, want 0", got)
	}
}

func TestClearCompletedKeepsIncomplete(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTask(TaskInput{Title: "Open"})
	done := s.AddTask(TaskInput{Title: "Done"})
	s.ToggleTaskCompletion(done.ID)

	s.ClearCompletedTasks()

	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Open" {
		t.Errorf("remaining tasks = %+v, want only 'Open'", tasks)
	}
}

func TestDefaultCategoriesSeeded(t *testing.T) {
	s, _ := newTestStore(t)

	cats := s.Categories()
	if len(cats) != 4 {
		t.Fatalf("category count = %d, want 4", len(cats))
	}
	if cats[0].ID != task.CategoryWork {
		t.Errorf("first category = %q, want work", cats[0].ID)
	}
}

func TestAddCategoryRejectsDuplicateName(t *testing.T) {
	s, n := newTestStore(t)

	// "Trabalho" already exists as a default category, any case.
	_, err := s.AddCategory("trabalho", "#123456")
	var dup taskererrors.DuplicateCategoryError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateCategoryError", err)
	}
	if len(s.Categories()) != 4 {
		t.Error("rejected category was appended anyway")
	}
	if len(n.failures) == 0 {
		t.Error("rejection should notify the user")
	}
}

func TestDeleteCategoryProtectsDefaults(t *testing.T) {
	s, n := newTestStore(t)

	err := s.DeleteCategory(task.CategoryWork)
	var protected taskererrors.ProtectedCategoryError
	if !errors.As(err, &protected) {
		t.Fatalf("err = %v, want ProtectedCategoryError", err)
	}
	if len(s.Categories()) != 4 {
		t.Error("category collection changed")
	}
	if len(n.failures) == 0 {
		t.Error("rejection should notify the user")
	}
}

func TestDeleteCategoryKeepsReferencingTasks(t *testing.T) {
	s, _ := newTestStore(t)

	c, err := s.AddCategory("Jardim", "#10b981")
	if err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	s.AddTask(TaskInput{Title: "Regar plantas", Category: c.ID})

	if err := s.DeleteCategory(c.ID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}

	// The task keeps its now-dangling reference.
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Category != c.ID {
		t.Errorf("task reference changed: %+v", tasks)
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	b := storage.NewFileBackend(dir)

	s := New(b, nil)
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created := s.AddTask(TaskInput{Title: "Persists", DueDate: &due})
	s.AddTask(TaskInput{Title: "No deadline"})

	// A fresh store over the same backend sees the same state.
	reloaded := New(storage.NewFileBackend(dir), nil)
	tasks := reloaded.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("reloaded task count = %d, want 2", len(tasks))
	}
	if tasks[0].ID != created.ID {
		t.Errorf("reloaded ID = %q, want %q", tasks[0].ID, created.ID)
	}
	if tasks[0].DueDate == nil || !tasks[0].DueDate.Equal(due) {
		t.Errorf("reloaded DueDate = %v, want %v", tasks[0].DueDate, due)
	}
	if tasks[1].DueDate != nil {
		t.Errorf("reloaded nil DueDate = %v, want nil", tasks[1].DueDate)
	}
}

func TestSeedSampleTasks(t *testing.T) {
	s, _ := newTestStore(t)

	if n := s.SeedSampleTasks(); n != 4 {
		t.Errorf("seeded %d tasks, want 4", n)
	}
	// Seeding only happens into an empty collection.
	if n := s.SeedSampleTasks(); n != 0 {
		t.Errorf("second seed added %d tasks, want 0", n)
	}
	if got := len(s.Tasks()); got != 4 {
		t.Errorf("task count = %d, want 4", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTask(TaskInput{Title: "Original"})

	snapshot := s.Tasks()
	snapshot[0].Title = "Mutated"

	if s.Tasks()[0].Title != "Original" {
		t.Error("mutating a snapshot changed store state")
	}
}
