// Package store owns the task, category, member and reward collections.
// All mutations go through it; every mutation persists synchronously via
// the storage backend. Consumers only ever see snapshot copies.
package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	taskererrors "github.com/taskerhq/tasker/internal/errors"
	"github.com/taskerhq/tasker/internal/logging"
	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/storage"
	"github.com/taskerhq/tasker/internal/task"
)

// Notifier receives the advisory notifications the store emits: success
// confirmations and validation rejections. Rejections are resolved
// inside the store boundary and reported here, not as errors the caller
// must branch on.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// nopNotifier discards all notifications.
type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// NopNotifier returns a Notifier that discards everything.
func NopNotifier() Notifier {
	return nopNotifier{}
}

// Store is the single ownership boundary for all persisted collections.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	notify  Notifier

	tasks      []task.Task
	categories []task.Category
	members    []member.FamilyMember
	rewards    []member.Reward
}

// New loads all collections from the backend. Missing or corrupted
// persisted state falls back to empty collections; categories fall back
// to the protected defaults.
func New(b storage.Backend, n Notifier) *Store {
	if n == nil {
		n = NopNotifier()
	}
	return &Store{
		backend:    b,
		notify:     n,
		tasks:      storage.Load(b, storage.KeyTasks, []task.Task{}),
		categories: storage.Load(b, storage.KeyCategories, task.DefaultCategories()),
		members:    storage.Load(b, storage.KeyMembers, []member.FamilyMember{}),
		rewards:    storage.Load(b, storage.KeyRewards, []member.Reward{}),
	}
}

// persist writes one collection. The in-memory state is already updated
// when this runs; a write failure is surfaced as a warning rather than
// rolled back or propagated.
func (s *Store) persist(key string, v any) {
	if err := storage.Save(s.backend, key, v); err != nil {
		logging.Error.Printf("persist failed: %v", err)
		s.notify.Error("Changes may not be saved: " + err.Error())
	}
}

// Tasks returns a snapshot of the task collection in insertion order.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

// Categories returns a snapshot of the category collection.
func (s *Store) Categories() []task.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

// Members returns a snapshot of the family member collection.
func (s *Store) Members() []member.FamilyMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.members)
}

// Rewards returns a snapshot of the reward collection.
func (s *Store) Rewards() []member.Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.rewards)
}

// TaskInput carries every task field a caller may set at creation.
// ID and CreatedAt are always assigned by the store. Title validation
// is the calling form's responsibility, not the store's.
type TaskInput struct {
	Title          string
	Description    string
	Completed      bool
	Priority       task.Priority
	Category       string
	DueDate        *time.Time
	AssignedTo     string
	AssignedToName string
	Points         int
	IsGeneralTask  bool
}

func (s *Store) newTask(in TaskInput) task.Task {
	return task.Task{
		ID:             task.NewID(),
		Title:          in.Title,
		Description:    in.Description,
		Completed:      in.Completed,
		Priority:       in.Priority,
		Category:       in.Category,
		DueDate:        in.DueDate,
		CreatedAt:      time.Now().UTC(),
		AssignedTo:     in.AssignedTo,
		AssignedToName: in.AssignedToName,
		Points:         in.Points,
		IsGeneralTask:  in.IsGeneralTask,
	}
}

// AddTask appends a new task with a generated ID and the current
// creation time, persists, and confirms to the user.
func (s *Store) AddTask(in TaskInput) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.newTask(in)
	s.tasks = append(s.tasks, t)
	s.persist(storage.KeyTasks, s.tasks)
	s.notify.Success("Task created")
	return t
}

// TaskPatch carries the fields UpdateTask may change. Nil pointers mean
// "leave untouched"; ClearDueDate removes an existing due date.
type TaskPatch struct {
	Title          *string
	Description    *string
	Completed      *bool
	Priority       *task.Priority
	Category       *string
	DueDate        *time.Time
	ClearDueDate   bool
	AssignedTo     *string
	AssignedToName *string
	Points         *int
}

// UpdateTask merges patch into the task matching id, leaving all other
// fields untouched. A missing id is a silent no-op.
func (s *Store) UpdateTask(id string, patch TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}

	t := &s.tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	} else if patch.ClearDueDate {
		t.DueDate = nil
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = *patch.AssignedTo
	}
	if patch.AssignedToName != nil {
		t.AssignedToName = *patch.AssignedToName
	}
	if patch.Points != nil {
		t.Points = *patch.Points
	}

	s.persist(storage.KeyTasks, s.tasks)
	s.notify.Success("Task updated")
}

// DeleteTask removes the task matching id. A missing id is a silent no-op.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persist(storage.KeyTasks, s.tasks)
	s.notify.Success("Task removed")
}

// ToggleTaskCompletion flips the completed flag on the task matching id.
// It is a pure toggle: calling it twice restores the original value.
// A missing id is a silent no-op.
func (s *Store) ToggleTaskCompletion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.persist(storage.KeyTasks, s.tasks)
}

// ClearCompletedTasks removes every completed task.
func (s *Store) ClearCompletedTasks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool {
		return t.Completed
	})
	s.persist(storage.KeyTasks, s.tasks)
}

// SeedSampleTasks adds the demo tasks when the collection is empty.
// Returns the number of tasks seeded (zero when tasks already exist).
func (s *Store) SeedSampleTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) > 0 {
		return 0
	}
	samples := task.SampleTasks(time.Now())
	for _, sample := range samples {
		s.tasks = append(s.tasks, s.newTask(TaskInput{
			Title:       sample.Title,
			Description: sample.Description,
			Completed:   sample.Completed,
			Priority:    sample.Priority,
			Category:    sample.Category,
			DueDate:     sample.DueDate,
		}))
	}
	s.persist(storage.KeyTasks, s.tasks)
	return len(samples)
}

// AddCategory appends a new category with a generated ID. Creation is
// rejected, with no state change, when a category with the same name
// (case-insensitive) already exists.
func (s *Store) AddCategory(name, color string) (task.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			err := taskererrors.DuplicateCategoryError{Name: name}
			s.notify.Error(err.Error())
			return task.Category{}, err
		}
	}

	c := task.Category{ID: task.NewID(), Name: name, Color: color}
	s.categories = append(s.categories, c)
	s.persist(storage.KeyCategories, s.categories)
	s.notify.Success("Category created")
	return c, nil
}

// DeleteCategory removes the category matching id. Default categories
// are protected and the deletion is rejected with no state change.
// Tasks referencing the deleted category are left untouched. A missing
// id is a silent no-op.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.IsDefaultCategory(id) {
		err := taskererrors.ProtectedCategoryError{ID: id}
		s.notify.Error(err.Error())
		return err
	}

	i := slices.IndexFunc(s.categories, func(c task.Category) bool {
		return c.ID == id
	})
	if i < 0 {
		return nil
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	s.persist(storage.KeyCategories, s.categories)
	s.notify.Success("Category removed")
	return nil
}

// taskIndex returns the index of the task matching id, or -1.
// Callers must hold s.mu.
func (s *Store) taskIndex(id string) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}
