package store

import (
	"fmt"
	"slices"

	taskererrors "github.com/taskerhq/tasker/internal/errors"
	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/storage"
	"github.com/taskerhq/tasker/internal/task"
)

// AddMember appends a new non-admin family member with zero points.
func (s *Store) AddMember(name, email string) member.FamilyMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := member.FamilyMember{
		ID:    task.NewID(),
		Name:  name,
		Email: email,
		Role:  member.RoleChild,
	}
	s.members = append(s.members, m)
	s.persist(storage.KeyMembers, s.members)
	s.notify.Success("Member added")
	return m
}

// DeleteMember removes the member matching id. Tasks already assigned
// to the member keep their denormalized name. A missing id is a silent
// no-op.
func (s *Store) DeleteMember(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.memberIndex(id)
	if i < 0 {
		return
	}
	s.members = append(s.members[:i], s.members[i+1:]...)
	s.persist(storage.KeyMembers, s.members)
	s.notify.Success("Member removed")
}

// ToggleMemberRole switches the member between admin and child.
func (s *Store) ToggleMemberRole(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.memberIndex(id)
	if i < 0 {
		err := taskererrors.MemberNotFoundError{ID: id}
		s.notify.Error(err.Error())
		return err
	}

	m := &s.members[i]
	if m.Role == member.RoleAdmin {
		m.Role = member.RoleChild
	} else {
		m.Role = member.RoleAdmin
	}
	s.persist(storage.KeyMembers, s.members)
	s.notify.Success(fmt.Sprintf("%s is now %s", m.Name, m.Role))
	return nil
}

// AwardPoints adds points to a member's total and weekly counters.
func (s *Store) AwardPoints(id string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustPoints(id, points)
}

// DeductPoints removes points from a member's counters, never dropping
// below zero.
func (s *Store) DeductPoints(id string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustPoints(id, -points)
}

// adjustPoints applies a signed point delta. Callers must hold s.mu.
func (s *Store) adjustPoints(id string, delta int) error {
	i := s.memberIndex(id)
	if i < 0 {
		err := taskererrors.MemberNotFoundError{ID: id}
		s.notify.Error(err.Error())
		return err
	}

	m := &s.members[i]
	m.Points = max(0, m.Points+delta)
	m.WeeklyPoints = max(0, m.WeeklyPoints+delta)
	s.persist(storage.KeyMembers, s.members)
	if delta >= 0 {
		s.notify.Success(fmt.Sprintf("%d points added", delta))
	} else {
		s.notify.Success(fmt.Sprintf("%d points removed", -delta))
	}
	return nil
}

// Leaderboard returns the non-admin members ordered by points, highest
// first.
func (s *Store) Leaderboard() []member.FamilyMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return member.Leaderboard(s.members)
}

// AssignTask creates a task assigned to the given member, denormalizing
// the member's name onto the task for display.
func (s *Store) AssignTask(in TaskInput, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.memberIndex(memberID)
	if i < 0 {
		err := taskererrors.MemberNotFoundError{ID: memberID}
		s.notify.Error(err.Error())
		return err
	}

	in.AssignedTo = s.members[i].ID
	in.AssignedToName = s.members[i].Name
	s.tasks = append(s.tasks, s.newTask(in))
	s.persist(storage.KeyTasks, s.tasks)
	s.notify.Success(fmt.Sprintf("Task assigned to %s", s.members[i].Name))
	return nil
}

// AddGeneralTask fans the task out: one identical copy per non-admin
// member, each marked as a general task. Returns the number of tasks
// created.
func (s *Store) AddGeneralTask(in TaskInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, m := range s.members {
		if m.Role == member.RoleAdmin {
			continue
		}
		copyIn := in
		copyIn.AssignedTo = m.ID
		copyIn.AssignedToName = m.Name
		copyIn.IsGeneralTask = true
		s.tasks = append(s.tasks, s.newTask(copyIn))
		created++
	}
	if created > 0 {
		s.persist(storage.KeyTasks, s.tasks)
	}
	s.notify.Success(fmt.Sprintf("General task created for %d members", created))
	return created
}

// CompleteTaskForPoints toggles the task's completion and, when the
// toggle marks it complete, awards the task's points to its assignee.
// ToggleTaskCompletion stays a pure toggle; this is the variant the
// points flow uses.
func (s *Store) CompleteTaskForPoints(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return
	}
	t := &s.tasks[i]
	t.Completed = !t.Completed
	s.persist(storage.KeyTasks, s.tasks)

	if t.Completed && t.AssignedTo != "" && t.Points > 0 {
		// Assignee may have been deleted since assignment; tolerated.
		if j := s.memberIndex(t.AssignedTo); j >= 0 {
			s.members[j].Points += t.Points
			s.members[j].WeeklyPoints += t.Points
			s.persist(storage.KeyMembers, s.members)
			s.notify.Success(fmt.Sprintf("%d points awarded to %s", t.Points, t.AssignedToName))
		}
	}
}

// memberIndex returns the index of the member matching id, or -1.
// Callers must hold s.mu.
func (s *Store) memberIndex(id string) int {
	return slices.IndexFunc(s.members, func(m member.FamilyMember) bool {
		return m.ID == id
	})
}
