package store

import (
	"fmt"
	"slices"

	taskererrors "github.com/taskerhq/tasker/internal/errors"
	"github.com/taskerhq/tasker/internal/member"
	"github.com/taskerhq/tasker/internal/storage"
	"github.com/taskerhq/tasker/internal/task"
)

// AddReward appends a new reward members can redeem points for.
func (s *Store) AddReward(name string, points int, description string) member.Reward {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := member.Reward{
		ID:          task.NewID(),
		Name:        name,
		Points:      points,
		Description: description,
	}
	s.rewards = append(s.rewards, r)
	s.persist(storage.KeyRewards, s.rewards)
	s.notify.Success("Reward created")
	return r
}

// DeleteReward removes the reward matching id. A missing id is a silent
// no-op.
func (s *Store) DeleteReward(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.rewards, func(r member.Reward) bool {
		return r.ID == id
	})
	if i < 0 {
		return
	}
	s.rewards = append(s.rewards[:i], s.rewards[i+1:]...)
	s.persist(storage.KeyRewards, s.rewards)
	s.notify.Success("Reward removed")
}

// RedeemReward spends a member's points on a reward. Rejected, with no
// state change, when the member or reward is missing or the member
// cannot afford it. Redemption spends total points only; weekly points
// record what was earned this week, not what is left.
func (s *Store) RedeemReward(memberID, rewardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mi := s.memberIndex(memberID)
	if mi < 0 {
		err := taskererrors.MemberNotFoundError{ID: memberID}
		s.notify.Error(err.Error())
		return err
	}
	ri := slices.IndexFunc(s.rewards, func(r member.Reward) bool {
		return r.ID == rewardID
	})
	if ri < 0 {
		err := taskererrors.RewardNotFoundError{ID: rewardID}
		s.notify.Error(err.Error())
		return err
	}

	m := &s.members[mi]
	r := s.rewards[ri]
	if m.Points < r.Points {
		err := taskererrors.InsufficientPointsError{
			Member: m.Name,
			Needed: r.Points,
			Have:   m.Points,
		}
		s.notify.Error(err.Error())
		return err
	}

	m.Points -= r.Points
	s.persist(storage.KeyMembers, s.members)
	s.notify.Success(fmt.Sprintf("%s redeemed %s for %d points", m.Name, r.Name, r.Points))
	return nil
}
