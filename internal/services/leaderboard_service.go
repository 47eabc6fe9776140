package services

import (
	"fmt"
	"sort"

	"github.com/crewstack/project-management-api/internal/constants"
	"github.com/crewstack/project-management-api/internal/repository"
)

// TopPerformer is one leaderboard row.
type TopPerformer struct {
	UserID    uint64
	Completed int
}

// LeaderboardService ranks project members by completed tasks. Pure read,
// no mutation.
type LeaderboardService struct {
	taskRepo repository.TaskRepository
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(taskRepo repository.TaskRepository) *LeaderboardService {
	return &LeaderboardService{
		taskRepo: taskRepo,
	}
}

// TopPerformers tallies completed tasks per assignee for a project and
// returns the top n members. Counts sort descending; equal counts break
// ties by ascending user ID so the ranking is deterministic.
func (s *LeaderboardService) TopPerformers(projectID uint64, n int) ([]TopPerformer, error) {
	if n <= 0 {
		n = constants.DefaultTopPerformers
	}

	tasks, err := s.taskRepo.ListCompletedByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}

	counts := make(map[uint64]int)
	order := make([]uint64, 0)
	for _, task := range tasks {
		if _, seen := counts[task.AssignedTo]; !seen {
			order = append(order, task.AssignedTo)
		}
		counts[task.AssignedTo]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	if len(order) > n {
		order = order[:n]
	}

	performers := make([]TopPerformer, len(order))
	for i, userID := range order {
		performers[i] = TopPerformer{
			UserID:    userID,
			Completed: counts[userID],
		}
	}

	return performers, nil
}
