package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crewstack/project-management-api/internal/membership"
	"github.com/crewstack/project-management-api/internal/models"
	"github.com/crewstack/project-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidTaskStatus   = errors.New("status must be pending, in-progress or completed")
	ErrAssigneeNotMember   = errors.New("assignee is not a member of the project")
)

// TaskService handles task business logic. Mutations that change an
// assignment hand the touched membership entries to the repository, which
// persists them together with the task row.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	ProjectID   uint64
	AssignedTo  uint64
	CreatorID   uint64
}

// CreateTask creates a task for a project member. The new task reference
// lands in the assignee's membership entry in the same transaction, and no
// task row is written when the assignee is not a member.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	project, err := s.findProject(input.ProjectID)
	if err != nil {
		return nil, err
	}

	members, err := s.projectRepo.ListMembers(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}

	entry := membership.EntryFor(members, input.AssignedTo)
	if entry == nil {
		return nil, ErrAssigneeNotMember
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}

	status := input.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		ProjectID:   input.ProjectID,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   input.CreatorID,
		UpdatedBy:   input.CreatorID,
	}

	if err := s.taskRepo.CreateWithAssignment(task, entry); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTaskInput carries the optional fields of a partial update.
// A nil field means "not provided" and keeps the stored value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	AssignedTo  *uint64
}

// UpdateTask applies a partial update. When the assignee changes, the task
// reference moves from the old member's list to the new one atomically.
func (s *TaskService) UpdateTask(taskID, actorID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, ErrDescriptionRequired
		}
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !models.ValidTaskStatus(*input.Status) {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	task.UpdatedBy = actorID

	if input.AssignedTo != nil && *input.AssignedTo != task.AssignedTo {
		members, err := s.projectRepo.ListMembers(task.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to list project members: %w", err)
		}

		to := membership.EntryFor(members, *input.AssignedTo)
		if to == nil {
			return nil, ErrAssigneeNotMember
		}
		from := membership.Holder(members, task.ID)

		task.AssignedTo = *input.AssignedTo
		if err := s.taskRepo.UpdateWithReassignment(task, from, to); err != nil {
			return nil, fmt.Errorf("failed to reassign task: %w", err)
		}
		return task, nil
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// SetStatus updates only the task's status and updater stamp; membership
// lists are not touched.
func (s *TaskService) SetStatus(taskID, actorID uint64, status models.TaskStatus) (*models.Task, error) {
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	task.UpdatedBy = actorID

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

// DeleteTask hard-deletes a task and detaches its reference from whichever
// membership entry holds it. Deleting twice reports not found and changes
// nothing further.
func (s *TaskService) DeleteTask(taskID uint64) error {
	task, err := s.findTask(taskID)
	if err != nil {
		return err
	}

	members, err := s.projectRepo.ListMembers(task.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list project members: %w", err)
	}

	holder := membership.Holder(members, task.ID)
	if err := s.taskRepo.DeleteWithDetach(task, holder); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ListForAssignee returns all tasks assigned to a user.
func (s *TaskService) ListForAssignee(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByAssignee(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) findTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func (s *TaskService) findProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}
