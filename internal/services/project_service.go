package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crewstack/project-management-api/internal/models"
	"github.com/crewstack/project-management-api/internal/repository"
	"github.com/crewstack/project-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrNotAdmin             = errors.New("requester is not a valid admin")
	ErrProjectNameRequired  = errors.New("project name is required")
	ErrInvalidProjectStatus = errors.New("status must be Active or Inactive")
	ErrNoMemberIDs          = errors.New("at least one member ID is required")
	ErrInvalidMembers       = errors.New("one or more members are invalid")
	ErrMemberNotInProject   = errors.New("member is not assigned to the project")
	ErrAlreadyAdmin         = errors.New("user is already an admin of the project")
	ErrNotAnAdminUser       = errors.New("target user does not hold the Admin role")
)

// ProjectService provides business logic for project operations.
// Authorization is checked against the user store, and always before
// field validation.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      models.ProjectStatus
	CreatorID   uint64
}

// CreateProject creates a project on behalf of an admin. Status defaults
// to Active when omitted.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if err := s.ensureAdmin(input.CreatorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProjectNameRequired
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	if status != models.ProjectStatusActive && status != models.ProjectStatusInactive {
		return nil, ErrInvalidProjectStatus
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   input.CreatorID,
		Status:      status,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects returns projects, excluding soft-deleted ones by default.
func (s *ProjectService) ListProjects(includeDeleted bool, params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(includeDeleted, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// GetProjectWithMembers returns a project and all of its membership entries.
func (s *ProjectService) GetProjectWithMembers(projectID uint64) (*models.Project, []models.ProjectMember, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.projectRepo.ListMembers(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list project members: %w", err)
	}

	return project, members, nil
}

// UpdateProjectInput carries the optional fields of a partial update.
// A nil field means "not provided" and keeps the stored value.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *models.ProjectStatus
}

// UpdateProject applies a partial update to a project.
func (s *ProjectService) UpdateProject(projectID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrProjectNameRequired
		}
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		if *input.Status != models.ProjectStatusActive && *input.Status != models.ProjectStatusInactive {
			return nil, ErrInvalidProjectStatus
		}
		project.Status = *input.Status
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// SoftDeleteProject marks a project deleted on behalf of an admin. The
// record, its tasks and its membership entries all persist.
func (s *ProjectService) SoftDeleteProject(projectID, actorID uint64) error {
	if err := s.ensureAdmin(actorID); err != nil {
		return err
	}

	project, err := s.findProject(projectID)
	if err != nil {
		return err
	}

	project.Deleted = true
	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// AssignMembers adds users to the project's admin or worker list. Every ID
// must resolve to an existing user; members already present are skipped.
func (s *ProjectService) AssignMembers(projectID uint64, memberIDs []uint64, role models.MemberRole) error {
	project, err := s.findProject(projectID)
	if err != nil {
		return err
	}
	if project.Deleted {
		return ErrProjectNotFound
	}

	if len(memberIDs) == 0 {
		return ErrNoMemberIDs
	}

	ids := uniqueUint64(memberIDs)
	count, err := s.userRepo.CountByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to verify members: %w", err)
	}
	if int(count) != len(ids) {
		return ErrInvalidMembers
	}

	for _, id := range ids {
		if _, err := s.projectRepo.FindMember(projectID, id, role); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		member := &models.ProjectMember{
			ProjectID: projectID,
			UserID:    id,
			Role:      role,
			TaskIDs:   []uint64{},
			JoinedAt:  time.Now(),
		}
		if err := s.projectRepo.AddMember(member); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}
	}

	return nil
}

// AssignAdmin appends a user holding the Admin role to the project's admin
// list. Unlike AssignMembers, a duplicate is an error here.
func (s *ProjectService) AssignAdmin(projectID, adminID uint64) error {
	if _, err := s.findProject(projectID); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotAnAdminUser
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user.Role != models.RoleAdmin {
		return ErrNotAnAdminUser
	}

	if _, err := s.projectRepo.FindMember(projectID, adminID, models.MemberRoleAdmin); err == nil {
		return ErrAlreadyAdmin
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.ProjectMember{
		ProjectID: projectID,
		UserID:    adminID,
		Role:      models.MemberRoleAdmin,
		TaskIDs:   []uint64{},
		JoinedAt:  time.Now(),
	}
	if err := s.projectRepo.AddMember(member); err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}

	return nil
}

// RemoveMember drops a membership entry. The member's tasks are left
// untouched: the task rows keep their assignee and only the entry's
// derived task list disappears with it.
func (s *ProjectService) RemoveMember(projectID, memberID uint64, role models.MemberRole) error {
	if _, err := s.findProject(projectID); err != nil {
		return err
	}

	if _, err := s.projectRepo.FindMember(projectID, memberID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotInProject
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	if err := s.projectRepo.RemoveMember(projectID, memberID, role); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

func (s *ProjectService) findProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// ensureAdmin verifies the acting user against the store, not the token,
// so a stale token cannot outlive a role it no longer has.
func (s *ProjectService) ensureAdmin(userID uint64) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotAdmin
		}
		return fmt.Errorf("failed to find requester: %w", err)
	}
	if user.Role != models.RoleAdmin {
		return ErrNotAdmin
	}
	return nil
}

// uniqueUint64 removes duplicate values from a slice of uint64
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
