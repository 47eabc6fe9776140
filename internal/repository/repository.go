package repository

import (
	"github.com/crewstack/project-management-api/internal/models"
	"github.com/crewstack/project-management-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves users with pagination
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// CountByIDs counts how many of the given user IDs exist
	CountByIDs(ids []uint64) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID, soft-deleted ones included
	FindByID(id uint64) (*models.Project, error)

	// List retrieves projects, filtering soft-deleted ones unless asked
	List(includeDeleted bool, params utils.PaginationParams) ([]models.Project, int64, error)

	// Update updates a project
	Update(project *models.Project) error

	// AddMember adds a membership entry to a project
	AddMember(member *models.ProjectMember) error

	// RemoveMember removes a membership entry from a project
	RemoveMember(projectID, userID uint64, role models.MemberRole) error

	// FindMember finds a specific membership entry
	FindMember(projectID, userID uint64, role models.MemberRole) (*models.ProjectMember, error)

	// ListMembers lists all membership entries of a project
	ListMembers(projectID uint64) ([]models.ProjectMember, error)
}

// TaskRepository defines the interface for task data access. Mutations
// that change an assignment persist the task row and the touched
// membership entries within one transaction.
type TaskRepository interface {
	// CreateWithAssignment creates a task and attaches its reference to
	// the assignee's membership entry
	CreateWithAssignment(task *models.Task, assignee *models.ProjectMember) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// Update updates a task without touching membership entries
	Update(task *models.Task) error

	// UpdateWithReassignment updates a task and moves its reference from
	// one membership entry to another
	UpdateWithReassignment(task *models.Task, from, to *models.ProjectMember) error

	// DeleteWithDetach hard-deletes a task and drops its reference from
	// the membership entry holding it
	DeleteWithDetach(task *models.Task, holder *models.ProjectMember) error

	// ListByAssignee lists all tasks assigned to a user
	ListByAssignee(userID uint64) ([]models.Task, error)

	// ListCompletedByProject lists a project's completed tasks in
	// creation order
	ListCompletedByProject(projectID uint64) ([]models.Task, error)
}
