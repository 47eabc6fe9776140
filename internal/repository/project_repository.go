package repository

import (
	"github.com/crewstack/project-management-api/internal/database"
	"github.com/crewstack/project-management-api/internal/models"
	"github.com/crewstack/project-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID. Soft-deleted projects stay retrievable
// by direct lookup.
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects, excluding soft-deleted ones unless includeDeleted is set
func (r *GormProjectRepository) List(includeDeleted bool, params utils.PaginationParams) ([]models.Project, int64, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{})
	if !includeDeleted {
		query = query.Where("deleted = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Scopes(database.Paginate(params)).
		Order("id ASC").
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// AddMember adds a membership entry to a project
func (r *GormProjectRepository) AddMember(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a membership entry from a project
func (r *GormProjectRepository) RemoveMember(projectID, userID uint64, role models.MemberRole) error {
	return r.db.Where("project_id = ? AND user_id = ? AND role = ?", projectID, userID, role).
		Delete(&models.ProjectMember{}).Error
}

// FindMember finds a specific membership entry
func (r *GormProjectRepository) FindMember(projectID, userID uint64, role models.MemberRole) (*models.ProjectMember, error) {
	var member models.ProjectMember
	if err := r.db.Where("project_id = ? AND user_id = ? AND role = ?", projectID, userID, role).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all membership entries of a project
func (r *GormProjectRepository) ListMembers(projectID uint64) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("role ASC, user_id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
