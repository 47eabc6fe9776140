package repository

import (
	"github.com/crewstack/project-management-api/internal/membership"
	"github.com/crewstack/project-management-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// CreateWithAssignment creates the task and appends its reference to the
// assignee's membership entry in one transaction, so the tasks table and
// the derived membership cache cannot diverge on a partial failure.
func (r *GormTaskRepository) CreateWithAssignment(task *models.Task, assignee *models.ProjectMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}

		if membership.Attach(assignee, task.ID) {
			if err := tx.Save(assignee).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// Update updates a task without touching membership entries
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// UpdateWithReassignment updates the task and moves its reference from the
// entry currently holding it to the new assignee's entry, all in one
// transaction. At no point is the reference in two lists or in none.
func (r *GormTaskRepository) UpdateWithReassignment(task *models.Task, from, to *models.ProjectMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return err
		}

		membership.Move(from, to, task.ID)

		if from != nil {
			if err := tx.Save(from).Error; err != nil {
				return err
			}
		}
		if to != nil && to != from {
			if err := tx.Save(to).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteWithDetach hard-deletes the task and drops its reference from the
// holding membership entry in one transaction. A nil holder means no entry
// references the task, which is not an error.
func (r *GormTaskRepository) DeleteWithDetach(task *models.Task, holder *models.ProjectMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if membership.Detach(holder, task.ID) {
			if err := tx.Save(holder).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Task{}, task.ID).Error
	})
}

// ListByAssignee lists all tasks assigned to a user
func (r *GormTaskRepository) ListByAssignee(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("assigned_to = ?", userID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListCompletedByProject lists a project's completed tasks in creation order
func (r *GormTaskRepository) ListCompletedByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ? AND status = ?", projectID, models.TaskStatusCompleted).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
