package dto

import (
	"time"

	"github.com/crewstack/project-management-api/internal/models"
)

// ProjectMemberDTO represents one admin or worker entry of a project,
// including the member's current task references within it.
type ProjectMemberDTO struct {
	UserID  uint64            `json:"user_id"`
	Role    models.MemberRole `json:"role"`
	TaskIDs []uint64          `json:"task_ids"`
	User    *UserDTO          `json:"user,omitempty"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	CreatorID   uint64               `json:"creator_id"`
	Status      models.ProjectStatus `json:"status"`
	Deleted     bool                 `json:"deleted"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Admins      []ProjectMemberDTO   `json:"admins"`
	Workers     []ProjectMemberDTO   `json:"workers"`
}

// ToProjectMemberDTO converts a membership entry to DTO
func ToProjectMemberDTO(member models.ProjectMember) ProjectMemberDTO {
	taskIDs := member.TaskIDs
	if taskIDs == nil {
		taskIDs = []uint64{}
	}
	dto := ProjectMemberDTO{
		UserID:  member.UserID,
		Role:    member.Role,
		TaskIDs: taskIDs,
	}
	if member.User.ID != 0 {
		user := ToUserDTO(member.User)
		dto.User = &user
	}
	return dto
}

// ToProjectDTO converts a project and its membership entries to DTO,
// splitting members back into the admin and worker lists.
func ToProjectDTO(project models.Project, members []models.ProjectMember) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatorID:   project.CreatorID,
		Status:      project.Status,
		Deleted:     project.Deleted,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
		Admins:      []ProjectMemberDTO{},
		Workers:     []ProjectMemberDTO{},
	}
	for _, m := range members {
		entry := ToProjectMemberDTO(m)
		if m.Role == models.MemberRoleAdmin {
			dto.Admins = append(dto.Admins, entry)
		} else {
			dto.Workers = append(dto.Workers, entry)
		}
	}
	return dto
}
