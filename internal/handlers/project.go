package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/crewstack/project-management-api/internal/dto"
	apierrors "github.com/crewstack/project-management-api/internal/errors"
	"github.com/crewstack/project-management-api/internal/middleware"
	"github.com/crewstack/project-management-api/internal/models"
	"github.com/crewstack/project-management-api/internal/services"
	"github.com/crewstack/project-management-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project. Only admins may create projects; the
// role check runs before any field validation.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name        string               `json:"name"`
		Description string               `json:"description"`
		Status      models.ProjectStatus `json:"status"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		CreatorID:   userID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":     "Project created successfully",
		"project": dto.ToProjectDTO(*project, nil),
	})
}

// ListProjects returns projects, excluding soft-deleted ones unless
// include_deleted is set.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	includeDeleted := c.Query("include_deleted") == "true"

	projects, total, err := h.projectService.ListProjects(includeDeleted, params)
	if err != nil {
		log.Printf("list projects failed: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	out := make([]dto.ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = dto.ToProjectDTO(p, nil)
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":      "Projects retrieved successfully",
		"projects": out,
		"total":    total,
	})
}

// UpdateProject applies a partial update; absent fields keep their value.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	type UpdateProjectRequest struct {
		ProjectID   uint64                `json:"projectId" binding:"required"`
		Name        *string               `json:"name"`
		Description *string               `json:"description"`
		Status      *models.ProjectStatus `json:"status"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(req.ProjectID, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":     "Project updated successfully",
		"project": dto.ToProjectDTO(*project, nil),
	})
}

// DeleteProject soft-deletes a project on behalf of an admin.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type DeleteProjectRequest struct {
		ProjectID uint64 `json:"projectId" binding:"required"`
	}

	var req DeleteProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.SoftDeleteProject(req.ProjectID, userID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Project deleted successfully",
	})
}

// AssignWorkers adds users to the project's worker list, skipping ones
// already present.
func (h *ProjectHandler) AssignWorkers(c *gin.Context) {
	type AssignWorkersRequest struct {
		ProjectID uint64   `json:"projectId" binding:"required"`
		WorkerIDs []uint64 `json:"workerIds"`
	}

	var req AssignWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.AssignMembers(req.ProjectID, req.WorkerIDs, models.MemberRoleWorker); err != nil {
		respondProjectError(c, err)
		return
	}

	h.respondProjectWithMembers(c, req.ProjectID, "Workers assigned successfully")
}

// AssignAdmin appends an admin-role user to the project's admin list.
func (h *ProjectHandler) AssignAdmin(c *gin.Context) {
	type AssignAdminRequest struct {
		ProjectID uint64 `json:"projectId" binding:"required"`
		AdminID   uint64 `json:"adminId" binding:"required"`
	}

	var req AssignAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.AssignAdmin(req.ProjectID, req.AdminID); err != nil {
		respondProjectError(c, err)
		return
	}

	h.respondProjectWithMembers(c, req.ProjectID, "Admin assigned successfully")
}

// RemoveWorker drops a worker's membership entry from the project.
func (h *ProjectHandler) RemoveWorker(c *gin.Context) {
	type RemoveWorkerRequest struct {
		ProjectID uint64 `json:"projectId" binding:"required"`
		WorkerID  uint64 `json:"workerId" binding:"required"`
	}

	var req RemoveWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.RemoveMember(req.ProjectID, req.WorkerID, models.MemberRoleWorker); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Worker removed successfully",
	})
}

func (h *ProjectHandler) respondProjectWithMembers(c *gin.Context, projectID uint64, msg string) {
	project, members, err := h.projectService.GetProjectWithMembers(projectID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":     msg,
		"project": dto.ToProjectDTO(*project, members),
	})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotAdmin):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrInvalidProjectStatus):
		apierrors.ValidationFailed(c, []string{err.Error()})
	case errors.Is(err, services.ErrNoMemberIDs),
		errors.Is(err, services.ErrInvalidMembers),
		errors.Is(err, services.ErrMemberNotInProject),
		errors.Is(err, services.ErrAlreadyAdmin),
		errors.Is(err, services.ErrNotAnAdminUser):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Printf("project operation failed: %v", err)
		apierrors.InternalError(c, "")
	}
}
