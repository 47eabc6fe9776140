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
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService        *services.TaskService
	leaderboardService *services.LeaderboardService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, leaderboardService *services.LeaderboardService) *TaskHandler {
	return &TaskHandler{
		taskService:        taskService,
		leaderboardService: leaderboardService,
	}
}

// CreateTask creates a task assigned to a project member.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Status      models.TaskStatus `json:"status"`
		ProjectID   uint64            `json:"projectId" binding:"required"`
		AssignedTo  uint64            `json:"assignedTo" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		CreatorID:   userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":  "Task created successfully",
		"task": dto.ToTaskDTO(*task),
	})
}

// UpdateTask applies a partial update; reassignments move the task
// reference between membership entries.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateTaskRequest struct {
		TaskID      uint64             `json:"taskId" binding:"required"`
		Title       *string            `json:"title"`
		Description *string            `json:"description"`
		Status      *models.TaskStatus `json:"status"`
		AssignedTo  *uint64            `json:"assignedTo"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(req.TaskID, userID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "Task updated successfully",
		"task": dto.ToTaskDTO(*task),
	})
}

// SetTaskStatus updates only the status of a task.
func (h *TaskHandler) SetTaskStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type SetStatusRequest struct {
		TaskID uint64            `json:"taskId" binding:"required"`
		Status models.TaskStatus `json:"status" binding:"required"`
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.SetStatus(req.TaskID, userID, req.Status)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "Task status updated successfully",
		"task": dto.ToTaskDTO(*task),
	})
}

// DeleteTask hard-deletes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	type DeleteTaskRequest struct {
		TaskID uint64 `json:"taskId" binding:"required"`
	}

	var req DeleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.taskService.DeleteTask(req.TaskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Task deleted successfully",
	})
}

// ListTasks returns the tasks assigned to the caller.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListForAssignee(userID)
	if err != nil {
		log.Printf("list tasks failed: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "Tasks retrieved successfully",
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

// TopPerformers returns the project's members ranked by completed tasks.
func (h *TaskHandler) TopPerformers(c *gin.Context) {
	type TopPerformersRequest struct {
		ProjectID uint64 `json:"projectId" binding:"required"`
		Limit     int    `json:"limit"`
	}

	var req TopPerformersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	performers, err := h.leaderboardService.TopPerformers(req.ProjectID, req.Limit)
	if err != nil {
		log.Printf("top performers failed: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	out := make([]dto.TopPerformerDTO, len(performers))
	for i, p := range performers {
		out[i] = dto.TopPerformerDTO{
			UserID:    p.UserID,
			Completed: p.Completed,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":           "Top performers retrieved successfully",
		"topPerformers": out,
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAssigneeNotMember):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrInvalidTaskStatus):
		apierrors.ValidationFailed(c, []string{err.Error()})
	default:
		log.Printf("task operation failed: %v", err)
		apierrors.InternalError(c, "")
	}
}
