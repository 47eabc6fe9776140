package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/crewstack/project-management-api/internal/constants"
	"github.com/crewstack/project-management-api/internal/dto"
	apierrors "github.com/crewstack/project-management-api/internal/errors"
	"github.com/crewstack/project-management-api/internal/models"
	"github.com/crewstack/project-management-api/internal/services"
	"github.com/crewstack/project-management-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name     string          `json:"name" binding:"required"`
		LastName string          `json:"lastName" binding:"required"`
		Email    string          `json:"email" binding:"required,email"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, []string{"name, lastName, a valid email and a password are required"})
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":  "User created successfully",
		"user": dto.ToUserDTO(*user),
	})
}

// ListUsers returns all users without their password hashes.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(params)
	if err != nil {
		log.Printf("list users failed: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "Users retrieved successfully",
		"users": dto.ToUserDTOs(users),
		"total": total,
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.ValidationFailed(c, []string{fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength)})
	case errors.Is(err, services.ErrInvalidUserRole):
		apierrors.ValidationFailed(c, []string{err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Printf("user operation failed: %v", err)
		apierrors.InternalError(c, "")
	}
}
