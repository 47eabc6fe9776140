package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/crewstack/project-management-api/internal/constants"
	"github.com/crewstack/project-management-api/internal/dto"
	apierrors "github.com/crewstack/project-management-api/internal/errors"
	"github.com/crewstack/project-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a user and delivers the access token both as an
// HTTP-only SameSite=Strict cookie and in the response body.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, []string{"a valid email and a password are required"})
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.BadRequest(c, "Invalid credentials")
		default:
			log.Printf("login failed: %v", err)
			apierrors.InternalError(c, "")
		}
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.AccessTokenCookie, token, int(constants.TokenTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"msg":   "Login successful",
		"token": token,
		"user": dto.LoginUserDTO{
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
