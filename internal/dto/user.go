package dto

import (
	"github.com/crewstack/project-management-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of any response shape.
type UserDTO struct {
	ID       uint64          `json:"id"`
	Name     string          `json:"name"`
	LastName string          `json:"last_name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// LoginUserDTO is the trimmed user object returned alongside the token.
type LoginUserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}
