package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleWorker UserRole = "Worker"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	LastName     string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	CreatedProjects []Project `gorm:"foreignKey:CreatorID" json:"-"`
	AssignedTasks   []Task    `gorm:"foreignKey:AssignedTo" json:"-"`
}
