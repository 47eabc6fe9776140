package models

import (
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "Active"
	ProjectStatusInactive ProjectStatus = "Inactive"
)

// Project is soft-deleted through the explicit Deleted flag rather than
// gorm.DeletedAt: deleted projects stay retrievable by direct ID lookup
// and are only filtered from listings.
type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	CreatorID   uint64        `gorm:"not null;index" json:"creator_id"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Deleted     bool          `gorm:"not null;default:false" json:"deleted"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Creator User            `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Tasks   []Task          `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
