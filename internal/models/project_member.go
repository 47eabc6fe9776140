package models

import "time"

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleWorker MemberRole = "worker"
)

// ProjectMember is one entry of a project's admin or worker list. TaskIDs
// is the ordered list of task references currently assigned to the member
// within the project; it is a derived cache of the tasks table and is kept
// in sync by the membership package inside task repository transactions.
type ProjectMember struct {
	ProjectID uint64     `gorm:"primarykey;autoIncrement:false" json:"project_id"`
	UserID    uint64     `gorm:"primarykey;autoIncrement:false" json:"user_id"`
	Role      MemberRole `gorm:"primarykey;type:varchar(20)" json:"role"`
	TaskIDs   []uint64   `gorm:"serializer:json;type:text" json:"task_ids"`
	JoinedAt  time.Time  `json:"joined_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
