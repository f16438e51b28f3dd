package applicant

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Applicant is one user's application to one project. Contact fields are
// captured at application time and do not track the user's profile. At most
// one row exists per (project, user) pair.
type Applicant struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   uint           `gorm:"not null;uniqueIndex:idx_applicant_project_user" json:"projectId"`
	UserID      uint           `gorm:"not null;uniqueIndex:idx_applicant_project_user" json:"userId"`
	Email       string         `gorm:"size:100" json:"email"`
	PhoneNumber string         `gorm:"size:20" json:"phoneNumber"`
	Message     string         `gorm:"type:text" json:"message"`
	Career      datatypes.JSON `json:"career"`
	Status      Status         `gorm:"size:10;default:'WAITING';not null" json:"status"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Applicant) TableName() string {
	return "applicants"
}

// ApplicationView joins an application with its project for the
// self-service "my applications" listing.
type ApplicationView struct {
	ProjectID          uint      `json:"id"`
	ProjectTitle       string    `json:"projectTitle"`
	Status             Status    `json:"status"`
	RecruitmentEndDate time.Time `json:"recruitmentEndDate"`
}
