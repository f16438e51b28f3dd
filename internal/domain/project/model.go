package project

import "time"

// Project is a recruitment posting with a bounded application window.
// Once IsDone flips to true the posting is closed for good: recruitment
// fields become immutable and applicant statuses are frozen.
type Project struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title                string    `gorm:"size:100;not null" json:"title"`
	Description          string    `gorm:"type:text;not null" json:"description"`
	TotalMember          int       `gorm:"not null" json:"totalMember"`
	StartDate            time.Time `gorm:"not null" json:"startDate"`
	EstimatedPeriod      string    `gorm:"size:50" json:"estimatedPeriod"`
	MethodID             uint      `gorm:"not null" json:"methodId"`
	AuthorID             uint      `gorm:"not null;index" json:"authorId"`
	Views                int       `gorm:"default:0;not null" json:"views"`
	IsBeginner           bool      `gorm:"default:false;not null" json:"isBeginner"`
	IsDone               bool      `gorm:"default:false;not null" json:"isDone"`
	RecruitmentStartDate time.Time `gorm:"not null" json:"recruitmentStartDate"`
	RecruitmentEndDate   time.Time `gorm:"not null;index" json:"recruitmentEndDate"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

// Counts is the ongoing/ended/total breakdown for the board header.
type Counts struct {
	Ongoing int64 `json:"ongoingProjectCount"`
	Ended   int64 `json:"endProjectCount"`
	Total   int64 `json:"totalProjectCount"`
}
