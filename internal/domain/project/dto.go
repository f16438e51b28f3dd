package project

import "time"

type CreateProjectDTO struct {
	Title                string    `json:"title" binding:"required"`
	Description          string    `json:"description" binding:"required"`
	TotalMember          int       `json:"totalMember" binding:"required,gt=0"`
	StartDate            time.Time `json:"startDate" binding:"required"`
	EstimatedPeriod      string    `json:"estimatedPeriod"`
	MethodID             uint      `json:"methodId" binding:"required"`
	IsBeginner           bool      `json:"isBeginner"`
	RecruitmentStartDate time.Time `json:"recruitmentStartDate" binding:"required"`
	RecruitmentEndDate   time.Time `json:"recruitmentEndDate" binding:"required"`
	SkillTagIDs          []uint    `json:"skillTagId" binding:"required"`
	PositionTagIDs       []uint    `json:"positionTagId" binding:"required"`
}

// ModifyProjectDTO is a partial update: only present slots are applied.
// Tag id lists are replace-sets, applied only when present.
type ModifyProjectDTO struct {
	Title                *string    `json:"title,omitempty"`
	Description          *string    `json:"description,omitempty"`
	TotalMember          *int       `json:"totalMember,omitempty"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	EstimatedPeriod      *string    `json:"estimatedPeriod,omitempty"`
	MethodID             *uint      `json:"methodId,omitempty"`
	IsBeginner           *bool      `json:"isBeginner,omitempty"`
	RecruitmentStartDate *time.Time `json:"recruitmentStartDate,omitempty"`
	RecruitmentEndDate   *time.Time `json:"recruitmentEndDate,omitempty"`
	SkillTagIDs          []uint     `json:"skillTagId,omitempty"`
	PositionTagIDs       []uint     `json:"positionTagId,omitempty"`
}

// ListFilter narrows the board listing. IsBeginner is tri-state: nil means
// no filter.
type ListFilter struct {
	Page        int
	Keyword     string
	MethodID    *uint
	PositionTag *uint
	SkillTags   []uint
	IsBeginner  *bool
}

type ListResult struct {
	Projects    []Project `json:"projects"`
	Total       int64     `json:"total"`
	CurrentPage int       `json:"currentPage"`
	LastPage    int       `json:"lastPage"`
}
