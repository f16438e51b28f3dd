package tag

import "time"

// Static lookup tables. Rows are seeded out of band; the services only ever
// read them to validate foreign keys and to serve the pick lists.

type SkillTag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null;unique" json:"name"`
	Img       string    `gorm:"size:255" json:"img"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (SkillTag) TableName() string { return "skill_tags" }

type PositionTag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null;unique" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (PositionTag) TableName() string { return "position_tags" }

type Method struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null;unique" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Method) TableName() string { return "methods" }

// Association rows. The set for a project is always replaced atomically;
// a reader never observes a partially swapped set.

type ProjectSkillTag struct {
	ProjectID  uint      `gorm:"primaryKey" json:"projectId"`
	SkillTagID uint      `gorm:"primaryKey" json:"skillTagId"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ProjectSkillTag) TableName() string { return "project_skill_tags" }

type ProjectPositionTag struct {
	ProjectID     uint      `gorm:"primaryKey" json:"projectId"`
	PositionTagID uint      `gorm:"primaryKey" json:"positionTagId"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ProjectPositionTag) TableName() string { return "project_position_tags" }

type UserSkillTag struct {
	UserID     uint      `gorm:"primaryKey" json:"userId"`
	SkillTagID uint      `gorm:"primaryKey" json:"skillTagId"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (UserSkillTag) TableName() string { return "user_skill_tags" }
