package user

import "time"

type User struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nickname      string    `gorm:"size:50;not null;unique" json:"nickname"`
	Email         string    `gorm:"size:100;not null;unique" json:"email"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	Bio           *string   `gorm:"size:255" json:"bio"`
	ProfileImg    *string   `gorm:"size:255" json:"profileImg"`
	PositionTagID *uint     `json:"positionTagId"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
