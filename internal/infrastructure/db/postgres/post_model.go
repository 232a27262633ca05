package postgres

import (
	"time"

	"github.com/google/uuid"
)

type PostModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Content      string    `gorm:"type:text;not null"`
	Hashtags     string    `gorm:"type:text"`
	ScheduleDate time.Time
	Role         string
	Industry     string
	Interests    string `gorm:"type:text"`
	Likes        int    `gorm:"default:0"`
	Comments     int    `gorm:"default:0"`
	CreatedAt    time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

type DraftModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Content      string    `gorm:"type:text;not null"`
	Hashtags     string    `gorm:"type:text"`
	ScheduleDate time.Time
	CreatedAt    time.Time
}

func (DraftModel) TableName() string {
	return "drafts"
}
