package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post is a scheduled piece of content. ScheduleDate only records when the
// owner intends to publish; nothing is ever delivered anywhere. Role, industry
// and interests are snapshotted from the profile at save time.
type Post struct {
	Id           uuid.UUID
	UserID       uuid.UUID
	Content      string
	Hashtags     string
	ScheduleDate time.Time
	Role         string
	Industry     string
	Interests    string
	Likes        int
	Comments     int
	CreatedAt    time.Time
}

func NewPost(userID uuid.UUID, content, hashtags string, scheduleDate time.Time, role, industry, interests string) *Post {
	if scheduleDate.IsZero() {
		scheduleDate = Today()
	}
	return &Post{
		Id:           uuid.New(),
		UserID:       userID,
		Content:      content,
		Hashtags:     hashtags,
		ScheduleDate: scheduleDate,
		Role:         role,
		Industry:     industry,
		Interests:    interests,
		CreatedAt:    time.Now(),
	}
}

func (p *Post) validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("post must have an owner")
	}
	if strings.TrimSpace(p.Content) == "" {
		return errors.New("content must not be empty")
	}
	return nil
}

// Today returns the current date at midnight local time, the default
// schedule date used everywhere a stored date is absent.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
