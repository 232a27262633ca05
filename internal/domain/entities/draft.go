package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Draft is unpublished content waiting to be scheduled or discarded.
type Draft struct {
	Id           uuid.UUID
	UserID       uuid.UUID
	Content      string
	Hashtags     string
	ScheduleDate time.Time
	CreatedAt    time.Time
}

func NewDraft(userID uuid.UUID, content, hashtags string, scheduleDate time.Time) *Draft {
	if scheduleDate.IsZero() {
		scheduleDate = Today()
	}
	return &Draft{
		Id:           uuid.New(),
		UserID:       userID,
		Content:      content,
		Hashtags:     hashtags,
		ScheduleDate: scheduleDate,
		CreatedAt:    time.Now(),
	}
}

func (d *Draft) validate() error {
	if d.UserID == uuid.Nil {
		return errors.New("draft must have an owner")
	}
	if strings.TrimSpace(d.Content) == "" {
		return errors.New("content must not be empty")
	}
	return nil
}

// EffectiveScheduleDate substitutes today's date when the stored one is
// missing, so a publish never produces a post without a schedule date.
func (d *Draft) EffectiveScheduleDate() time.Time {
	if d.ScheduleDate.IsZero() {
		return Today()
	}
	return d.ScheduleDate
}
