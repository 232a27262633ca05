package common

import (
	"time"

	"github.com/google/uuid"
)

type PostResult struct {
	Id           uuid.UUID `json:"id"`
	Content      string    `json:"content"`
	Hashtags     string    `json:"hashtags"`
	ScheduleDate string    `json:"schedule_date"`
	Role         string    `json:"role"`
	Industry     string    `json:"industry"`
	Interests    string    `json:"interests"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	// SimulatedEngagement marks likes/comments as display-only placeholders
	// filled in because the stored counters were zero.
	SimulatedEngagement bool      `json:"simulated_engagement"`
	CreatedAt           time.Time `json:"created_at"`
}

type DraftResult struct {
	Id           uuid.UUID `json:"id"`
	Content      string    `json:"content"`
	Hashtags     string    `json:"hashtags"`
	ScheduleDate string    `json:"schedule_date"`
	CreatedAt    time.Time `json:"created_at"`
}
