package command

import (
	"time"

	"github.com/google/uuid"

	"branding-agent/internal/application/common"
)

type SavePostCommand struct {
	UserID   uuid.UUID
	Content  string
	Hashtags string
	// Zero means "today".
	ScheduleDate time.Time
}

type SavePostCommandResult struct {
	Result *common.PostResult
}

type SaveDraftCommand struct {
	UserID       uuid.UUID
	Content      string
	Hashtags     string
	ScheduleDate time.Time
}

type SaveDraftCommandResult struct {
	Result *common.DraftResult
}
