package command

import (
	"github.com/google/uuid"

	"branding-agent/internal/application/common"
)

type PublishDraftCommand struct {
	DraftID uuid.UUID
	UserID  uuid.UUID
}

type PublishDraftCommandResult struct {
	Result *common.PostResult
}
