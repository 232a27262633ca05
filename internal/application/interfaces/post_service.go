package interfaces

import (
	"context"

	"github.com/google/uuid"

	"branding-agent/internal/application/command"
	"branding-agent/internal/application/common"
	"branding-agent/internal/application/query"
)

type PostService interface {
	SavePost(ctx context.Context, cmd *command.SavePostCommand) (*command.SavePostCommandResult, error)
	ListPosts(ctx context.Context, ownerID uuid.UUID) ([]common.PostResult, error)
	DeletePost(ctx context.Context, postID, ownerID uuid.UUID) (bool, error)

	SaveDraft(ctx context.Context, cmd *command.SaveDraftCommand) (*command.SaveDraftCommandResult, error)
	ListDrafts(ctx context.Context, ownerID uuid.UUID) ([]common.DraftResult, error)
	DeleteDraft(ctx context.Context, draftID, ownerID uuid.UUID) (bool, error)

	PublishDraft(ctx context.Context, cmd *command.PublishDraftCommand) (*command.PublishDraftCommandResult, error)
	GetUserStats(ctx context.Context, ownerID uuid.UUID) (*query.UserStatsResult, error)
}
