package repositories

import (
	"github.com/google/uuid"

	"branding-agent/internal/domain/entities"
)

// EngagementTotals are summed over a user's persisted posts. Simulated
// display values never flow back into these.
type EngagementTotals struct {
	Posts    int64
	Likes    int64
	Comments int64
}

type PostRepository interface {
	Create(post *entities.ValidatedPost) (*entities.Post, error)
	ListByOwner(ownerID uuid.UUID) ([]entities.Post, error)
	// Delete removes a post only when it belongs to ownerID. It reports
	// whether a row was actually removed.
	Delete(postID, ownerID uuid.UUID) (bool, error)
	// PublishDraft persists the post and deletes the source draft as one
	// atomic unit; if the draft is gone the post insert is rolled back.
	PublishDraft(post *entities.ValidatedPost, draftID uuid.UUID) (*entities.Post, error)
	EngagementTotals(ownerID uuid.UUID) (*EngagementTotals, error)
}
