package command

import "github.com/google/uuid"

type GeneratePostCommand struct {
	UserID uuid.UUID
}

const (
	GenerateSourceAI       = "ai"
	GenerateSourceFallback = "fallback"
)

// GeneratePostCommandResult carries the generated body and the canonicalized
// hashtag string. When the external service was skipped or failed, Source is
// "fallback" and Warning explains why; the result is still usable.
type GeneratePostCommandResult struct {
	Content  string
	Hashtags string
	Source   string
	Warning  string
}
