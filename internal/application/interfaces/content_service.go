package interfaces

import (
	"context"

	"branding-agent/internal/application/command"
)

type ContentService interface {
	Generate(ctx context.Context, cmd *command.GeneratePostCommand) (*command.GeneratePostCommandResult, error)
}
