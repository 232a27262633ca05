package interfaces

import (
	"context"

	"github.com/google/uuid"

	"branding-agent/internal/application/command"
	"branding-agent/internal/application/common"
)

type UserService interface {
	CreateUser(ctx context.Context, cmd *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	LoginUser(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*common.UserResult, error)
	UpdateProfile(ctx context.Context, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
}

// TokenIssuer mints and verifies the session tokens handed to clients.
type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
	ParseToken(token string) (string, error)
}

// TokenCache is the best-effort session token store; failures are logged and
// never block login.
type TokenCache interface {
	SetToken(ctx context.Context, token, userID string) error
	GetToken(ctx context.Context, token string) (string, error)
}

// MailSender delivers the welcome mail; implementations may be no-ops when
// unconfigured.
type MailSender interface {
	SendWelcome(ctx context.Context, name, email string) error
}
