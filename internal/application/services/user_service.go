package services

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"branding-agent/internal/application/command"
	"branding-agent/internal/application/common"
	"branding-agent/internal/application/interfaces"
	"branding-agent/internal/application/mapper"
	"branding-agent/internal/domain/entities"
	"branding-agent/internal/domain/repositories"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type UserService struct {
	userRepo   repositories.UserRepository
	tokens     interfaces.TokenIssuer
	tokenCache interfaces.TokenCache
	mail       interfaces.MailSender
}

func NewUserService(
	userRepo repositories.UserRepository,
	tokens interfaces.TokenIssuer,
	tokenCache interfaces.TokenCache,
	mail interfaces.MailSender,
) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		tokens:     tokens,
		tokenCache: tokenCache,
		mail:       mail,
	}
}

func (s *UserService) CreateUser(ctx context.Context, cmd *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)

	if name == "" {
		return nil, common.NewValidationError("name", "name cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return nil, common.NewValidationError("email", "invalid email format")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, common.NewValidationError("password", "password must be at least 6 characters")
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	newUser := entities.NewUser(name, email, cmd.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	// Welcome mail is best effort; signup never fails because of it.
	if s.mail != nil {
		go func(name, email string) {
			if err := s.mail.SendWelcome(context.Background(), name, email); err != nil {
				log.Printf("failed to send welcome mail to %s: %v", email, err)
			}
		}(createdUser.Name, createdUser.Email)
	}

	return &command.CreateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) LoginUser(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(cmd.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.Id.String())
	if err != nil {
		return nil, err
	}

	// Cache the token for quick middleware validation; a cache outage only
	// costs the fast path.
	if s.tokenCache != nil {
		go func(token, userID string) {
			if err := s.tokenCache.SetToken(context.Background(), token, userID); err != nil {
				log.Printf("failed to cache session token: %v", err)
			}
		}(token, user.Id.String())
	}

	return &command.LoginUserCommandResult{
		Token:  token,
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*common.UserResult, error) {
	user, err := s.userRepo.FindById(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return mapper.NewUserResultFromEntity(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	user, err := s.userRepo.FindById(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := user.ApplyProfileUpdate(cmd.Name, cmd.Role, cmd.Industry, cmd.Interests); err != nil {
		return nil, common.NewValidationError("profile", err.Error())
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, common.NewValidationError("profile", err.Error())
	}

	updatedUser, err := s.userRepo.Update(validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.UpdateProfileCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}
