package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"branding-agent/internal/application/command"
	"branding-agent/internal/application/common"
	"branding-agent/internal/application/interfaces"
	"branding-agent/internal/domain/entities"
	"branding-agent/internal/domain/hashtag"
	"branding-agent/internal/domain/repositories"
	"branding-agent/internal/infrastructure/genai"
)

// FallbackHashtags pairs with the fallback template; always canonical already.
const FallbackHashtags = "#career #learning #coding"

type ContentService struct {
	userRepo  repositories.UserRepository
	generator genai.TextGenerator
}

// NewContentService builds the generation pipeline. generator may be nil when
// no external credential is configured; generation then always uses the local
// fallback template.
func NewContentService(userRepo repositories.UserRepository, generator genai.TextGenerator) interfaces.ContentService {
	return &ContentService{
		userRepo:  userRepo,
		generator: generator,
	}
}

func (s *ContentService) Generate(ctx context.Context, cmd *command.GeneratePostCommand) (*command.GeneratePostCommandResult, error) {
	user, err := s.userRepo.FindById(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Profile completeness gates the whole feature: generating from empty
	// fields wastes the external call and yields a meaningless post.
	if missing := user.MissingProfileFields(); len(missing) > 0 {
		return nil, common.NewValidationError("profile", fmt.Sprintf("fill in your profile before generating (missing: %s)", strings.Join(missing, ", ")))
	}

	if s.generator == nil {
		return s.fallbackResult(user, "no generation credential configured; using the fallback template"), nil
	}

	content, err := s.generator.GenerateText(ctx, buildPostPrompt(user))
	if err != nil {
		log.Printf("generation service failed: %v", err)
		return s.fallbackResult(user, fmt.Sprintf("generation service failed (%v); using the fallback template", err)), nil
	}

	tags, err := s.generator.GenerateText(ctx, buildHashtagPrompt(user))
	if err != nil {
		log.Printf("hashtag suggestion failed: %v", err)
		return s.fallbackResult(user, fmt.Sprintf("generation service failed (%v); using the fallback template", err)), nil
	}

	return &command.GeneratePostCommandResult{
		Content:  strings.TrimSpace(content),
		Hashtags: hashtag.Normalize(tags),
		Source:   command.GenerateSourceAI,
	}, nil
}

func (s *ContentService) fallbackResult(user *entities.User, warning string) *command.GeneratePostCommandResult {
	content, tags := FallbackPost(user.Name, user.Role, user.Industry, user.Interests)
	return &command.GeneratePostCommandResult{
		Content:  content,
		Hashtags: hashtag.Normalize(tags),
		Source:   command.GenerateSourceFallback,
		Warning:  warning,
	}
}

// FallbackPost renders the deterministic local template. It needs no network
// and never fails; identical inputs yield identical output.
func FallbackPost(name, role, industry, interests string) (content, hashtags string) {
	content = fmt.Sprintf(`Excited to share a quick update! 👋

I'm %s, working towards %s in the %s space. Recently I explored topics around %s.
Key learnings:
• Stay consistent with hands-on practice
• Share small wins publicly
• Ask for feedback from the community

If you're also into %s, let's connect and learn together! #learning #growth`, name, role, industry, interests, industry)

	return content, FallbackHashtags
}

func buildPostPrompt(user *entities.User) string {
	return fmt.Sprintf(`You are an expert LinkedIn content writer.
Create a concise, engaging LinkedIn post for %s, a %s in the %s industry.
Include a friendly tone, one short value takeaway in bullet form, and a soft call-to-action.
Incorporate interests: %s. Keep it under 120 words. No emojis in bullet lines.`, user.Name, user.Role, user.Industry, user.Interests)
}

func buildHashtagPrompt(user *entities.User) string {
	return fmt.Sprintf("Suggest 5 short, relevant LinkedIn hashtags for %s and %s. Output as space-separated tags.", user.Industry, user.Interests)
}
