package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"branding-agent/internal/application/command"
	"branding-agent/internal/application/common"
	"branding-agent/internal/application/interfaces"
	"branding-agent/internal/application/mapper"
	"branding-agent/internal/application/query"
	"branding-agent/internal/domain/entities"
	"branding-agent/internal/domain/hashtag"
	"branding-agent/internal/domain/repositories"
)

type PostService struct {
	userRepo  repositories.UserRepository
	postRepo  repositories.PostRepository
	draftRepo repositories.DraftRepository
}

func NewPostService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	draftRepo repositories.DraftRepository,
) interfaces.PostService {
	return &PostService{
		userRepo:  userRepo,
		postRepo:  postRepo,
		draftRepo: draftRepo,
	}
}

func (s *PostService) SavePost(ctx context.Context, cmd *command.SavePostCommand) (*command.SavePostCommandResult, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, common.NewValidationError("content", "cannot save an empty post")
	}

	user, err := s.userRepo.FindById(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := entities.NewPost(
		cmd.UserID,
		cmd.Content,
		hashtag.Normalize(cmd.Hashtags),
		cmd.ScheduleDate,
		user.Role,
		user.Industry,
		user.Interests,
	)
	validatedPost, err := entities.NewValidatedPost(post)
	if err != nil {
		return nil, common.NewValidationError("content", err.Error())
	}

	createdPost, err := s.postRepo.Create(validatedPost)
	if err != nil {
		return nil, err
	}

	return &command.SavePostCommandResult{
		Result: mapper.NewPostResultFromEntity(createdPost),
	}, nil
}

func (s *PostService) ListPosts(ctx context.Context, ownerID uuid.UUID) ([]common.PostResult, error) {
	posts, err := s.postRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	results := make([]common.PostResult, 0, len(posts))
	for i := range posts {
		result := mapper.NewPostResultFromEntity(&posts[i])
		results = append(results, *mapper.WithSimulatedEngagement(result))
	}
	return results, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID, ownerID uuid.UUID) (bool, error) {
	return s.postRepo.Delete(postID, ownerID)
}

func (s *PostService) SaveDraft(ctx context.Context, cmd *command.SaveDraftCommand) (*command.SaveDraftCommandResult, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, common.NewValidationError("content", "cannot save an empty draft")
	}

	draft := entities.NewDraft(cmd.UserID, cmd.Content, hashtag.Normalize(cmd.Hashtags), cmd.ScheduleDate)
	validatedDraft, err := entities.NewValidatedDraft(draft)
	if err != nil {
		return nil, common.NewValidationError("content", err.Error())
	}

	createdDraft, err := s.draftRepo.Create(validatedDraft)
	if err != nil {
		return nil, err
	}

	return &command.SaveDraftCommandResult{
		Result: mapper.NewDraftResultFromEntity(createdDraft),
	}, nil
}

func (s *PostService) ListDrafts(ctx context.Context, ownerID uuid.UUID) ([]common.DraftResult, error) {
	drafts, err := s.draftRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	results := make([]common.DraftResult, 0, len(drafts))
	for i := range drafts {
		results = append(results, *mapper.NewDraftResultFromEntity(&drafts[i]))
	}
	return results, nil
}

func (s *PostService) DeleteDraft(ctx context.Context, draftID, ownerID uuid.UUID) (bool, error) {
	return s.draftRepo.Delete(draftID, ownerID)
}

// PublishDraft turns a draft into a scheduled post. The post snapshots the
// owner's current role/industry/interests, not the values from draft-creation
// time. Insert and draft deletion happen in one transaction, so a failed
// deletion cannot leave both records behind.
func (s *PostService) PublishDraft(ctx context.Context, cmd *command.PublishDraftCommand) (*command.PublishDraftCommandResult, error) {
	draft, err := s.draftRepo.FindById(cmd.DraftID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	user, err := s.userRepo.FindById(cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := entities.NewPost(
		cmd.UserID,
		draft.Content,
		draft.Hashtags,
		draft.EffectiveScheduleDate(),
		user.Role,
		user.Industry,
		user.Interests,
	)
	validatedPost, err := entities.NewValidatedPost(post)
	if err != nil {
		return nil, common.NewValidationError("content", err.Error())
	}

	createdPost, err := s.postRepo.PublishDraft(validatedPost, draft.Id)
	if err != nil {
		// Lost a publish race: the draft vanished between the lookup and the
		// transactional delete.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	return &command.PublishDraftCommandResult{
		Result: mapper.NewPostResultFromEntity(createdPost),
	}, nil
}

func (s *PostService) GetUserStats(ctx context.Context, ownerID uuid.UUID) (*query.UserStatsResult, error) {
	totals, err := s.postRepo.EngagementTotals(ownerID)
	if err != nil {
		return nil, err
	}

	draftCount, err := s.draftRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	return &query.UserStatsResult{
		Posts:    totals.Posts,
		Drafts:   draftCount,
		Likes:    totals.Likes,
		Comments: totals.Comments,
	}, nil
}
