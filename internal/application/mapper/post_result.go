package mapper

import (
	"branding-agent/internal/application/common"
	"branding-agent/internal/domain/entities"
)

const dateLayout = "2006-01-02"

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	if post == nil {
		return nil
	}

	return &common.PostResult{
		Id:           post.Id,
		Content:      post.Content,
		Hashtags:     post.Hashtags,
		ScheduleDate: post.ScheduleDate.Format(dateLayout),
		Role:         post.Role,
		Industry:     post.Industry,
		Interests:    post.Interests,
		Likes:        post.Likes,
		Comments:     post.Comments,
		CreatedAt:    post.CreatedAt,
	}
}

func NewDraftResultFromEntity(draft *entities.Draft) *common.DraftResult {
	if draft == nil {
		return nil
	}

	return &common.DraftResult{
		Id:           draft.Id,
		Content:      draft.Content,
		Hashtags:     draft.Hashtags,
		ScheduleDate: draft.EffectiveScheduleDate().Format(dateLayout),
		CreatedAt:    draft.CreatedAt,
	}
}
