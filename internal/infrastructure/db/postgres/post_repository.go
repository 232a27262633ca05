package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"branding-agent/internal/domain/entities"
	"branding-agent/internal/domain/repositories"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *entities.ValidatedPost) (*entities.Post, error) {
	postModel := mapPostToModel(post.GetPost())
	if err := r.db.Create(&postModel).Error; err != nil {
		return nil, err
	}

	created := mapPostToEntity(&postModel)
	return created, nil
}

func (r *PostRepository) ListByOwner(ownerID uuid.UUID) ([]entities.Post, error) {
	var postModels []PostModel
	if err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, *mapPostToEntity(&postModels[i]))
	}
	return posts, nil
}

func (r *PostRepository) Delete(postID, ownerID uuid.UUID) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", postID, ownerID).Delete(&PostModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// PublishDraft inserts the post and deletes the source draft in a single
// transaction. A vanished draft (already published or deleted concurrently)
// aborts the transaction, so at most one publish of a draft can win.
func (r *PostRepository) PublishDraft(post *entities.ValidatedPost, draftID uuid.UUID) (*entities.Post, error) {
	postModel := mapPostToModel(post.GetPost())

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&postModel).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", draftID, postModel.UserID).Delete(&DraftModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapPostToEntity(&postModel), nil
}

func (r *PostRepository) EngagementTotals(ownerID uuid.UUID) (*repositories.EngagementTotals, error) {
	var totals repositories.EngagementTotals

	if err := r.db.Model(&PostModel{}).Where("user_id = ?", ownerID).Count(&totals.Posts).Error; err != nil {
		return nil, err
	}

	row := struct {
		Likes    int64
		Comments int64
	}{}
	err := r.db.Model(&PostModel{}).
		Where("user_id = ?", ownerID).
		Select("COALESCE(SUM(likes), 0) AS likes, COALESCE(SUM(comments), 0) AS comments").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	totals.Likes = row.Likes
	totals.Comments = row.Comments
	return &totals, nil
}

func mapPostToModel(post *entities.Post) PostModel {
	return PostModel{
		Id:           post.Id,
		UserID:       post.UserID,
		Content:      post.Content,
		Hashtags:     post.Hashtags,
		ScheduleDate: post.ScheduleDate,
		Role:         post.Role,
		Industry:     post.Industry,
		Interests:    post.Interests,
		Likes:        post.Likes,
		Comments:     post.Comments,
		CreatedAt:    post.CreatedAt,
	}
}

func mapPostToEntity(postModel *PostModel) *entities.Post {
	return &entities.Post{
		Id:           postModel.Id,
		UserID:       postModel.UserID,
		Content:      postModel.Content,
		Hashtags:     postModel.Hashtags,
		ScheduleDate: postModel.ScheduleDate,
		Role:         postModel.Role,
		Industry:     postModel.Industry,
		Interests:    postModel.Interests,
		Likes:        postModel.Likes,
		Comments:     postModel.Comments,
		CreatedAt:    postModel.CreatedAt,
	}
}
