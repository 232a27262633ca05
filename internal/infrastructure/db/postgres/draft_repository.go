package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"branding-agent/internal/domain/entities"
	"branding-agent/internal/domain/repositories"
)

type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) repositories.DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Create(draft *entities.ValidatedDraft) (*entities.Draft, error) {
	draftModel := mapDraftToModel(draft.GetDraft())
	if err := r.db.Create(&draftModel).Error; err != nil {
		return nil, err
	}

	return mapDraftToEntity(&draftModel), nil
}

func (r *DraftRepository) FindById(draftID, ownerID uuid.UUID) (*entities.Draft, error) {
	var draftModel DraftModel
	if err := r.db.Where("id = ? AND user_id = ?", draftID, ownerID).First(&draftModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapDraftToEntity(&draftModel), nil
}

func (r *DraftRepository) ListByOwner(ownerID uuid.UUID) ([]entities.Draft, error) {
	var draftModels []DraftModel
	if err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&draftModels).Error; err != nil {
		return nil, err
	}

	drafts := make([]entities.Draft, 0, len(draftModels))
	for i := range draftModels {
		drafts = append(drafts, *mapDraftToEntity(&draftModels[i]))
	}
	return drafts, nil
}

func (r *DraftRepository) Delete(draftID, ownerID uuid.UUID) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", draftID, ownerID).Delete(&DraftModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DraftRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&DraftModel{}).Where("user_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func mapDraftToModel(draft *entities.Draft) DraftModel {
	return DraftModel{
		Id:           draft.Id,
		UserID:       draft.UserID,
		Content:      draft.Content,
		Hashtags:     draft.Hashtags,
		ScheduleDate: draft.ScheduleDate,
		CreatedAt:    draft.CreatedAt,
	}
}

func mapDraftToEntity(draftModel *DraftModel) *entities.Draft {
	return &entities.Draft{
		Id:           draftModel.Id,
		UserID:       draftModel.UserID,
		Content:      draftModel.Content,
		Hashtags:     draftModel.Hashtags,
		ScheduleDate: draftModel.ScheduleDate,
		CreatedAt:    draftModel.CreatedAt,
	}
}
