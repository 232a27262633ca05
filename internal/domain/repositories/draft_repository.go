package repositories

import (
	"github.com/google/uuid"

	"branding-agent/internal/domain/entities"
)

type DraftRepository interface {
	Create(draft *entities.ValidatedDraft) (*entities.Draft, error)
	FindById(draftID, ownerID uuid.UUID) (*entities.Draft, error)
	ListByOwner(ownerID uuid.UUID) ([]entities.Draft, error)
	Delete(draftID, ownerID uuid.UUID) (bool, error)
	CountByOwner(ownerID uuid.UUID) (int64, error)
}
