package mapper

import (
	"branding-agent/internal/application/common"
	"branding-agent/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}

	return &common.UserResult{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Industry:  user.Industry,
		Interests: user.Interests,
		CreatedAt: user.CreatedAt,
	}
}
