package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"branding-agent/internal/domain/entities"
	"branding-agent/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := mapUserToModel(userEntity)
	if err := r.db.Create(&userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(userEntity.Id)
}

func (r *UserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func (r *UserRepository) Update(user *entities.ValidatedUser) (*entities.User, error) {
	userModel := mapUserToModel(user.GetUser())
	if err := r.db.Save(&userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(userModel.Id)
}

func mapUserToModel(user *entities.User) UserModel {
	return UserModel{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Role:      user.Role,
		Industry:  user.Industry,
		Interests: user.Interests,
	}
}

func mapUserToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Name:      userModel.Name,
		Email:     userModel.Email,
		Password:  userModel.Password,
		Role:      userModel.Role,
		Industry:  userModel.Industry,
		Interests: userModel.Interests,
	}
}
