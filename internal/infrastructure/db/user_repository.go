package db

import (
	"context"
	"errors"

	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := mapUserToModel(user.GetUser())

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mapUserToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := mapUserToModel(user.GetUser())

	if err := r.db.WithContext(ctx).Save(userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&UserModel{}, id).Error
}

func mapUserToModel(user *entities.User) *UserModel {
	var email *string
	if user.Email != "" {
		e := user.Email
		email = &e
	}
	return &UserModel{
		Id:         user.Id,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		Username:   user.Username,
		Email:      email,
		Password:   user.Password,
		IsAdmin:    user.IsAdmin,
		Theme:      user.Theme,
		AvatarPath: user.AvatarPath,
	}
}

func mapUserToEntity(userModel *UserModel) *entities.User {
	email := ""
	if userModel.Email != nil {
		email = *userModel.Email
	}
	return &entities.User{
		Id:         userModel.Id,
		CreatedAt:  userModel.CreatedAt,
		UpdatedAt:  userModel.UpdatedAt,
		Username:   userModel.Username,
		Email:      email,
		Password:   userModel.Password,
		IsAdmin:    userModel.IsAdmin,
		Theme:      userModel.Theme,
		AvatarPath: userModel.AvatarPath,
	}
}
