package services

import (
	"context"
	"io"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"github.com/bearh141/todo-list/internal/infrastructure"
	"github.com/bearh141/todo-list/internal/logging"
)

type UserService struct {
	userRepo    repositories.UserRepository
	avatarStore *infrastructure.AvatarStore
}

func NewUserService(userRepo repositories.UserRepository, avatarStore *infrastructure.AvatarStore) *UserService {
	return &UserService{
		userRepo:    userRepo,
		avatarStore: avatarStore,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userId uint) (*entities.User, error) {
	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, common.Persistence("user lookup", err)
	}
	if user == nil {
		return nil, common.NotFoundf("user %d not found", userId)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userId uint, email, theme string) (*entities.User, error) {
	user, err := s.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		existingUser, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, common.Persistence("user lookup", err)
		}
		if existingUser != nil && existingUser.Id != userId {
			return nil, common.Validationf("email already taken")
		}
	}

	if err := user.UpdateProfile(email, theme); err != nil {
		return nil, common.Validationf("%v", err)
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, common.Persistence("user update", err)
	}
	return updatedUser, nil
}

// UpdateAvatar stores the uploaded image and keeps only the returned
// path on the user row.
func (s *UserService) UpdateAvatar(ctx context.Context, userId uint, filename string, content io.Reader) (*entities.User, error) {
	user, err := s.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	path, err := s.avatarStore.Save(filename, content)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	user.SetAvatar(path)
	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, common.Persistence("user update", err)
	}
	return updatedUser, nil
}

// Admin operations. The handler layer only routes admins here.

func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, common.Persistence("user list", err)
	}
	return users, nil
}

func (s *UserService) SetAdmin(ctx context.Context, userId uint, isAdmin bool) (*entities.User, error) {
	user, err := s.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	user.SetAdmin(isAdmin)
	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, common.Persistence("user update", err)
	}
	return updatedUser, nil
}

// DeleteUser removes the account. Owned projects, their tasks and
// shares go with it through the cascade constraints.
func (s *UserService) DeleteUser(ctx context.Context, actorId, userId uint) error {
	if actorId == userId {
		return common.Validationf("cannot delete your own account")
	}

	user, err := s.GetProfile(ctx, userId)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.Id); err != nil {
		return common.Persistence("user delete", err)
	}

	logging.Logger.Infof("Deleted user %s", user.Username)
	return nil
}
