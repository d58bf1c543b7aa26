package services

import (
	"context"
	"time"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"github.com/bearh141/todo-list/internal/infrastructure"
	"github.com/bearh141/todo-list/internal/logging"
)

type AuthService struct {
	userRepo     repositories.UserRepository
	jwtService   *infrastructure.JWTService
	redisService *infrastructure.RedisService
	rateLimiter  *infrastructure.RateLimiter
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	redisService *infrastructure.RedisService,
	rateLimiter *infrastructure.RateLimiter,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		redisService: redisService,
		rateLimiter:  rateLimiter,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entities.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, common.Persistence("user lookup", err)
	}
	if existingUser != nil {
		return nil, common.Validationf("username already taken")
	}

	if email != "" {
		existingUser, err = s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, common.Persistence("user lookup", err)
		}
		if existingUser != nil {
			return nil, common.Validationf("email already taken")
		}
	}

	newUser := entities.NewUser(username, email, password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	if err := validatedUser.HashPassword(); err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, common.Persistence("user create", err)
	}

	logging.Logger.Infof("Registered user %s", createdUser.Username)
	return createdUser, nil
}

// Login checks credentials and issues a session token. The token is
// also stored in Redis so logout can revoke it early.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entities.User, error) {
	if !s.rateLimiter.Allow(username) {
		return "", nil, common.PermissionDeniedf("too many login attempts, please try again later")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, common.Persistence("user lookup", err)
	}
	if user == nil {
		return "", nil, common.PermissionDeniedf("invalid username or password")
	}

	if err := user.CheckPassword(password); err != nil {
		return "", nil, common.PermissionDeniedf("invalid username or password")
	}

	token, err := s.jwtService.GenerateToken(user.Id, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}

	if err := s.redisService.SetToken(ctx, token, user.Id, 24*time.Hour); err != nil {
		logging.Logger.Warnf("Failed to store session token: %v", err)
	}

	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.redisService.RevokeToken(ctx, token)
}
