package repositories

import (
	"context"

	"github.com/bearh141/todo-list/internal/domain/entities"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entities.ValidatedProject) (*entities.Project, error)
	FindById(ctx context.Context, id uint) (*entities.Project, error)
	FindByOwner(ctx context.Context, ownerId uint) ([]*entities.Project, error)
	FindSharedWith(ctx context.Context, userId uint) ([]*entities.Project, error)
	FindByOwnerAndTitle(ctx context.Context, ownerId uint, title string) (*entities.Project, error)
	Update(ctx context.Context, project *entities.ValidatedProject) (*entities.Project, error)
	Delete(ctx context.Context, id uint) error
}

type ProjectShareRepository interface {
	Upsert(ctx context.Context, share *entities.ProjectShare) (*entities.ProjectShare, error)
	Find(ctx context.Context, projectId, userId uint) (*entities.ProjectShare, error)
	FindByProject(ctx context.Context, projectId uint) ([]*entities.ProjectShare, error)
	Delete(ctx context.Context, projectId, userId uint) error
}
