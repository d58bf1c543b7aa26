package db

import (
	"context"
	"errors"

	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.ValidatedProject) (*entities.Project, error) {
	projectModel := mapProjectToModel(project.GetProject())

	if err := r.db.WithContext(ctx).Create(projectModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, projectModel.Id)
}

func (r *ProjectRepository) FindById(ctx context.Context, id uint) (*entities.Project, error) {
	var projectModel ProjectModel
	if err := r.db.WithContext(ctx).First(&projectModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapProjectToEntity(&projectModel), nil
}

func (r *ProjectRepository) FindByOwner(ctx context.Context, ownerId uint) ([]*entities.Project, error) {
	var projectModels []ProjectModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerId).Order("id").Find(&projectModels).Error; err != nil {
		return nil, err
	}

	return mapProjectsToEntities(projectModels), nil
}

func (r *ProjectRepository) FindSharedWith(ctx context.Context, userId uint) ([]*entities.Project, error) {
	var projectModels []ProjectModel
	err := r.db.WithContext(ctx).
		Joins("JOIN project_shares ON project_shares.project_id = projects.id").
		Where("project_shares.user_id = ?", userId).
		Order("projects.id").
		Find(&projectModels).Error
	if err != nil {
		return nil, err
	}

	return mapProjectsToEntities(projectModels), nil
}

func (r *ProjectRepository) FindByOwnerAndTitle(ctx context.Context, ownerId uint, title string) (*entities.Project, error) {
	var projectModel ProjectModel
	err := r.db.WithContext(ctx).Where("owner_id = ? AND title = ?", ownerId, title).First(&projectModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapProjectToEntity(&projectModel), nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.ValidatedProject) (*entities.Project, error) {
	projectModel := mapProjectToModel(project.GetProject())

	if err := r.db.WithContext(ctx).Save(projectModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, projectModel.Id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&ProjectModel{}, id).Error
}

func mapProjectToModel(project *entities.Project) *ProjectModel {
	return &ProjectModel{
		Id:          project.Id,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
		Title:       project.Title,
		Description: project.Description,
		OwnerId:     project.OwnerId,
	}
}

func mapProjectToEntity(projectModel *ProjectModel) *entities.Project {
	return &entities.Project{
		Id:          projectModel.Id,
		CreatedAt:   projectModel.CreatedAt,
		UpdatedAt:   projectModel.UpdatedAt,
		Title:       projectModel.Title,
		Description: projectModel.Description,
		OwnerId:     projectModel.OwnerId,
	}
}

func mapProjectsToEntities(projectModels []ProjectModel) []*entities.Project {
	projects := make([]*entities.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, mapProjectToEntity(&projectModels[i]))
	}
	return projects
}
