package db

import (
	"context"
	"errors"

	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectShareRepository struct {
	db *gorm.DB
}

func NewProjectShareRepository(db *gorm.DB) repositories.ProjectShareRepository {
	return &ProjectShareRepository{db: db}
}

// Upsert inserts the share or, when a row for (project, user) already
// exists, updates its role. At most one row per pair.
func (r *ProjectShareRepository) Upsert(ctx context.Context, share *entities.ProjectShare) (*entities.ProjectShare, error) {
	shareModel := ProjectShareModel{
		ProjectId: share.ProjectId,
		UserId:    share.UserId,
		Role:      string(share.Role),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&shareModel).Error
	if err != nil {
		return nil, err
	}

	return r.Find(ctx, share.ProjectId, share.UserId)
}

func (r *ProjectShareRepository) Find(ctx context.Context, projectId, userId uint) (*entities.ProjectShare, error) {
	var shareModel ProjectShareModel
	err := r.db.WithContext(ctx).Where("project_id = ? AND user_id = ?", projectId, userId).First(&shareModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapShareToEntity(&shareModel), nil
}

func (r *ProjectShareRepository) FindByProject(ctx context.Context, projectId uint) ([]*entities.ProjectShare, error) {
	var shareModels []ProjectShareModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectId).Order("id").Find(&shareModels).Error; err != nil {
		return nil, err
	}

	shares := make([]*entities.ProjectShare, 0, len(shareModels))
	for i := range shareModels {
		shares = append(shares, mapShareToEntity(&shareModels[i]))
	}
	return shares, nil
}

func (r *ProjectShareRepository) Delete(ctx context.Context, projectId, userId uint) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectId, userId).
		Delete(&ProjectShareModel{}).Error
}

func mapShareToEntity(shareModel *ProjectShareModel) *entities.ProjectShare {
	return &entities.ProjectShare{
		Id:        shareModel.Id,
		ProjectId: shareModel.ProjectId,
		UserId:    shareModel.UserId,
		Role:      entities.Role(shareModel.Role),
	}
}
