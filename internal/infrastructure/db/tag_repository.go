package db

import (
	"context"

	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) ResolveTags(ctx context.Context, names []string) ([]entities.Tag, error) {
	names = entities.NormalizeTagNames(names)

	tags := make([]entities.Tag, 0, len(names))
	for _, name := range names {
		var tagModel TagModel
		err := r.db.WithContext(ctx).Where(TagModel{Name: name}).FirstOrCreate(&tagModel).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, entities.Tag{Id: tagModel.Id, Name: tagModel.Name})
	}
	return tags, nil
}

func (r *TagRepository) FindAll(ctx context.Context) ([]entities.Tag, error) {
	var tagModels []TagModel
	if err := r.db.WithContext(ctx).Order("name").Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]entities.Tag, 0, len(tagModels))
	for _, tagModel := range tagModels {
		tags = append(tags, entities.Tag{Id: tagModel.Id, Name: tagModel.Name})
	}
	return tags, nil
}
