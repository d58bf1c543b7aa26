package db

import (
	"context"
	"errors"
	"time"

	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	taskModel := mapTaskToModel(task.GetTask())

	if err := r.db.WithContext(ctx).Create(taskModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, taskModel.Id)
}

func (r *TaskRepository) FindById(ctx context.Context, id uint) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.WithContext(ctx).Preload("Tags").First(&taskModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapTaskToEntity(&taskModel), nil
}

func (r *TaskRepository) FindByProject(ctx context.Context, projectId uint) ([]*entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("project_id = ?", projectId).
		Order("id").
		Find(&taskModels).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, mapTaskToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) FindByProjectAndTitle(ctx context.Context, projectId uint, title string) (*entities.Task, error) {
	var taskModel TaskModel
	err := r.db.WithContext(ctx).Where("project_id = ? AND title = ?", projectId, title).First(&taskModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapTaskToEntity(&taskModel), nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	taskModel := mapTaskToModel(task.GetTask())
	tagModels := taskModel.Tags
	taskModel.Tags = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Select("*") so that cleared fields (due date, parent) are
		// written back as NULL instead of being skipped.
		if err := tx.Model(taskModel).Select("*").Omit("id", "created_at").Updates(taskModel).Error; err != nil {
			return err
		}
		return tx.Model(taskModel).Association("Tags").Replace(tagModels)
	})
	if err != nil {
		return nil, err
	}

	return r.FindById(ctx, taskModel.Id)
}

func (r *TaskRepository) SetCompletion(ctx context.Context, taskIds []uint, completed bool) error {
	if len(taskIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&TaskModel{}).
		Where("id IN ?", taskIds).
		Updates(map[string]interface{}{"completed": completed, "updated_at": time.Now()}).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&TaskModel{}, id).Error
}

func (r *TaskRepository) FindDueForReminder(ctx context.Context, deadline time.Time) ([]*entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.WithContext(ctx).
		Where("completed = ? AND reminder_sent = ? AND due_date IS NOT NULL AND due_date <= ?", false, false, deadline).
		Order("due_date").
		Find(&taskModels).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, mapTaskToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) MarkReminderSent(ctx context.Context, taskId uint) error {
	return r.db.WithContext(ctx).Model(&TaskModel{}).
		Where("id = ?", taskId).
		Update("reminder_sent", true).Error
}

func mapTaskToModel(task *entities.Task) *TaskModel {
	tagModels := make([]TagModel, 0, len(task.Tags))
	for _, tag := range task.Tags {
		tagModels = append(tagModels, TagModel{Id: tag.Id, Name: tag.Name})
	}
	return &TaskModel{
		Id:           task.Id,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
		Title:        task.Title,
		Description:  task.Description,
		DueDate:      task.DueDate,
		Completed:    task.Completed,
		Priority:     string(task.Priority),
		ParentId:     task.ParentId,
		ProjectId:    task.ProjectId,
		OwnerId:      task.OwnerId,
		ReminderSent: task.ReminderSent,
		Tags:         tagModels,
	}
}

func mapTaskToEntity(taskModel *TaskModel) *entities.Task {
	tags := make([]entities.Tag, 0, len(taskModel.Tags))
	for _, tagModel := range taskModel.Tags {
		tags = append(tags, entities.Tag{Id: tagModel.Id, Name: tagModel.Name})
	}
	return &entities.Task{
		Id:           taskModel.Id,
		CreatedAt:    taskModel.CreatedAt,
		UpdatedAt:    taskModel.UpdatedAt,
		Title:        taskModel.Title,
		Description:  taskModel.Description,
		DueDate:      taskModel.DueDate,
		Completed:    taskModel.Completed,
		Priority:     entities.Priority(taskModel.Priority),
		ParentId:     taskModel.ParentId,
		ProjectId:    taskModel.ProjectId,
		OwnerId:      taskModel.OwnerId,
		ReminderSent: taskModel.ReminderSent,
		Tags:         tags,
	}
}
