package repositories

import (
	"context"
	"time"

	"github.com/bearh141/todo-list/internal/domain/entities"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	FindById(ctx context.Context, id uint) (*entities.Task, error)
	FindByProject(ctx context.Context, projectId uint) ([]*entities.Task, error)
	FindByProjectAndTitle(ctx context.Context, projectId uint, title string) (*entities.Task, error)
	Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	SetCompletion(ctx context.Context, taskIds []uint, completed bool) error
	Delete(ctx context.Context, id uint) error

	// FindDueForReminder returns incomplete tasks with a due date inside
	// the look-ahead window (overdue included) whose reminder was not
	// sent yet.
	FindDueForReminder(ctx context.Context, deadline time.Time) ([]*entities.Task, error)
	MarkReminderSent(ctx context.Context, taskId uint) error
}

type TagRepository interface {
	// ResolveTags finds or creates a tag row for every name, in order.
	// Resolving the same name twice never creates a duplicate row.
	ResolveTags(ctx context.Context, names []string) ([]entities.Tag, error)
	FindAll(ctx context.Context) ([]entities.Tag, error)
}
