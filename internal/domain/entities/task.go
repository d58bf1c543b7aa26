package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities for display, high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium, "":
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

type Task struct {
	Id           uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string
	Description  string
	DueDate      *time.Time
	Completed    bool
	Priority     Priority
	ParentId     *uint
	ProjectId    uint
	OwnerId      uint
	ReminderSent bool
	Tags         []Tag
}

func NewTask(title, description string, projectId, ownerId uint) *Task {
	return &Task{
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Priority:    PriorityMedium,
		ProjectId:   projectId,
		OwnerId:     ownerId,
	}
}

func (t *Task) validate() error {
	if t.Title == "" {
		return errors.New("task title must not be empty")
	}
	if t.ProjectId == 0 {
		return errors.New("task project must be set")
	}
	if t.Priority != PriorityLow && t.Priority != PriorityMedium && t.Priority != PriorityHigh {
		return errors.New("task priority must be low, medium or high")
	}
	if t.ParentId != nil && *t.ParentId == t.Id && t.Id != 0 {
		return errors.New("task cannot be its own parent")
	}
	return nil
}

func (t *Task) Update(title, description string, dueDate *time.Time, priority Priority) error {
	t.Title = strings.TrimSpace(title)
	t.Description = description
	t.DueDate = dueDate
	t.Priority = priority
	t.UpdatedAt = time.Now()
	return t.validate()
}

func (t *Task) MarkReminderSent() {
	t.ReminderSent = true
	t.UpdatedAt = time.Now()
}

type ValidatedTask struct {
	*Task
}

func NewValidatedTask(task *Task) (*ValidatedTask, error) {
	if err := task.validate(); err != nil {
		return nil, err
	}

	return &ValidatedTask{Task: task}, nil
}

func (vt *ValidatedTask) GetTask() *Task {
	return vt.Task
}
