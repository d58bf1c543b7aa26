package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"github.com/bearh141/todo-list/internal/infrastructure"
	"github.com/bearh141/todo-list/internal/logging"
)

// ReminderService emails owners of incomplete tasks whose due date is
// inside the look-ahead window. Delivery is at-least-once: the sent
// flag is only set after a successful dispatch, so a crash in between
// can resend.
type ReminderService struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
	mailer   infrastructure.Mailer
	window   time.Duration
}

func NewReminderService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	mailer infrastructure.Mailer,
	window time.Duration,
) *ReminderService {
	return &ReminderService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		mailer:   mailer,
		window:   window,
	}
}

// Sweep scans once and returns how many reminders were sent. Failures
// for individual tasks are logged and skipped so one bad address does
// not block the rest.
func (s *ReminderService) Sweep(ctx context.Context) (int, error) {
	deadline := time.Now().Add(s.window)
	tasks, err := s.taskRepo.FindDueForReminder(ctx, deadline)
	if err != nil {
		return 0, common.Persistence("reminder scan", err)
	}

	sent := 0
	for _, task := range tasks {
		owner, err := s.userRepo.FindById(ctx, task.OwnerId)
		if err != nil {
			logging.Logger.Errorf("Reminder owner lookup failed for task %d: %v", task.Id, err)
			continue
		}
		if owner == nil || owner.Email == "" {
			continue
		}

		subject := fmt.Sprintf("Task %q is due soon", task.Title)
		body := fmt.Sprintf("Hi %s, your task %q is due on %s.",
			owner.Username, task.Title, task.DueDate.Format("2006-01-02"))

		if err := s.mailer.Send(ctx, owner.Email, subject, body); err != nil {
			logging.Logger.Errorf("Reminder mail failed for task %d: %v", task.Id, err)
			continue
		}

		if err := s.taskRepo.MarkReminderSent(ctx, task.Id); err != nil {
			logging.Logger.Errorf("Failed to mark reminder sent for task %d: %v", task.Id, err)
			continue
		}
		sent++
	}

	return sent, nil
}
