package services

import (
	"context"
	"testing"
	"time"

	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderSweepSendsOncePerTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "alice")
	project := env.createProject(t, owner.Id, "Deadlines")

	soon := time.Now().Add(2 * time.Hour)
	_, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "due soon", Priority: "medium", DueDate: &soon})
	require.NoError(t, err)

	later := time.Now().Add(96 * time.Hour)
	_, err = env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "due later", Priority: "medium", DueDate: &later})
	require.NoError(t, err)

	mailer := &fakeMailer{}
	reminderService := NewReminderService(env.taskRepo, env.userRepo, mailer, 24*time.Hour)

	sent, err := reminderService.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "alice@example.com", mailer.sent[0].Recipient)
	assert.Contains(t, mailer.sent[0].Subject, "due soon")

	// The sent flag stops a second sweep from resending.
	sent, err = reminderService.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Len(t, mailer.sent, 1)
}

func TestReminderSweepSkipsCompletedTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "bob")
	project := env.createProject(t, owner.Id, "Done")

	soon := time.Now().Add(time.Hour)
	task, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "finished", Priority: "medium", DueDate: &soon})
	require.NoError(t, err)
	_, err = env.taskService.SetCompletion(ctx, owner.Id, task.Id, true)
	require.NoError(t, err)

	mailer := &fakeMailer{}
	reminderService := NewReminderService(env.taskRepo, env.userRepo, mailer, 24*time.Hour)

	sent, err := reminderService.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.sent)
}

func TestReminderSweepRetriesAfterMailFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "carol")
	project := env.createProject(t, owner.Id, "Flaky")

	soon := time.Now().Add(time.Hour)
	_, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "important", Priority: "high", DueDate: &soon})
	require.NoError(t, err)

	mailer := &fakeMailer{fail: true}
	reminderService := NewReminderService(env.taskRepo, env.userRepo, mailer, 24*time.Hour)

	// A failed dispatch leaves the flag unset so the next sweep tries
	// again. At-least-once, never silently dropped.
	sent, err := reminderService.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	mailer.fail = false
	sent, err = reminderService.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestReminderSweepSkipsOwnersWithoutEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	validatedUser, err := entities.NewValidatedUser(entities.NewUser("noemail", "", "pw"))
	require.NoError(t, err)
	owner, err := env.userRepo.Create(ctx, validatedUser)
	require.NoError(t, err)

	project := env.createProject(t, owner.Id, "Quiet")
	soon := time.Now().Add(time.Hour)
	_, err = env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "silent", Priority: "medium", DueDate: &soon})
	require.NoError(t, err)

	mailer := &fakeMailer{}
	reminderService := NewReminderService(env.taskRepo, env.userRepo, mailer, 24*time.Hour)

	sent, err := reminderService.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.sent)
}
