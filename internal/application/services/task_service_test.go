package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskPermissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	guest := env.createUser(t, "guest")
	project := env.createProject(t, owner.Id, "Shared")

	input := TaskInput{Title: "New task", Priority: "medium"}

	// No share at all: the project is invisible.
	_, err := env.taskService.CreateTask(ctx, guest.Id, project.Id, input)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	// A viewer can see the project but not write to it.
	_, err = env.projectService.Invite(ctx, owner.Id, project.Id, "guest", "viewer")
	require.NoError(t, err)
	_, err = env.taskService.CreateTask(ctx, guest.Id, project.Id, input)
	assert.True(t, errors.Is(err, common.ErrPermissionDenied))

	// Promoted to editor the same call succeeds.
	_, err = env.projectService.Invite(ctx, owner.Id, project.Id, "guest", "editor")
	require.NoError(t, err)
	task, err := env.taskService.CreateTask(ctx, guest.Id, project.Id, input)
	require.NoError(t, err)
	assert.Equal(t, "New task", task.Title)
}

func TestCreateTaskDuplicateTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	projectA := env.createProject(t, owner.Id, "Project A")
	projectB := env.createProject(t, owner.Id, "Project B")

	input := TaskInput{Title: "Report", Priority: "medium"}

	_, err := env.taskService.CreateTask(ctx, owner.Id, projectA.Id, input)
	require.NoError(t, err)

	// Same title in the same project is rejected.
	_, err = env.taskService.CreateTask(ctx, owner.Id, projectA.Id, input)
	assert.True(t, errors.Is(err, common.ErrValidation))

	// Same title in a different project is fine.
	_, err = env.taskService.CreateTask(ctx, owner.Id, projectB.Id, input)
	assert.NoError(t, err)
}

func TestCreateTaskRejectsForeignParent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	projectA := env.createProject(t, owner.Id, "Project A")
	projectB := env.createProject(t, owner.Id, "Project B")

	parent, err := env.taskService.CreateTask(ctx, owner.Id, projectA.Id, TaskInput{Title: "parent", Priority: "medium"})
	require.NoError(t, err)

	_, err = env.taskService.CreateTask(ctx, owner.Id, projectB.Id, TaskInput{
		Title:    "stray child",
		Priority: "medium",
		ParentId: &parent.Id,
	})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestToggleCompletionCascadesAndUpdatesProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "alice")
	project := env.createProject(t, owner.Id, "Groceries")

	milk, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "Buy milk", Priority: "high"})
	require.NoError(t, err)
	_, err = env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{
		Title:    "Buy 2% milk",
		Priority: "medium",
		ParentId: &milk.Id,
	})
	require.NoError(t, err)

	toggled, err := env.taskService.ToggleCompletion(ctx, owner.Id, milk.Id)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	tasks, err := env.taskRepo.FindByProject(ctx, project.Id)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.True(t, task.Completed, "task %q should be completed", task.Title)
	}
	assert.Equal(t, 100, entities.Progress(tasks))

	// Toggling back cascades the other way too.
	_, err = env.taskService.ToggleCompletion(ctx, owner.Id, milk.Id)
	require.NoError(t, err)
	tasks, err = env.taskRepo.FindByProject(ctx, project.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, entities.Progress(tasks))
}

func TestUpdateTaskRejectsCyclicParent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.Id, "Cycles")

	root, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "root", Priority: "medium"})
	require.NoError(t, err)
	child, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "child", Priority: "medium", ParentId: &root.Id})
	require.NoError(t, err)
	grandchild, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "grandchild", Priority: "medium", ParentId: &child.Id})
	require.NoError(t, err)

	// Moving root under its own grandchild would create a cycle.
	_, err = env.taskService.UpdateTask(ctx, owner.Id, root.Id, TaskInput{
		Title:    "root",
		Priority: "medium",
		ParentId: &grandchild.Id,
	})
	assert.True(t, errors.Is(err, common.ErrValidation))

	// A task can never be its own parent.
	_, err = env.taskService.UpdateTask(ctx, owner.Id, root.Id, TaskInput{
		Title:    "root",
		Priority: "medium",
		ParentId: &root.Id,
	})
	assert.True(t, errors.Is(err, common.ErrValidation))

	// Reparenting the grandchild directly under root stays a forest.
	updated, err := env.taskService.UpdateTask(ctx, owner.Id, grandchild.Id, TaskInput{
		Title:    "grandchild",
		Priority: "medium",
		ParentId: &root.Id,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ParentId)
	assert.Equal(t, root.Id, *updated.ParentId)
}

func TestCreateTaskResolvesTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.Id, "Tagged")

	task, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{
		Title:    "Fix sink",
		Priority: "medium",
		Tags:     []string{"home", "home", "urgent"},
	})
	require.NoError(t, err)
	assert.Len(t, task.Tags, 2)

	allTags, err := env.tagRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allTags, 2)
}

func TestDeleteTaskRemovesSubtree(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.Id, "Cleanup")

	root, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "root", Priority: "medium"})
	require.NoError(t, err)
	_, err = env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "child", Priority: "medium", ParentId: &root.Id})
	require.NoError(t, err)

	require.NoError(t, env.taskService.DeleteTask(ctx, owner.Id, root.Id))

	tasks, err := env.taskRepo.FindByProject(ctx, project.Id)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
