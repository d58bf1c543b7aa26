package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectDuplicateTitlePerOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.projectService.CreateProject(ctx, alice.Id, "Home", "")
	require.NoError(t, err)

	_, err = env.projectService.CreateProject(ctx, alice.Id, "Home", "")
	assert.True(t, errors.Is(err, common.ErrValidation))

	// Titles are only unique per owner.
	_, err = env.projectService.CreateProject(ctx, bob.Id, "Home", "")
	assert.NoError(t, err)
}

func TestDashboardIncludesSharedProjectsWithProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	guest := env.createUser(t, "guest")
	project := env.createProject(t, owner.Id, "Shared")

	done, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "done", Priority: "medium"})
	require.NoError(t, err)
	_, err = env.taskService.SetCompletion(ctx, owner.Id, done.Id, true)
	require.NoError(t, err)
	_, err = env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "pending", Priority: "medium"})
	require.NoError(t, err)

	_, err = env.projectService.Invite(ctx, owner.Id, project.Id, "guest", "viewer")
	require.NoError(t, err)

	summaries, err := env.projectService.Dashboard(ctx, guest.Id)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, entities.RoleViewer, summaries[0].Role)
	assert.Equal(t, 50, summaries[0].Progress)
}

func TestGetProjectHiddenWithoutRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	stranger := env.createUser(t, "stranger")
	project := env.createProject(t, owner.Id, "Private")

	_, err := env.projectService.GetProject(ctx, stranger.Id, project.Id, TaskFilter{})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGetProjectFilterDropsOrphansButKeepsProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.Id, "Filtered")

	parent, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "parent", Priority: "medium"})
	require.NoError(t, err)
	child, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{Title: "child", Priority: "medium", ParentId: &parent.Id})
	require.NoError(t, err)
	_, err = env.taskService.SetCompletion(ctx, owner.Id, child.Id, true)
	require.NoError(t, err)

	// The pending filter drops the completed child; the still-pending
	// parent remains and carries no children.
	detail, err := env.projectService.GetProject(ctx, owner.Id, project.Id, TaskFilter{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, detail.Tasks, 1)
	assert.Empty(t, detail.Tasks[0].Children)

	// Filtering out the parent orphans the child, which disappears
	// from the tree entirely.
	detail, err = env.projectService.GetProject(ctx, owner.Id, project.Id, TaskFilter{Status: "completed"})
	require.NoError(t, err)
	assert.Empty(t, detail.Tasks)

	// Progress always counts the full task set.
	assert.Equal(t, 50, detail.Progress)
}

func TestInviteValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	env.createUser(t, "guest")
	project := env.createProject(t, owner.Id, "Invites")

	_, err := env.projectService.Invite(ctx, owner.Id, project.Id, "guest", "manager")
	assert.True(t, errors.Is(err, common.ErrValidation))

	_, err = env.projectService.Invite(ctx, owner.Id, project.Id, "nobody", "viewer")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = env.projectService.Invite(ctx, owner.Id, project.Id, "owner", "viewer")
	assert.True(t, errors.Is(err, common.ErrValidation))

	share, err := env.projectService.Invite(ctx, owner.Id, project.Id, "guest", "editor")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleEditor, share.Role)
}

func TestDeleteProjectOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	guest := env.createUser(t, "guest")
	project := env.createProject(t, owner.Id, "Doomed")

	_, err := env.projectService.Invite(ctx, owner.Id, project.Id, "guest", "editor")
	require.NoError(t, err)

	err = env.projectService.DeleteProject(ctx, guest.Id, project.Id)
	assert.True(t, errors.Is(err, common.ErrPermissionDenied))

	require.NoError(t, env.projectService.DeleteProject(ctx, owner.Id, project.Id))

	_, err = env.projectService.GetProject(ctx, owner.Id, project.Id, TaskFilter{})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.Id, "Export")

	parent, err := env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{
		Title:    "parent",
		Priority: "high",
		Tags:     []string{"a", "b"},
	})
	require.NoError(t, err)
	_, err = env.taskService.CreateTask(ctx, owner.Id, project.Id, TaskInput{
		Title:    "child",
		Priority: "low",
		DueDate:  nil,
		ParentId: &parent.Id,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.projectService.ExportCSV(ctx, owner.Id, project.Id, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "title", "description", "due_date", "completed", "priority", "parent_id", "tags"}, records[0])

	assert.Equal(t, "parent", records[1][1])
	assert.Equal(t, "", records[1][3])
	assert.Equal(t, "false", records[1][4])
	assert.Equal(t, "high", records[1][5])
	assert.Equal(t, "", records[1][6])
	assert.Equal(t, "a,b", records[1][7])

	assert.Equal(t, "child", records[2][1])
	assert.NotEmpty(t, records[2][6], "child row carries its parent id")
}
