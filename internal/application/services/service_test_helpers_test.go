package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"github.com/bearh141/todo-list/internal/infrastructure/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	taskRepo    repositories.TaskRepository
	tagRepo     repositories.TagRepository
	shareRepo   repositories.ProjectShareRepository

	permissions    *PermissionService
	projectService *ProjectService
	taskService    *TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	env := &testEnv{
		userRepo:    db.NewUserRepository(gormDB),
		projectRepo: db.NewProjectRepository(gormDB),
		taskRepo:    db.NewTaskRepository(gormDB),
		tagRepo:     db.NewTagRepository(gormDB),
		shareRepo:   db.NewProjectShareRepository(gormDB),
	}
	env.permissions = NewPermissionService(env.shareRepo)
	env.projectService = NewProjectService(env.projectRepo, env.taskRepo, env.shareRepo, env.userRepo, env.permissions)
	env.taskService = NewTaskService(env.taskRepo, env.tagRepo, env.projectRepo, env.permissions)
	return env
}

func (env *testEnv) createUser(t *testing.T, username string) *entities.User {
	t.Helper()

	validatedUser, err := entities.NewValidatedUser(entities.NewUser(username, username+"@example.com", "pw"))
	require.NoError(t, err)
	user, err := env.userRepo.Create(context.Background(), validatedUser)
	require.NoError(t, err)
	return user
}

func (env *testEnv) createProject(t *testing.T, ownerId uint, title string) *entities.Project {
	t.Helper()

	project, err := env.projectService.CreateProject(context.Background(), ownerId, title, "")
	require.NoError(t, err)
	return project
}

// fakeMailer records sent mail for reminder sweep tests.
type fakeMailer struct {
	mutex sync.Mutex
	sent  []sentMail
	fail  bool
}

type sentMail struct {
	Recipient string
	Subject   string
	Body      string
}

func (m *fakeMailer) Send(_ context.Context, recipient, subject, body string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.fail {
		return errFakeMailer
	}
	m.sent = append(m.sent, sentMail{Recipient: recipient, Subject: subject, Body: body})
	return nil
}

var errFakeMailer = errSentinel("mailer unavailable")

type errSentinel string

func (e errSentinel) Error() string {
	return string(e)
}
